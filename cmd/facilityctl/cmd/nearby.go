package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	nearbyLat   float64
	nearbyLon   float64
	nearbyPage  int
	nearbyLimit int
)

// nearbyCmd - места в радиусе 5 км от точки
var nearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "Места в радиусе 5 км от точки",
	Example: `  facilityctl nearby --lat -37.8136 --lon 144.9631 --limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newFacilityUseCase()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		facilities, err := uc.GetNearbyFacilities(ctx, nearbyLat, nearbyLon, nearbyPage, nearbyLimit)
		if err != nil {
			return err
		}

		return printFacilities(cmd.OutOrStdout(), facilities, outputFormat)
	},
}

func init() {
	nearbyCmd.Flags().Float64Var(&nearbyLat, "lat", 0, "latitude")
	nearbyCmd.Flags().Float64Var(&nearbyLon, "lon", 0, "longitude")
	nearbyCmd.Flags().IntVar(&nearbyPage, "page", 0, "page (accepted, not used by the provider)")
	nearbyCmd.Flags().IntVar(&nearbyLimit, "limit", 20, "max results")
	_ = nearbyCmd.MarkFlagRequired("lat")
	_ = nearbyCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(nearbyCmd)
}
