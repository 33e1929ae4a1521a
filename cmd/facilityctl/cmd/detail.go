package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/facility-finder/internal/domain"
	"github.com/facility-finder/internal/pkg/errors"
)

// detailCmd - детали места по ID провайдера
var detailCmd = &cobra.Command{
	Use:   "detail <place-id>",
	Short: "Детали места по ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newFacilityUseCase()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		facility, err := uc.GetFacilityDetail(ctx, args[0])
		if err != nil {
			return err
		}
		if facility.IsEmpty() {
			return errors.ErrFacilityNotFound.WithDetails(map[string]interface{}{"id": args[0]})
		}

		return printFacilities(cmd.OutOrStdout(), []domain.Facility{*facility}, outputFormat)
	},
}

func init() {
	rootCmd.AddCommand(detailCmd)
}
