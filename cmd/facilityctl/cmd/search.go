package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facility-finder/internal/domain"
)

var searchParams []string

// searchCmd - параметризованный поиск
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Параметризованный поиск мест",
	Long: `Параметры передаются как --param key=value. Распознаются latitude, longitude,
distance (км), minRating, openNow, language и limit; остальные игнорируются.`,
	Example: `  facilityctl search --param language=vietnamese --param minRating=4
  facilityctl search -p latitude=-37.81 -p longitude=144.96 -p distance=2 -p openNow=true`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(searchParams)
		if err != nil {
			return err
		}

		uc, err := newFacilityUseCase()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		facilities, err := uc.SearchFacilities(ctx, domain.NewQueryContext(params))
		if err != nil {
			return err
		}

		return printFacilities(cmd.OutOrStdout(), facilities, outputFormat)
	},
}

func init() {
	searchCmd.Flags().StringArrayVarP(&searchParams, "param", "p", nil, "search parameter as key=value (repeatable)")
	rootCmd.AddCommand(searchCmd)
}

// parseParams splits key=value pairs; a later pair overrides an earlier one.
func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q, expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}
