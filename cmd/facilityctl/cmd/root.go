package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/facility-finder/internal/config"
	"github.com/facility-finder/internal/infrastructure/places"
	"github.com/facility-finder/internal/pkg/logger"
	"github.com/facility-finder/internal/usecase"
)

var (
	envPath      string
	outputFormat string
	debug        bool
	timeout      time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "facilityctl",
	Short: "Поиск мест через Google Places из командной строки",
	Long: `facilityctl выполняет те же запросы, что и HTTP API: места рядом с точкой,
параметризованный поиск и детали места. Ключ API берется из GOOGLE_PLACES_API_KEY.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envPath, "env", "e", ".env", "env file with configuration (optional)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatText, "output format: text or json")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log provider requests")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall command timeout")
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// newFacilityUseCase собирает use case так же, как cmd/api
func newFacilityUseCase() (*usecase.FacilityUseCase, error) {
	if err := validateFormat(outputFormat); err != nil {
		return nil, err
	}

	cfg, err := config.LoadFile(envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := zap.NewNop()
	if debug {
		log, err = logger.New("debug", "facilityctl")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	placesRepo := places.NewPlacesClient(&cfg.Places, log)
	return usecase.NewFacilityUseCase(placesRepo, &cfg.Places, log), nil
}
