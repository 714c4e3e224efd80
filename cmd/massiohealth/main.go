// @title MassioHealth API
// @version 1.0
// @description Body Mass Index calculator.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"massiohealth/internal/config"
	"massiohealth/internal/observability"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// cfg is loaded once per invocation in PersistentPreRunE.
	cfg *config.Config
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "massiohealth",
		Short: "MassioHealth - simple, fast, and accurate BMI calculator",
		Long: `MassioHealth computes Body Mass Index from a weight in kilograms and a
height in meters and classifies it as Underweight, Normal, Overweight or Obese.

It runs as an HTTP service with a JSON API and an HTML form (serve), as an
interactive terminal form (tui), or as a one-shot command (calc).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDotEnv(); err != nil {
				return err
			}

			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}

			// The terminal form owns stdout.
			if cmd.Name() == "tui" {
				return nil
			}

			if err := observability.InitLogger(cfg.Logging.Level); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.SyncLogger()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newServeCmd(),
		newCalcCmd(),
		newTUICmd(),
		newCategoriesCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
