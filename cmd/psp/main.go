package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pspkit/internal/config"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	fixturesDir string

	// Loaded configuration and logger, available to all subcommands.
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "psp",
	Short: "pspkit - Personal Software Process exercise toolkit",
	Long: `pspkit bundles the PSP exercise programs into one wrapper command.

Each subcommand corresponds to one exercise: descriptive statistics over
CSV columns, number-file editing, LOC counting, linear regression,
prediction intervals, PROBE size and time estimation, the chi-squared
normality test, and relative size tables. Collected process metrics are
stored under the data directory and feed the estimation commands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if fixturesDir != "" {
			cfg.FixturesDir = fixturesDir
		}

		zapConfig := zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(levelFor(cfg.Logging.Level))
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// levelFor maps a config level name to a zap level.
func levelFor(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "psp.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&fixturesDir, "fixtures", "", "Override the fixtures directory")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(numbersCmd)
	rootCmd.AddCommand(locCmd)
	rootCmd.AddCommand(regressCmd)
	rootCmd.AddCommand(integrateCmd)
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(chisqCmd)
	rootCmd.AddCommand(sizesCmd)
	rootCmd.AddCommand(dataCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
