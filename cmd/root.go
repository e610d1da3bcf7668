package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/academy/internal/config"
	"github.com/abhisek/academy/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "academy",
	Short: "Interactive Angular lessons in your terminal",
	Long:  "Academy: browse Angular lessons by category, track what you have completed, and try code in a playground.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-file", "", "Write structured logs to this file (overrides "+config.EnvLogFile+")")
	rootCmd.PersistentFlags().String("log-mode", "", "Log encoding: dev or prod (overrides "+config.EnvLogMode+")")
	rootCmd.PersistentFlags().String("catalog", "", "Load lessons from this JSON file instead of the built-in catalog")

	rootCmd.Flags().String("lesson", "", "Open this lesson id directly")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig returns the runtime config using flags (highest priority),
// then environment variables, then defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	logFile, _ := cmd.Flags().GetString("log-file")
	logMode, _ := cmd.Flags().GetString("log-mode")

	cfg := config.ConfigFromEnv().Override(logFile, logMode)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the run's logger, tagged with a fresh session id.
func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log.With("session_id", uuid.NewString(), "command", cmd.Name()), nil
}
