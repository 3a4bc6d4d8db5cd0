package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathgame/internal/app"
	"github.com/abhisek/mathgame/internal/config"
	"github.com/abhisek/mathgame/internal/logging"
	"github.com/abhisek/mathgame/internal/problemgen"
	"github.com/abhisek/mathgame/internal/screens/drill"
)

var rootCmd = &cobra.Command{
	Use:   "mathgame",
	Short: "Arithmetic drills in the terminal",
	Long:  "MathGame: timed, survival and standard arithmetic drills whose numbers grow as you get them right.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

// ExecuteContext runs the root command with ctx, so that cancelling it
// ends a running drill.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	addConfigFlags(rootCmd)

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags read by loadConfig.
func addConfigFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("env-file", "", "Load settings from this file instead of ./.env")
	cmd.PersistentFlags().String("log", "", "Path to JSON log file (overrides MATHGAME_LOG env var)")
	cmd.PersistentFlags().Int("time-attack", 0, "Length of a Time Attack round in seconds (overrides MATHGAME_TIME_ATTACK_SECONDS)")
}

// loadConfig resolves settings with --flag taking priority over the
// environment (and .env), which takes priority over defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var files []string
	if f, _ := cmd.Flags().GetString("env-file"); f != "" {
		files = append(files, f)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return config.Config{}, err
	}

	if p, _ := cmd.Flags().GetString("log"); p != "" {
		cfg.LogPath = p
	}
	if cmd.Flags().Changed("time-attack") {
		cfg.Session.TimeAttackSeconds, _ = cmd.Flags().GetInt("time-attack")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup loads the configuration and opens the log. The returned function
// closes the log file.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger, closeLog, err := logging.New(cfg.LogPath, cfg.Level())
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, logger, closeLog, nil
}

// runApp launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting", "version", version)

	return app.Run(cmd.Context(), app.Options{
		Drill: drill.Deps{
			Config: cfg.Session,
			Logger: logger,
			NewSource: func() problemgen.OperandSource {
				return problemgen.NewTimeSeededSource()
			},
		},
	})
}
