package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deebya/codetutor/internal/config"
	"github.com/deebya/codetutor/internal/logging"
	"github.com/deebya/codetutor/internal/store"
)

var (
	settings config.Settings
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "codetutor",
	Short: "Interactive programming tutor",
	Long:  "Codetutor — terminal app for learning programming languages with tutorials, quizzes, and runnable exercises.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("config", "", "Path to settings file (overrides CODETUTOR_CONFIG env var)")
	rootCmd.PersistentFlags().Bool("reset-settings", false, "Rewrite the settings file with defaults before running")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODETUTOR_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner profile to act as (overrides the configured user)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// setup loads settings and builds the logger before any command runs.
func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return fmt.Errorf("resolve settings path: %w", err)
		}
	}

	var err error
	if reset, _ := cmd.Flags().GetBool("reset-settings"); reset {
		settings, err = config.Reset(path)
		if err != nil {
			return fmt.Errorf("reset settings: %w", err)
		}
	} else {
		settings, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		settings.Debug = true
	}
	if user, _ := cmd.Flags().GetString("user"); user != "" {
		settings.User = user
	}

	logger, err = logging.New(settings.Debug, settings.LogFile)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	logger.Debug("settings loaded",
		zap.String("path", path), zap.String("user", settings.User))
	return nil
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the settings file or CODETUTOR_DB, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if settings.DBPath != "" {
		return settings.DBPath, store.EnsureDir(settings.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the database for a command invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
