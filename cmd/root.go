package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"quizterm/internal/config"
	"quizterm/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizterm",
	Short: "Quiz player for the terminal",
	Long:  "Quizterm — fetches quiz topics from a JSON feed and plays them one question at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides QUIZTERM_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZTERM_DB env var)")
	rootCmd.PersistentFlags().String("url", "", "Topic feed URL (overrides persisted and configured URLs)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveConfig loads the config file named by --config (required to
// exist), or the default path (missing file falls back to defaults).
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p)
	}
	p, err := config.DefaultConfigPath()
	if err != nil {
		return config.Default(), err
	}
	return config.LoadOrDefault(p)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// resolveSourceURL picks the feed URL: --url flag, then the last
// successfully used URL, then the configured default.
func resolveSourceURL(ctx context.Context, cmd *cobra.Command, cfg config.Config, settings *store.SettingsRepo) string {
	if u, _ := cmd.Flags().GetString("url"); u != "" {
		return u
	}
	if settings != nil {
		if u, err := settings.LastSourceURL(ctx); err == nil && u != "" {
			return u
		}
	}
	return cfg.Source.URL
}
