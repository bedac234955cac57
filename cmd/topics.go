package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"quizterm/internal/store"
	"quizterm/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Fetch the topic feed and list its contents",
	Long:  "Fetches the configured topic feed and prints each topic with its question count, without starting the TUI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listTopics(cmd)
	},
}

func listTopics(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The store is optional here; without it the last used URL is
	// simply not consulted or updated.
	var settings *store.SettingsRepo
	if dbPath, derr := resolveDBPath(cmd, cfg); derr == nil {
		if st, serr := store.Open(dbPath); serr == nil {
			defer func() { _ = st.Close() }()
			settings = st.Settings()
		}
	}

	sourceURL := resolveSourceURL(cmd.Context(), cmd, cfg, settings)
	repo := topics.NewRepository(&http.Client{Timeout: cfg.FetchTimeout()}, nil, settings)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.FetchTimeout())
	defer cancel()

	list, err := repo.Load(ctx, sourceURL)
	if err != nil {
		return fmt.Errorf("load topics from %s: %w", sourceURL, err)
	}

	fmt.Printf("Topics from %s\n\n", sourceURL)
	for _, t := range list {
		fmt.Printf("  %-30s %3d questions", t.Title, len(t.Questions))
		if t.Description != "" {
			fmt.Printf("  %s", t.Description)
		}
		fmt.Println()
	}
	fmt.Printf("\n%d topic(s)\n", len(list))
	return nil
}
