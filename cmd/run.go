package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"quizterm/internal/app"
	"quizterm/internal/store"
	"quizterm/internal/topics"
)

// runApp wires the store, repository, and TUI together and blocks
// until the program exits.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store at %s: %w", dbPath, err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			fmt.Fprintln(os.Stderr, "Warning: closing store:", cerr)
		}
	}()

	settings := st.Settings()
	repo := topics.NewRepository(&http.Client{Timeout: cfg.FetchTimeout()}, nil, settings)

	return app.Run(app.Options{
		Repository:   repo,
		SourceURL:    resolveSourceURL(ctx, cmd, cfg, settings),
		FetchTimeout: cfg.FetchTimeout(),
	})
}
