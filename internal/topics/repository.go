package topics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"quizterm/internal/quiz"
)

// Settings persists the last successfully used topic source URL so it
// becomes the default on the next launch.
type Settings interface {
	LastSourceURL(ctx context.Context) (string, error)
	SetLastSourceURL(ctx context.Context, rawURL string) error
}

// Repository fetches and decodes quiz topics from a remote JSON feed.
type Repository struct {
	client   *http.Client
	checker  Checker
	settings Settings
}

// NewRepository creates a Repository. client may be nil to use
// http.DefaultClient, checker may be nil to assume connectivity, and
// settings may be nil to skip URL persistence.
func NewRepository(client *http.Client, checker Checker, settings Settings) *Repository {
	if client == nil {
		client = http.DefaultClient
	}
	if checker == nil {
		checker = AlwaysOnline{}
	}
	return &Repository{client: client, checker: checker, settings: settings}
}

// Load fetches the feed at rawURL and returns the decoded topics.
// It validates the URL before touching the network, performs a single
// GET with no retries, and writes nothing on failure. On full success
// the used URL is persisted as the new default.
func (r *Repository) Load(ctx context.Context, rawURL string) ([]quiz.Topic, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ErrInvalidURL{URL: rawURL}
	}

	if !r.checker.Online() {
		return nil, ErrNetworkUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &ErrInvalidURL{URL: rawURL}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &ErrTransport{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrTransport{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrTransport{Err: err}
	}

	topics, err := decodeTopics(body)
	if err != nil {
		return nil, err
	}

	// The persisted URL only affects the next launch's default; a failed
	// write is not a load failure.
	if r.settings != nil {
		_ = r.settings.SetLastSourceURL(ctx, rawURL)
	}

	return topics, nil
}
