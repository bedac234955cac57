package store

import (
	"context"
	"database/sql"
	"errors"
)

const keySourceURL = "source_url"

// SettingsRepo reads and writes quizterm's persisted settings. It
// satisfies the topics.Settings capability.
type SettingsRepo struct {
	db *sql.DB
}

// LastSourceURL returns the last successfully used topic source URL, or
// "" if none has been recorded yet.
func (r *SettingsRepo) LastSourceURL(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", keySourceURL).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetLastSourceURL records rawURL as the default source for the next launch.
func (r *SettingsRepo) SetLastSourceURL(ctx context.Context, rawURL string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		keySourceURL, rawURL)
	return err
}
