package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/pagechat"
)

// Compile-time interface verification.
var _ pagechat.HistoryStore = (*HistoryStore)(nil)

// HistoryStore implements pagechat.HistoryStore using SQLite.
// Each key holds one conversation serialized as a JSON array of messages.
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates a new HistoryStore.
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// LoadHistory returns the messages stored under key.
func (s *HistoryStore) LoadHistory(ctx context.Context, key string) ([]pagechat.Message, error) {
	if key == "" {
		return nil, pagechat.Errorf(pagechat.EINVALID, "history key required")
	}

	var raw string
	err := s.db.QueryRowContext(ctx, `
		SELECT messages FROM histories WHERE key = ?
	`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return []pagechat.Message{}, nil
	}
	if err != nil {
		return nil, err
	}

	var history []pagechat.Message
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("failed to decode history %q: %w", key, err)
	}
	if history == nil {
		history = []pagechat.Message{}
	}
	return pagechat.TrimHistory(history), nil
}

// SaveHistory replaces the messages stored under key, keeping at most
// pagechat.MaxHistory of the most recent ones.
func (s *HistoryStore) SaveHistory(ctx context.Context, key string, history []pagechat.Message) error {
	if key == "" {
		return pagechat.Errorf(pagechat.EINVALID, "history key required")
	}
	for i := range history {
		if err := history[i].Validate(); err != nil {
			return err
		}
	}

	history = pagechat.TrimHistory(history)
	if history == nil {
		history = []pagechat.Message{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode history %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO histories (key, messages, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET messages = excluded.messages, updated_at = excluded.updated_at
	`, key, string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}

// DeleteHistory removes the messages stored under key.
// Deleting a key that holds nothing is not an error.
func (s *HistoryStore) DeleteHistory(ctx context.Context, key string) error {
	if key == "" {
		return pagechat.Errorf(pagechat.EINVALID, "history key required")
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM histories WHERE key = ?`, key)
	return err
}

// UpdatedAt returns when the history under key was last saved.
// Returns ENOTFOUND if nothing is stored under key.
func (s *HistoryStore) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	if key == "" {
		return time.Time{}, pagechat.Errorf(pagechat.EINVALID, "history key required")
	}
	var updatedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT updated_at FROM histories WHERE key = ?
	`, key).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, pagechat.Errorf(pagechat.ENOTFOUND, "history not found")
	}
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse updated_at of history %q: %w", key, err)
	}
	return t, nil
}
