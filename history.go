package pagechat

import (
	"context"
	"net/url"
	"time"
)

// StorageKey is the fixed key under which conversation history is stored.
const StorageKey = "pagechat_history"

// HistoryKey returns the storage key for a session's conversation on the
// origin serving pageURL. A session plays the part of a browser tab, so
// history is shared by every page of one origin within one session.
func HistoryKey(sessionID, pageURL string) string {
	key := StorageKey + ":" + sessionID
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		key += ":" + u.Scheme + "://" + u.Host
	}
	return key
}

// HistoryStore persists conversation history.
type HistoryStore interface {
	// LoadHistory returns the messages stored under key.
	// Returns an empty slice if nothing is stored.
	LoadHistory(ctx context.Context, key string) ([]Message, error)

	// SaveHistory replaces the messages stored under key.
	// At most MaxHistory messages are kept.
	SaveHistory(ctx context.Context, key string, history []Message) error

	// DeleteHistory removes the messages stored under key.
	DeleteHistory(ctx context.Context, key string) error

	// UpdatedAt returns when the history under key was last saved.
	// Returns ENOTFOUND if nothing is stored under key.
	UpdatedAt(ctx context.Context, key string) (time.Time, error)
}
