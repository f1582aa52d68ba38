package mock

import (
	"context"
	"time"

	"github.com/fwojciec/pagechat"
)

var _ pagechat.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is a mock implementation of pagechat.HistoryStore.
type HistoryStore struct {
	LoadHistoryFn   func(ctx context.Context, key string) ([]pagechat.Message, error)
	SaveHistoryFn   func(ctx context.Context, key string, history []pagechat.Message) error
	DeleteHistoryFn func(ctx context.Context, key string) error
	UpdatedAtFn     func(ctx context.Context, key string) (time.Time, error)
}

func (s *HistoryStore) LoadHistory(ctx context.Context, key string) ([]pagechat.Message, error) {
	return s.LoadHistoryFn(ctx, key)
}

func (s *HistoryStore) SaveHistory(ctx context.Context, key string, history []pagechat.Message) error {
	return s.SaveHistoryFn(ctx, key, history)
}

func (s *HistoryStore) DeleteHistory(ctx context.Context, key string) error {
	return s.DeleteHistoryFn(ctx, key)
}

func (s *HistoryStore) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	return s.UpdatedAtFn(ctx, key)
}
