package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagechat"
)

// Ensure LoggingHistoryStore implements pagechat.HistoryStore.
var _ pagechat.HistoryStore = (*LoggingHistoryStore)(nil)

// LoggingHistoryStore wraps a HistoryStore with debug logging.
type LoggingHistoryStore struct {
	next   pagechat.HistoryStore
	logger *slog.Logger
}

// NewLoggingHistoryStore creates a new LoggingHistoryStore.
func NewLoggingHistoryStore(next pagechat.HistoryStore, logger *slog.Logger) *LoggingHistoryStore {
	return &LoggingHistoryStore{next: next, logger: logger}
}

func (s *LoggingHistoryStore) LoadHistory(ctx context.Context, key string) (history []pagechat.Message, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load history",
			"key", key,
			"messages", len(history),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadHistory(ctx, key)
}

func (s *LoggingHistoryStore) SaveHistory(ctx context.Context, key string, history []pagechat.Message) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save history",
			"key", key,
			"messages", len(history),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveHistory(ctx, key, history)
}

func (s *LoggingHistoryStore) DeleteHistory(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete history",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteHistory(ctx, key)
}

func (s *LoggingHistoryStore) UpdatedAt(ctx context.Context, key string) (updatedAt time.Time, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("history updated at",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdatedAt(ctx, key)
}
