package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagechat"
)

// Ensure LoggingChatClient implements pagechat.ChatClient.
var _ pagechat.ChatClient = (*LoggingChatClient)(nil)

// LoggingChatClient wraps a ChatClient with logging.
// Message text and page content are never logged, only their sizes.
type LoggingChatClient struct {
	next   pagechat.ChatClient
	logger *slog.Logger
}

// NewLoggingChatClient creates a new LoggingChatClient.
func NewLoggingChatClient(next pagechat.ChatClient, logger *slog.Logger) *LoggingChatClient {
	return &LoggingChatClient{next: next, logger: logger}
}

// Chat delegates to the wrapped client.
func (c *LoggingChatClient) Chat(ctx context.Context, req *pagechat.ChatRequest) (resp *pagechat.ChatResponse, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", req.PageURL,
			"history", len(req.ConversationHistory),
			"content_bytes", len(req.PageContent),
			"duration", time.Since(begin),
		}
		if resp != nil {
			attrs = append(attrs, "reply_bytes", len(resp.Response))
			if resp.Error != "" {
				attrs = append(attrs, "service_error", resp.Error)
			}
		}
		attrs = append(attrs, "err", err)
		c.logger.Info("chat", attrs...)
	}(time.Now())
	return c.next.Chat(ctx, req)
}
