package mock

import (
	"context"

	"github.com/fwojciec/pagechat"
)

var _ pagechat.ChatClient = (*ChatClient)(nil)

// ChatClient is a mock implementation of pagechat.ChatClient.
type ChatClient struct {
	ChatFn func(ctx context.Context, req *pagechat.ChatRequest) (*pagechat.ChatResponse, error)
}

func (c *ChatClient) Chat(ctx context.Context, req *pagechat.ChatRequest) (*pagechat.ChatResponse, error) {
	return c.ChatFn(ctx, req)
}
