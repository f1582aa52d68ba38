package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fwojciec/pagechat"
)

// ChatPath is the completion service route that receives chat requests.
const ChatPath = "/api/chat"

// maxResponseSize caps the number of bytes read from a chat reply.
const maxResponseSize = 1 << 20

// Ensure ChatClient implements pagechat.ChatClient at compile time.
var _ pagechat.ChatClient = (*ChatClient)(nil)

// ChatClient posts chat requests to a completion service as JSON.
//
// No timeout is applied unless the caller's context or a custom
// http.Client sets one.
type ChatClient struct {
	endpoint string
	client   *http.Client
}

// ChatOption configures a ChatClient.
type ChatOption func(*ChatClient)

// WithHTTPClient sets the http.Client used for requests.
func WithHTTPClient(c *http.Client) ChatOption {
	return func(cc *ChatClient) {
		cc.client = c
	}
}

// NewChatClient creates a ChatClient for the service at endpoint,
// e.g. "https://chat.example.com". A trailing slash is ignored.
func NewChatClient(endpoint string, opts ...ChatOption) *ChatClient {
	c := &ChatClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chat posts req to {endpoint}/api/chat and returns the decoded reply.
func (c *ChatClient) Chat(ctx context.Context, req *pagechat.ChatRequest) (*pagechat.ChatResponse, error) {
	if c.endpoint == "" {
		return nil, pagechat.Errorf(pagechat.EINVALID, "chat endpoint required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload := *req
	if payload.ConversationHistory == nil {
		payload.ConversationHistory = []pagechat.Message{}
	}
	body, err := json.Marshal(&payload)
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+ChatPath, bytes.NewReader(body))
	if err != nil {
		return nil, pagechat.Errorf(pagechat.EINVALID, "invalid chat endpoint %q: %v", c.endpoint, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, pagechat.Errorf(pagechat.EUNAVAILABLE, "API error: %d", resp.StatusCode)
	}

	var out pagechat.ChatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return nil, pagechat.Errorf(pagechat.EINTERNAL, "malformed chat response: %v", err)
	}
	if out.Response == "" {
		return nil, pagechat.Errorf(pagechat.EINTERNAL, "chat response missing reply")
	}

	return &out, nil
}
