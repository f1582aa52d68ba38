package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/pagechat"
	pchttp "github.com/fwojciec/pagechat/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatClient_Chat(t *testing.T) {
	t.Parallel()

	t.Run("posts JSON request and decodes reply", func(t *testing.T) {
		t.Parallel()

		var got pagechat.ChatRequest
		var method, path, contentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method, path, contentType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"response": "It is about Go."}`))
		}))
		defer server.Close()

		client := pchttp.NewChatClient(server.URL + "/")
		req := &pagechat.ChatRequest{
			Message:     "What is this page about?",
			PageContent: "Go is a language.",
			PageURL:     "https://example.com/go",
			ConversationHistory: []pagechat.Message{
				{Role: pagechat.RoleUser, Content: "hi"},
				{Role: pagechat.RoleAssistant, Content: "hello"},
			},
		}

		resp, err := client.Chat(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "It is about Go.", resp.Response)
		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "/api/chat", path)
		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, *req, got)
	})

	t.Run("sends empty history as an array", func(t *testing.T) {
		t.Parallel()

		var raw map[string]json.RawMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&raw)
			_, _ = w.Write([]byte(`{"response": "ok"}`))
		}))
		defer server.Close()

		_, err := pchttp.NewChatClient(server.URL).Chat(context.Background(), &pagechat.ChatRequest{Message: "q"})

		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(raw["conversationHistory"]))
	})

	t.Run("keeps service error detail", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"response": "I apologize.", "error": "model overloaded"}`))
		}))
		defer server.Close()

		resp, err := pchttp.NewChatClient(server.URL).Chat(context.Background(), &pagechat.ChatRequest{Message: "q"})

		require.NoError(t, err)
		assert.Equal(t, "I apologize.", resp.Response)
		assert.Equal(t, "model overloaded", resp.Error)
	})

	t.Run("returns unavailable for non-success status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := pchttp.NewChatClient(server.URL).Chat(context.Background(), &pagechat.ChatRequest{Message: "q"})

		require.Error(t, err)
		assert.Equal(t, pagechat.EUNAVAILABLE, pagechat.ErrorCode(err))
		assert.Contains(t, pagechat.ErrorMessage(err), "502")
	})

	t.Run("returns internal error for malformed body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>oops</html>`))
		}))
		defer server.Close()

		_, err := pchttp.NewChatClient(server.URL).Chat(context.Background(), &pagechat.ChatRequest{Message: "q"})

		require.Error(t, err)
		assert.Equal(t, pagechat.EINTERNAL, pagechat.ErrorCode(err))
	})

	t.Run("returns internal error when reply is missing", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"answer": "wrong field"}`))
		}))
		defer server.Close()

		_, err := pchttp.NewChatClient(server.URL).Chat(context.Background(), &pagechat.ChatRequest{Message: "q"})

		require.Error(t, err)
		assert.Equal(t, pagechat.EINTERNAL, pagechat.ErrorCode(err))
	})

	t.Run("rejects empty message without calling the service", func(t *testing.T) {
		t.Parallel()

		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		_, err := pchttp.NewChatClient(server.URL).Chat(context.Background(), &pagechat.ChatRequest{Message: " "})

		require.Error(t, err)
		assert.Equal(t, pagechat.EINVALID, pagechat.ErrorCode(err))
		assert.False(t, called)
	})

	t.Run("requires an endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := pchttp.NewChatClient("").Chat(context.Background(), &pagechat.ChatRequest{Message: "q"})

		require.Error(t, err)
		assert.Equal(t, pagechat.EINVALID, pagechat.ErrorCode(err))
	})

	t.Run("uses custom http client", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{"response": "late"}`))
		}))
		defer server.Close()

		client := pchttp.NewChatClient(server.URL, pchttp.WithHTTPClient(&http.Client{Timeout: 10 * time.Millisecond}))

		_, err := client.Chat(context.Background(), &pagechat.ChatRequest{Message: "q"})

		require.Error(t, err)
	})
}
