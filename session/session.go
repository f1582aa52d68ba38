// Package session holds the per-page conversation state: the page's
// extracted content, the bounded message history, and the send flow that
// relays questions to the completion service.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/pagechat"
)

// Config holds the dependencies of a Session.
type Config struct {
	// PageURL is the page the conversation is about.
	PageURL string

	// Key is the history storage key, usually pagechat.HistoryKey.
	Key string

	Fetcher   pagechat.Fetcher
	Extractor pagechat.Extractor
	Client    pagechat.ChatClient
	Store     pagechat.HistoryStore

	// Logger receives history persistence and fetch failures, which never
	// interrupt a conversation. Defaults to discarding.
	Logger *slog.Logger
}

// Session is one page view's conversation.
// A Session is safe for concurrent use, but only one Send runs at a time.
type Session struct {
	pageURL   string
	key       string
	fetcher   pagechat.Fetcher
	extractor pagechat.Extractor
	client    pagechat.ChatClient
	store     pagechat.HistoryStore
	logger    *slog.Logger

	sending atomic.Bool

	mu      sync.Mutex
	history []pagechat.Message
	content string
}

// New creates a Session with empty history. Call Load to restore history
// saved by an earlier Session with the same key.
func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		pageURL:   cfg.PageURL,
		key:       cfg.Key,
		fetcher:   cfg.Fetcher,
		extractor: cfg.Extractor,
		client:    cfg.Client,
		store:     cfg.Store,
		logger:    logger,
	}
}

// Load restores saved history. A failure to load leaves the history empty.
func (s *Session) Load(ctx context.Context) {
	history, err := s.store.LoadHistory(ctx, s.key)
	if err != nil {
		s.logger.Warn("history not restored", "key", s.key, "err", err)
		history = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = pagechat.TrimHistory(history)
}

// History returns a copy of the conversation so far, oldest first.
func (s *Session) History() []pagechat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]pagechat.Message(nil), s.history...)
}

// ExtractContent returns the page's main content, fetching and extracting
// it on first use. The result is reused for the rest of the session; an
// empty result is retried on the next call. A fetch failure yields empty
// content.
func (s *Session) ExtractContent(ctx context.Context) string {
	s.mu.Lock()
	content := s.content
	s.mu.Unlock()
	if content != "" {
		return content
	}

	html, err := s.fetcher.Fetch(ctx, s.pageURL)
	if err != nil {
		s.logger.Warn("page not fetched", "url", s.pageURL, "err", err)
		return ""
	}
	ext := s.extractor.Extract(html)
	if ext == nil {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.content == "" {
		s.content = ext.Content
	}
	return s.content
}

// Send relays a question about the page and returns the assistant's reply.
//
// The question is recorded in history before the request is made and stays
// there if the request fails; the reply is recorded only on success.
// Returns EINVALID for a blank question and ECONFLICT while another Send is
// in progress. Errors from the ChatClient are returned unchanged.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", pagechat.Errorf(pagechat.EINVALID, "message cannot be empty")
	}
	if !s.sending.CompareAndSwap(false, true) {
		return "", pagechat.Errorf(pagechat.ECONFLICT, "a message is already being sent")
	}
	defer s.sending.Store(false)

	history := s.appendMessage(ctx, pagechat.Message{Role: pagechat.RoleUser, Content: text})
	content := s.ExtractContent(ctx)

	resp, err := s.client.Chat(ctx, &pagechat.ChatRequest{
		Message:             text,
		PageContent:         content,
		PageURL:             s.pageURL,
		ConversationHistory: history[:len(history)-1],
	})
	if err != nil {
		return "", err
	}

	s.appendMessage(ctx, pagechat.Message{Role: pagechat.RoleAssistant, Content: resp.Response})
	return resp.Response, nil
}

// Clear forgets the conversation and removes it from the store.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()
	return s.store.DeleteHistory(ctx, s.key)
}

// appendMessage records msg, persists the bounded history, and returns a
// snapshot of it. A failure to persist is logged and otherwise ignored.
func (s *Session) appendMessage(ctx context.Context, msg pagechat.Message) []pagechat.Message {
	s.mu.Lock()
	s.history = pagechat.AppendMessage(s.history, msg)
	history := append([]pagechat.Message(nil), s.history...)
	s.mu.Unlock()

	if err := s.store.SaveHistory(ctx, s.key, history); err != nil {
		s.logger.Warn("history not saved", "key", s.key, "err", err)
	}
	return history
}
