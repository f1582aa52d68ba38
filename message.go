package pagechat

import (
	"context"
	"strings"
)

// MaxHistory is the maximum number of messages kept in a conversation.
const MaxHistory = 20

// Role identifies the author of a message.
type Role string

// Message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Validate returns an error if the message contains invalid fields.
func (m *Message) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return Errorf(EINVALID, "invalid message role %q", m.Role)
	}
	return nil
}

// AppendMessage appends msg to history and keeps only the most recent
// MaxHistory messages. The returned slice does not alias history.
func AppendMessage(history []Message, msg Message) []Message {
	out := make([]Message, 0, len(history)+1)
	out = append(out, history...)
	out = append(out, msg)
	return TrimHistory(out)
}

// TrimHistory returns the most recent MaxHistory messages of history.
func TrimHistory(history []Message) []Message {
	if len(history) > MaxHistory {
		return history[len(history)-MaxHistory:]
	}
	return history
}

// ChatRequest is the payload sent to the completion service.
type ChatRequest struct {
	Message             string    `json:"message"`
	PageContent         string    `json:"pageContent"`
	PageURL             string    `json:"pageUrl"`
	ConversationHistory []Message `json:"conversationHistory"`
}

// Validate returns an error if the request contains invalid fields.
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return Errorf(EINVALID, "message cannot be empty")
	}
	for i := range r.ConversationHistory {
		if err := r.ConversationHistory[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ChatResponse is the reply returned by the completion service.
type ChatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// ChatClient sends questions about a page to the completion service.
type ChatClient interface {
	// Chat posts the request and returns the service's reply.
	// Returns EUNAVAILABLE if the service responds with a failure status
	// and EINTERNAL if the reply cannot be decoded.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}
