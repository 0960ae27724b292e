package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"juria/internal/domain"
	"juria/internal/webhook"
)

// NoReplyPlaceholder stands in for an empty chat reply body.
const NoReplyPlaceholder = "the backend sent no reply"

// Service opens conversations about uploaded documents.
type Service struct {
	client domain.WebhookClient
	log    *zap.Logger
}

// New constructs a chat Service over the given transport.
func New(client domain.WebhookClient, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, log: log}
}

// Open starts a fresh conversation about the named document.
func (s *Service) Open(name domain.DocumentName) domain.Conversation {
	return &Conversation{svc: s, document: name}
}

// Conversation is an append-only transcript bound to one document.
// It lives in memory for a single viewing session and is never persisted.
type Conversation struct {
	svc      *Service
	document domain.DocumentName
	mu       sync.Mutex
	history  []domain.ChatMessage
}

// Send appends the user's message to the transcript, relays it to the chat
// webhook and appends the reply body verbatim.
//
// On failure the user's message stays in the transcript and the error is
// returned for inline display; the caller may simply re-send.
func (c *Conversation) Send(ctx context.Context, text string) (domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, fmt.Errorf("%w: empty message", domain.ErrValidation)
	}
	c.append(domain.ChatMessage{Text: text, FromUser: true})

	resp, err := c.svc.client.PostJSON(ctx, webhook.PathChat, map[string]string{
		"chat_input":     text,
		"nome_documento": c.document.String(),
	})
	if err != nil {
		return domain.ChatMessage{}, err
	}
	if !resp.OK {
		return domain.ChatMessage{}, fmt.Errorf("chat failed: backend replied %d", resp.Status)
	}

	replyText := resp.Body
	if replyText == "" {
		replyText = NoReplyPlaceholder
	}
	reply := domain.ChatMessage{Text: replyText}
	c.append(reply)
	return reply, nil
}

// History returns a copy of the transcript in arrival order.
func (c *Conversation) History() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ChatMessage(nil), c.history...)
}

// Document returns the document this conversation is about.
func (c *Conversation) Document() domain.DocumentName { return c.document }

func (c *Conversation) append(m domain.ChatMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, m)
}

// Compile-time assertions against the domain contracts.
var (
	_ domain.ChatService  = (*Service)(nil)
	_ domain.Conversation = (*Conversation)(nil)
)
