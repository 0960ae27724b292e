package document

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"juria/internal/content"
	"juria/internal/digest"
	"juria/internal/domain"
	"juria/internal/webhook"
)

// Service performs the document operations against the backend.
type Service struct {
	client   domain.WebhookClient
	sessions domain.SessionStore
	log      *zap.Logger
}

// New constructs a document Service over the given transport and session store.
func New(client domain.WebhookClient, sessions domain.SessionStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, sessions: sessions, log: log}
}

// Upload sends a PDF under name for the logged-in user.
func (s *Service) Upload(ctx context.Context, name domain.DocumentName, fileName string, data []byte) error {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return domain.ErrNotLoggedIn
	}
	if strings.TrimSpace(name.String()) == "" {
		return fmt.Errorf("%w: enter a name for the document", domain.ErrValidation)
	}

	resp, err := s.client.PostMultipart(ctx, webhook.PathUpload,
		map[string]string{
			"username":       digest.Hex(user),
			"nome_documento": name.String(),
			"is_file":        "true",
		},
		&domain.FilePart{
			FieldName: "file",
			FileName:  fileName,
			Content:   data,
		})
	if err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("upload failed: backend replied %d", resp.Status)
	}
	s.log.Debug("document uploaded", zap.String("name", name.String()))
	return nil
}

// List returns the user's document names, in the order the backend sent them.
// An empty list is a valid, successful result.
func (s *Service) List(ctx context.Context) ([]domain.DocumentName, error) {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return nil, domain.ErrNotLoggedIn
	}

	resp, err := s.client.PostJSON(ctx, webhook.PathHistory, map[string]string{
		"username": digest.Hex(user),
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, fmt.Errorf("could not load documents: backend replied %d", resp.Status)
	}

	names := content.InterpretList(resp.Body)
	out := make([]domain.DocumentName, 0, len(names))
	for _, n := range names {
		out = append(out, domain.DocumentName(n))
	}
	return out, nil
}

// Fetch retrieves a document's original and translated text. The reply is
// interpreted leniently; missing halves come back as placeholders.
func (s *Service) Fetch(ctx context.Context, name domain.DocumentName) (domain.DocumentContent, error) {
	if _, ok := s.sessions.CurrentUser(); !ok {
		return domain.DocumentContent{}, domain.ErrNotLoggedIn
	}

	resp, err := s.client.PostJSON(ctx, webhook.PathDocument, map[string]string{
		"nome_documento": name.String(),
	})
	if err != nil {
		return domain.DocumentContent{}, err
	}
	if !resp.OK {
		return domain.DocumentContent{}, fmt.Errorf("could not load document: backend replied %d", resp.Status)
	}
	return content.Interpret(resp.Body), nil
}

// Compile-time assertion that Service implements domain.DocumentService.
var _ domain.DocumentService = (*Service)(nil)
