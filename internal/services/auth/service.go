package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"juria/internal/digest"
	"juria/internal/domain"
	"juria/internal/webhook"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Service handles login, registration and logout.
type Service struct {
	client   domain.WebhookClient
	sessions domain.SessionStore
	log      *zap.Logger
}

// New constructs an auth Service over the given transport and session store.
func New(client domain.WebhookClient, sessions domain.SessionStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, sessions: sessions, log: log}
}

// loginReply is the only structured shape the login webhook is trusted for.
type loginReply struct {
	Confirmation string `json:"confirmation"`
}

// Login digests the credentials, exchanges them with the backend and, on a
// positive confirmation, persists the plaintext username locally.
//
// A reply without the literal confirmation "True" is reported as
// domain.ErrInvalidCredentials; a typo and a backend malfunction are
// indistinguishable. A session-store write failure is logged, not surfaced:
// the login itself succeeded.
func (s *Service) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: enter both username and password", domain.ErrValidation)
	}

	resp, err := s.client.PostJSON(ctx, webhook.PathLogin, map[string]string{
		"username": digest.Hex(username),
		"password": digest.Hex(password),
	})
	if err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("login failed: backend replied %d", resp.Status)
	}

	var reply loginReply
	if err := json.Unmarshal([]byte(resp.Body), &reply); err != nil || reply.Confirmation != "True" {
		return domain.ErrInvalidCredentials
	}

	if err := s.sessions.Login(username); err != nil {
		s.log.Warn("could not persist session", zap.String("username", username), zap.Error(err))
	}
	return nil
}

// Register validates the form input and creates an account on the backend.
//
// The backend receives digests of email, username and password, plus the
// plaintext username (its primary key) and email (for contact). Any 2xx reply
// is success even when the body is unparseable.
func (s *Service) Register(ctx context.Context, email, username, password, confirm string) error {
	switch {
	case email == "" || username == "" || password == "" || confirm == "":
		return fmt.Errorf("%w: fill in all fields", domain.ErrValidation)
	case password != confirm:
		return fmt.Errorf("%w: passwords do not match", domain.ErrValidation)
	case len(username) < 3:
		return fmt.Errorf("%w: username must be at least 3 characters long", domain.ErrValidation)
	case !usernamePattern.MatchString(username):
		return fmt.Errorf("%w: username may only contain letters, numbers and underscores", domain.ErrValidation)
	}

	resp, err := s.client.PostJSON(ctx, webhook.PathRegister, map[string]string{
		"email":            digest.Hex(email),
		"username":         digest.Hex(username),
		"password":         digest.Hex(password),
		"originalUsername": username,
		"originalEmail":    email,
	})
	if err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("registration failed: %d %s", resp.Status, strings.TrimSpace(resp.Body))
	}
	return nil
}

// Logout clears the local session slot; the backend keeps no session state.
// A storage failure is logged, not surfaced.
func (s *Service) Logout() error {
	if err := s.sessions.Logout(); err != nil {
		s.log.Warn("could not clear session slot", zap.Error(err))
	}
	return nil
}

// CurrentUser reports the logged-in username, if any.
func (s *Service) CurrentUser() (string, bool) {
	return s.sessions.CurrentUser()
}

// Compile-time assertion that Service implements domain.AuthService.
var _ domain.AuthService = (*Service)(nil)
