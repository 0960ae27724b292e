package domain

import "context"

// WebhookClient is how we talk to the automation backend, all with context.
//
// Both methods follow the resolve-always convention: any HTTP-level reply,
// 2xx or not, yields a Response and a nil error. An error is returned only
// when no reply arrived at all (network-level failure). One attempt per call.
type WebhookClient interface {
	PostJSON(ctx context.Context, path string, payload any) (Response, error)
	PostMultipart(ctx context.Context, path string, fields map[string]string, file *FilePart) (Response, error)
}

// SessionStore persists the logged-in username between runs.
//
// CurrentUser must fail open to "logged out": a read or decode failure is
// reported as no session, never as an error and never as a session.
type SessionStore interface {
	Login(username string) error
	Logout() error
	CurrentUser() (string, bool)
}

// AuthService exchanges credentials with the backend and owns the local session.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, email, username, password, confirm string) error
	Logout() error
	CurrentUser() (string, bool)
}

// DocumentService uploads documents and retrieves their content.
type DocumentService interface {
	Upload(ctx context.Context, name DocumentName, fileName string, data []byte) error
	List(ctx context.Context) ([]DocumentName, error)
	Fetch(ctx context.Context, name DocumentName) (DocumentContent, error)
}

// ChatService opens conversations about uploaded documents.
type ChatService interface {
	Open(name DocumentName) Conversation
}

// Conversation is an append-only transcript bound to one document. It lives
// for a single viewing session and is never persisted.
type Conversation interface {
	Send(ctx context.Context, text string) (ChatMessage, error)
	History() []ChatMessage
	Document() DocumentName
}
