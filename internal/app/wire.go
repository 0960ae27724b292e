package app

import (
	"net/http"
	"os"

	"go.uber.org/zap"

	"juria/internal/domain"
	"juria/internal/services/auth"
	"juria/internal/services/chat"
	"juria/internal/services/document"
	"juria/internal/store"
	"juria/internal/webhook"
)

// Wire bundles the store, services and clients for the CLI.
type Wire struct {
	Sessions  domain.SessionStore
	Auth      domain.AuthService
	Documents domain.DocumentService
	Chat      domain.ChatService
	Log       *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	sessions := store.NewSessionFileStore(cfg.Home, log)
	client := webhook.New(cfg.BaseURL, cfg.BasicUser, cfg.BasicPass, httpClient, log)

	return &Wire{
		Sessions:  sessions,
		Auth:      auth.New(client, sessions, log),
		Documents: document.New(client, sessions, log),
		Chat:      chat.New(client, log),
		Log:       log,
	}, nil
}

// newLogger keeps the CLI quiet by default; --verbose switches to the
// human-readable development config.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
