package app

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the production automation backend.
const DefaultBaseURL = "https://n8n.bernardolobo.com.br"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string       // app dir, e.g. $HOME/.juria
	BaseURL   string       // webhook base URL
	BasicUser string       // Basic-auth credential sent on every webhook call
	BasicPass string
	Verbose   bool         // development logging
	HTTP      *http.Client // optional; defaults to http.DefaultClient
}

// FromEnv loads configuration from the environment, honouring a .env file in
// the working directory when present.
//
// Variables: JURIA_HOME, JURIA_BASE_URL, JURIA_BASIC_USER, JURIA_BASIC_PASS.
// The Basic credential has no default on purpose: it is a secret and must be
// injected, never compiled in.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Home:      os.Getenv("JURIA_HOME"),
		BaseURL:   os.Getenv("JURIA_BASE_URL"),
		BasicUser: os.Getenv("JURIA_BASIC_USER"),
		BasicPass: os.Getenv("JURIA_BASIC_PASS"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".juria")
	}
	return cfg, nil
}
