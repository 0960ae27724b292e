package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"juria/internal/digest"
	"juria/internal/domain"
	"juria/internal/services/auth"
	"juria/internal/store"
	"juria/internal/webhook"
)

func newService(t *testing.T, handler http.Handler) (*auth.Service, *store.SessionFileStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sessions := store.NewSessionFileStore(t.TempDir(), nil)
	client := webhook.New(srv.URL, "svc", "secret", srv.Client(), nil)
	return auth.New(client, sessions, nil), sessions
}

func TestLogin_Success(t *testing.T) {
	var gotBody map[string]string
	svc, sessions := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, webhook.PathLogin, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"confirmation": "True"}`)
	}))

	require.NoError(t, svc.Login(context.Background(), "alice", "s3cret"))

	// digests on the wire, plaintext username in the slot
	assert.Equal(t, digest.Hex("alice"), gotBody["username"])
	assert.Equal(t, digest.Hex("s3cret"), gotBody["password"])
	user, ok := sessions.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "alice", user)
}

func TestLogin_NegativeConfirmation(t *testing.T) {
	svc, sessions := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"confirmation": "False"}`)
	}))

	err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, ok := sessions.CurrentUser()
	assert.False(t, ok)
}

func TestLogin_UnparseableBodyIsRejection(t *testing.T) {
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "welcome!")
	}))

	err := svc.Login(context.Background(), "alice", "s3cret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_ValidationSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)
	err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, calls.Load())
}

func TestRegister_Validation(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	tests := []struct {
		name                               string
		email, username, password, confirm string
	}{
		{"missing field", "", "alice", "pw", "pw"},
		{"password mismatch", "a@b.c", "alice", "pw1", "pw2"},
		{"username too short", "a@b.c", "al", "pw", "pw"},
		{"username bad characters", "a@b.c", "alice!", "pw", "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(context.Background(), tt.email, tt.username, tt.password, tt.confirm)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Zero(t, calls.Load())
}

func TestRegister_Success(t *testing.T) {
	var gotBody map[string]string
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, webhook.PathRegister, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, "not json at all") // 2xx is enough
	}))

	require.NoError(t, svc.Register(context.Background(), "a@b.c", "alice", "pw", "pw"))

	assert.Equal(t, digest.Hex("a@b.c"), gotBody["email"])
	assert.Equal(t, digest.Hex("alice"), gotBody["username"])
	assert.Equal(t, digest.Hex("pw"), gotBody["password"])
	assert.Equal(t, "alice", gotBody["originalUsername"])
	assert.Equal(t, "a@b.c", gotBody["originalEmail"])
}

func TestRegister_BackendRejection(t *testing.T) {
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate user", http.StatusConflict)
	}))

	err := svc.Register(context.Background(), "a@b.c", "alice", "pw", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "duplicate user")
}

func TestLogoutClearsSession(t *testing.T) {
	svc, sessions := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"confirmation": "True"}`)
	}))

	require.NoError(t, svc.Login(context.Background(), "alice", "pw"))
	require.NoError(t, svc.Logout())

	_, ok := sessions.CurrentUser()
	assert.False(t, ok)
	_, ok = svc.CurrentUser()
	assert.False(t, ok)
}
