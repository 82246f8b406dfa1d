package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sahatech/clinic-seed/internal/config"
	"github.com/sahatech/clinic-seed/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

// fakeAuth mimics the relyingparty endpoints of Firebase Auth
type fakeAuth struct {
	users map[string]string // email -> password
	calls []string
}

func (f *fakeAuth) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	f.calls = append(f.calls, r.URL.Path)

	switch r.URL.Path {
	case "/signupNewUser":
		if _, ok := f.users[req.Email]; ok {
			writeAuthError(w, "EMAIL_EXISTS")
			return
		}
		if len(req.Password) < 6 {
			writeAuthError(w, "WEAK_PASSWORD : Password should be at least 6 characters")
			return
		}
		f.users[req.Email] = req.Password
		writeJSON(w, map[string]string{"localId": "uid-" + req.Email, "email": req.Email})
	case "/verifyPassword":
		pw, ok := f.users[req.Email]
		if !ok {
			writeAuthError(w, "EMAIL_NOT_FOUND")
			return
		}
		if pw != req.Password {
			writeAuthError(w, "INVALID_PASSWORD")
			return
		}
		writeJSON(w, map[string]string{"localId": "uid-" + req.Email, "email": req.Email})
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":    400,
			"message": message,
			"errors": []map[string]string{
				{"message": message, "domain": "global", "reason": "invalid"},
			},
		},
	})
}

func newTestService(t *testing.T) (*ToolkitService, *fakeAuth) {
	t.Helper()
	fake := &fakeAuth{users: map[string]string{"existing@sahatech.com": "123456"}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	svc, err := NewToolkitService(context.Background(),
		config.Firebase{APIKey: "test-key"},
		config.Auth{RateLimitPerSecond: 1000, RateLimitBurst: 10},
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return svc, fake
}

func TestCreateAccount(t *testing.T) {
	svc, fake := newTestService(t)

	uid, err := svc.CreateAccount(context.Background(), "new@sahatech.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "uid-new@sahatech.com", uid)
	assert.Equal(t, []string{"/signupNewUser"}, fake.calls)
}

func TestCreateAccountEmailExists(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateAccount(context.Background(), "existing@sahatech.com", "123456")
	assert.ErrorIs(t, err, seed.ErrEmailExists)
}

func TestCreateAccountOtherErrorPassesThrough(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateAccount(context.Background(), "weak@sahatech.com", "123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, seed.ErrEmailExists)
	assert.Contains(t, err.Error(), "WEAK_PASSWORD")
}

func TestSignIn(t *testing.T) {
	svc, _ := newTestService(t)

	uid, err := svc.SignIn(context.Background(), "existing@sahatech.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "uid-existing@sahatech.com", uid)

	_, err = svc.SignIn(context.Background(), "existing@sahatech.com", "wrong1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), "nobody@sahatech.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNewToolkitServiceRequiresAPIKey(t *testing.T) {
	_, err := NewToolkitService(context.Background(), config.Firebase{}, config.Auth{RateLimitPerSecond: 1})
	assert.ErrorIs(t, err, config.ErrMissingSetting)
}

func TestCancelledContextStopsBeforeCalling(t *testing.T) {
	svc, fake := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateAccount(ctx, "new@sahatech.com", "123456")
	assert.Error(t, err)
	assert.Empty(t, fake.calls)
}
