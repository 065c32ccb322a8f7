package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sakif/staffdesk/internal/config"
	"github.com/sakif/staffdesk/internal/server"
)

// newTestRouter assembles the full stack over an in-memory database, so
// these tests exercise routing, middleware, handlers, services and the
// repositories together.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Env: "test",
		DB:  config.DB{Path: ":memory:"},
		Auth: config.Auth{
			JWTSecret:  "test-secret-at-least-16-chars!!",
			TokenTTL:   time.Hour,
			BcryptCost: 4,
		},
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	srv, err := server.New(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })

	return srv.Router()
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rr.Body).Decode(dst))
}

// registerAndLogin creates a user and returns a valid token for it.
func registerAndLogin(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	rr := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"first_name": "Test",
		"last_name":  "Admin",
		"email":      email,
		"password":   "secret1",
	})
	require.Equal(t, http.StatusCreated, rr.Code, "register: %s", rr.Body.String())

	rr = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rr.Code, "login: %s", rr.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	decodeResponse(t, rr, &res)
	require.NotEmpty(t, res.Token)
	return res.Token
}
