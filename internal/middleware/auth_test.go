package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"movie-catalog-api/internal/auth"
	"movie-catalog-api/internal/model"
)

type staticValidator struct {
	claims *auth.Claims
	err    error
}

func (v staticValidator) Validate(string) (*auth.Claims, error) {
	return v.claims, v.err
}

func okHandler(t *testing.T, sawClaims *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ClaimsFromContext(r.Context()); ok {
			*sawClaims = true
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(staticValidator{claims: &auth.Claims{Username: "alice"}})

	var sawClaims bool
	handler := m.RequireAuth(okHandler(t, &sawClaims))

	for _, header := range []string{"", "Token abc", "bearer"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
	require.False(t, sawClaims)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	m := NewAuthMiddleware(staticValidator{err: model.ErrUnauthorized})

	var sawClaims bool
	handler := m.RequireAuth(okHandler(t, &sawClaims))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, sawClaims)
}

func TestRequireAuthAdmitsValidToken(t *testing.T) {
	tokens, err := auth.NewTokenManager("test-secret")
	require.NoError(t, err)
	token, _, err := tokens.Issue("alice", model.RoleUser)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokens)

	var sawClaims bool
	handler := m.RequireAuth(okHandler(t, &sawClaims))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, sawClaims)
}

func TestRequireRoles(t *testing.T) {
	tokens, err := auth.NewTokenManager("test-secret")
	require.NoError(t, err)
	m := NewAuthMiddleware(tokens)

	var sawClaims bool
	handler := m.RequireAuth(m.RequireRoles(model.RoleAdmin)(okHandler(t, &sawClaims)))

	userToken, _, err := tokens.Issue("alice", model.RoleUser)
	require.NoError(t, err)
	adminToken, _, err := tokens.Issue("admin1", model.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/movies", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesWithoutAuthContext(t *testing.T) {
	m := NewAuthMiddleware(staticValidator{})

	var sawClaims bool
	handler := m.RequireRoles(model.RoleAdmin)(okHandler(t, &sawClaims))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExpiredTokenDenied(t *testing.T) {
	tokens, err := auth.NewTokenManager("test-secret")
	require.NoError(t, err)

	// Issue against a different manager whose clock sits in the past.
	past, err := auth.NewTokenManagerAt("test-secret", func() time.Time {
		return time.Now().Add(-auth.TokenTTL - time.Hour)
	})
	require.NoError(t, err)
	expired, _, err := past.Issue("alice", model.RoleUser)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokens)
	var sawClaims bool
	handler := m.RequireAuth(okHandler(t, &sawClaims))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
