package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	var captured *Session
	handler := Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no cookie passes through anonymous", func(t *testing.T) {
		captured = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, captured)
	})

	t.Run("valid cookie attaches session", func(t *testing.T) {
		captured = nil
		token, err := svc.LoginPlayer(ctx, "Hunter")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.NotNil(t, captured)
		assert.Equal(t, "Hunter", captured.Nickname)
	})

	t.Run("invalid cookie passes through anonymous", func(t *testing.T) {
		captured = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, captured)
	})
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(okHandler())

	tests := []struct {
		name       string
		session    *Session
		wantStatus int
	}{
		{name: "no session", session: nil, wantStatus: http.StatusUnauthorized},
		{name: "player session", session: &Session{Nickname: "Hunter"}, wantStatus: http.StatusForbidden},
		{name: "admin session", session: &Session{IsAdmin: true}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.session != nil {
				req = req.WithContext(WithSession(req.Context(), tt.session))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequirePlayer(t *testing.T) {
	handler := RequirePlayer(okHandler())

	tests := []struct {
		name       string
		session    *Session
		wantStatus int
	}{
		{name: "no session", session: nil, wantStatus: http.StatusUnauthorized},
		{name: "admin session has no nickname", session: &Session{IsAdmin: true}, wantStatus: http.StatusUnauthorized},
		{name: "player session", session: &Session{Nickname: "Hunter"}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.session != nil {
				req = req.WithContext(WithSession(req.Context(), tt.session))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
