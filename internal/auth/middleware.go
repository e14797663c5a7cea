package auth

import (
	"context"
	"net/http"
)

type ctxKey struct{}

// FromContext returns the session attached to the request, if any
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(ctxKey{}).(*Session)
	return session, ok
}

// WithSession attaches a session to the context; used by middleware and tests
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, session)
}

// Middleware resolves the session cookie, if present, and attaches the
// session to the request context. Requests without a valid cookie pass
// through anonymous; the Require* wrappers enforce access.
func Middleware(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err == nil {
				if session, err := svc.ParseToken(cookie.Value); err == nil {
					r = r.WithContext(WithSession(r.Context(), session))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects requests without an admin session
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := FromContext(r.Context())
		if !ok {
			denyJSON(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !session.IsAdmin {
			denyJSON(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePlayer rejects requests without a player session
func RequirePlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := FromContext(r.Context())
		if !ok || session.Nickname == "" {
			denyJSON(w, http.StatusUnauthorized, "player login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func denyJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
