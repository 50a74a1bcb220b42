package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dailydo/dailydo/internal/auth"
	"github.com/dailydo/dailydo/internal/model"
)

// SessionStore resolves an opaque session token to its stored identity.
// A nil session with a nil error means the token is unknown or expired.
type SessionStore interface {
	GetSession(ctx context.Context, token string) (*model.Session, error)
}

// SessionConfig holds configuration for the session gate middleware.
type SessionConfig struct {
	Logger     *slog.Logger
	Store      SessionStore
	CookieName string
}

// Session returns a middleware that guards routes behind an authenticated
// browser session. Requests without a valid session cookie are rejected with
// 401 before any store access occurs; otherwise the identity is injected
// into the request context.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				writeAuthRequired(w)
				return
			}

			// Reject malformed tokens without a store round trip
			if !auth.ValidTokenFormat(cookie.Value) {
				cfg.Logger.Warn("session rejected",
					slog.String("reason", "malformed_token"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthRequired(w)
				return
			}

			sess, err := cfg.Store.GetSession(r.Context(), cookie.Value)
			if err != nil {
				cfg.Logger.Error("session store error",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthRequired(w)
				return
			}

			if sess == nil {
				cfg.Logger.Warn("session rejected",
					slog.String("reason", "unknown_or_expired"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthRequired(w)
				return
			}

			ctx := auth.ContextWithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthRequired writes a 401 response.
// The same body is used for every failure mode to prevent probing.
func writeAuthRequired(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Authentication required"}`))
}
