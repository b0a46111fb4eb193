package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/shooid/shoo-shop/internal/session"
)

type ctxKey int

const (
	sessionCtxKey ctxKey = iota
	tokenCtxKey
)

// requireSession resolves the Bearer token against the session store. The
// whole shop sits behind it; without a valid token only /auth/* is reachable.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing token"})
			return
		}
		rec, err := h.Sessions.Get(r.Context(), token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired session"})
			return
		}
		ctx := context.WithValue(r.Context(), sessionCtxKey, rec)
		ctx = context.WithValue(ctx, tokenCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) session.Record {
	rec, _ := ctx.Value(sessionCtxKey).(session.Record)
	return rec
}

func tokenFrom(ctx context.Context) string {
	t, _ := ctx.Value(tokenCtxKey).(string)
	return t
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
