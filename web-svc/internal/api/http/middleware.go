package httpapi

import (
	"context"
	"log"
	"net/http"

	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"

	"github.com/google/uuid"
)

type ctxKey int

const sessionCtxKey ctxKey = iota

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		log.Printf("[web-svc] %s %s request_id=%s", r.Method, r.URL.Path, requestID)
		next.ServeHTTP(w, r)
	})
}

// sessionMiddleware forwards the inbound cookie jar to every outbound call and
// resolves the session once per request. Anonymous callers proceed with a nil
// session; role checks happen downstream.
func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := client.WithCookies(r.Context(), client.CookieHeaderFromRequest(r))

		if sess, err := h.Sessions.Get(ctx); err == nil {
			ctx = context.WithValue(ctx, sessionCtxKey, sess)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(r *http.Request) *domain.Session {
	sess, _ := r.Context().Value(sessionCtxKey).(*domain.Session)
	return sess
}

// requireSession gates personalized reads. Writes are gated inside the action
// layer instead.
func (h *Handler) requireSession(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	sess := sessionFrom(r)
	if sess.UserID() == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"error": map[string]any{"message": "unauthorized"},
		})
		return nil, false
	}
	return sess, true
}

func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, roles ...domain.Role) (*domain.Session, bool) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return nil, false
	}
	for _, role := range roles {
		if sess.Role() == role {
			return sess, true
		}
	}
	writeJSON(w, http.StatusForbidden, map[string]any{
		"error": map[string]any{"message": "forbidden"},
	})
	return nil, false
}
