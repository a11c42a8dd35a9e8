package client

import (
	"context"
	"net/http"

	"mealgate/web-svc/internal/domain"
)

type SessionServiceInterface interface {
	Get(ctx context.Context) (*domain.Session, error)
}

// SessionService resolves the caller's session from the auth provider using
// the forwarded cookies. Nothing is cached; each request resolves fresh.
type SessionService struct {
	c *Client
}

func NewSessionService(c *Client) *SessionService {
	return &SessionService{c: c}
}

func (s *SessionService) Get(ctx context.Context) (*domain.Session, error) {
	raw, err := s.c.doJSON(ctx, "fetch session", http.MethodGet, s.c.authURL("/get-session"), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Session]("fetch session", raw)
}

var _ SessionServiceInterface = (*SessionService)(nil)
