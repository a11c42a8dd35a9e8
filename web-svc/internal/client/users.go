package client

import (
	"context"
	"net/http"
	"net/url"

	"mealgate/web-svc/internal/domain"
)

// UpdateUserInput is a partial patch; zero values are omitted so the backend
// only sees the field being changed.
type UpdateUserInput struct {
	Role   domain.Role       `json:"role,omitempty"`
	Status domain.UserStatus `json:"status,omitempty"`
}

type UsersServiceInterface interface {
	GetMe(ctx context.Context) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type UsersService struct {
	c *Client
}

func NewUsersService(c *Client) *UsersService {
	return &UsersService{c: c}
}

func (s *UsersService) GetMe(ctx context.Context) (*domain.User, error) {
	raw, err := s.c.doJSON(ctx, "fetch me", http.MethodGet, s.c.apiURL("/users/me", nil), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.User]("fetch me", raw)
}

func (s *UsersService) GetAll(ctx context.Context) ([]domain.User, error) {
	raw, err := s.c.doJSON(ctx, "fetch users", http.MethodGet, s.c.apiURL("/users", nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[domain.User]("fetch users", raw), nil
}

func (s *UsersService) Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	raw, err := s.c.doJSON(ctx, "update user", http.MethodPatch, s.c.apiURL("/users/"+url.PathEscape(id), nil), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.User]("update user", raw)
}

func (s *UsersService) Delete(ctx context.Context, id string) error {
	_, err := s.c.doJSON(ctx, "delete user", http.MethodDelete, s.c.apiURL("/users/"+url.PathEscape(id), nil), nil)
	return err
}

var _ UsersServiceInterface = (*UsersService)(nil)
