package client

import (
	"context"
	"net/http"
	"net/url"

	"mealgate/web-svc/internal/domain"
)

type CreateProviderInput struct {
	UserID      string `json:"userId"`
	ShopName    string `json:"shopName"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

type ProvidersServiceInterface interface {
	GetAll(ctx context.Context) ([]domain.Provider, error)
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	Create(ctx context.Context, input CreateProviderInput) (*domain.Provider, error)
}

type ProvidersService struct {
	c *Client
}

func NewProvidersService(c *Client) *ProvidersService {
	return &ProvidersService{c: c}
}

func (s *ProvidersService) GetAll(ctx context.Context) ([]domain.Provider, error) {
	raw, err := s.c.doJSON(ctx, "fetch providers", http.MethodGet, s.c.apiURL("/providers", nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[domain.Provider]("fetch providers", raw), nil
}

func (s *ProvidersService) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	raw, err := s.c.doJSON(ctx, "fetch provider", http.MethodGet, s.c.apiURL("/providers/"+url.PathEscape(id), nil), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Provider]("fetch provider", raw)
}

// Create claims the provider role for the authenticated user.
func (s *ProvidersService) Create(ctx context.Context, input CreateProviderInput) (*domain.Provider, error) {
	raw, err := s.c.doJSON(ctx, "create provider", http.MethodPost, s.c.apiURL("/providers/me", nil), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Provider]("create provider", raw)
}

var _ ProvidersServiceInterface = (*ProvidersService)(nil)
