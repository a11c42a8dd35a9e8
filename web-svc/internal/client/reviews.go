package client

import (
	"context"
	"net/http"
	"net/url"

	"mealgate/web-svc/internal/domain"
)

type CreateReviewInput struct {
	CustomerID string `json:"customerId"`
	MealID     string `json:"mealId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
}

type ReviewsServiceInterface interface {
	GetAll(ctx context.Context) ([]domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
}

type ReviewsService struct {
	c *Client
}

func NewReviewsService(c *Client) *ReviewsService {
	return &ReviewsService{c: c}
}

func (s *ReviewsService) GetAll(ctx context.Context) ([]domain.Review, error) {
	raw, err := s.c.doJSON(ctx, "fetch reviews", http.MethodGet, s.c.apiURL("/reviews", nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[domain.Review]("fetch reviews", raw), nil
}

func (s *ReviewsService) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	raw, err := s.c.doJSON(ctx, "fetch review", http.MethodGet, s.c.apiURL("/reviews/"+url.PathEscape(id), nil), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Review]("fetch review", raw)
}

func (s *ReviewsService) Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	raw, err := s.c.doJSON(ctx, "create review", http.MethodPost, s.c.apiURL("/reviews", nil), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Review]("create review", raw)
}

var _ ReviewsServiceInterface = (*ReviewsService)(nil)
