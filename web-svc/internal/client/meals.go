package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"mealgate/web-svc/internal/domain"
)

type MealsListParams struct {
	Query      string
	Page       int
	Limit      int
	ProviderID string
	CategoryID string
	Cuisine    string
	Available  *bool
}

func (p MealsListParams) values() url.Values {
	query := url.Values{}
	if p.Query != "" {
		query.Set("q", p.Query)
	}
	if p.Page > 0 {
		query.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		query.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.ProviderID != "" {
		query.Set("providerId", p.ProviderID)
	}
	if p.CategoryID != "" {
		query.Set("categoryId", p.CategoryID)
	}
	if p.Cuisine != "" {
		query.Set("cuisine", p.Cuisine)
	}
	if p.Available != nil {
		query.Set("isAvailable", strconv.FormatBool(*p.Available))
	}
	return query
}

type CreateMealInput struct {
	ProviderID  string  `json:"providerId,omitempty"`
	CategoryID  string  `json:"categoryId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Cuisine     string  `json:"cuisine,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

type MealsServiceInterface interface {
	GetAll(ctx context.Context, params MealsListParams) ([]domain.Meal, error)
	GetByID(ctx context.Context, id string) (*domain.Meal, error)
	Create(ctx context.Context, input CreateMealInput) (*domain.Meal, error)
	Delete(ctx context.Context, id string) error
}

type MealsService struct {
	c *Client
}

func NewMealsService(c *Client) *MealsService {
	return &MealsService{c: c}
}

func (s *MealsService) GetAll(ctx context.Context, params MealsListParams) ([]domain.Meal, error) {
	raw, err := s.c.doJSON(ctx, "fetch meals", http.MethodGet, s.c.apiURL("/meals", params.values()), nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[domain.Meal]("fetch meals", raw), nil
}

func (s *MealsService) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	raw, err := s.c.doJSON(ctx, "fetch meal", http.MethodGet, s.c.apiURL("/meals/"+url.PathEscape(id), nil), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Meal]("fetch meal", raw)
}

func (s *MealsService) Create(ctx context.Context, input CreateMealInput) (*domain.Meal, error) {
	raw, err := s.c.doJSON(ctx, "create meal", http.MethodPost, s.c.apiURL("/meals", nil), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Meal]("create meal", raw)
}

func (s *MealsService) Delete(ctx context.Context, id string) error {
	_, err := s.c.doJSON(ctx, "delete meal", http.MethodDelete, s.c.apiURL("/meals/"+url.PathEscape(id), nil), nil)
	return err
}

var _ MealsServiceInterface = (*MealsService)(nil)
