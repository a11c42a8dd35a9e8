package client

import (
	"context"
	"net/http"
	"net/url"

	"mealgate/web-svc/internal/domain"
)

type CreateCategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoriesServiceInterface interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoriesService struct {
	c *Client
}

func NewCategoriesService(c *Client) *CategoriesService {
	return &CategoriesService{c: c}
}

func (s *CategoriesService) GetAll(ctx context.Context) ([]domain.Category, error) {
	raw, err := s.c.doJSON(ctx, "fetch categories", http.MethodGet, s.c.apiURL("/categories", nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[domain.Category]("fetch categories", raw), nil
}

func (s *CategoriesService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	raw, err := s.c.doJSON(ctx, "fetch category", http.MethodGet, s.c.apiURL("/categories/"+url.PathEscape(id), nil), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Category]("fetch category", raw)
}

func (s *CategoriesService) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	raw, err := s.c.doJSON(ctx, "create category", http.MethodPost, s.c.apiURL("/categories", nil), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Category]("create category", raw)
}

func (s *CategoriesService) Delete(ctx context.Context, id string) error {
	_, err := s.c.doJSON(ctx, "delete category", http.MethodDelete, s.c.apiURL("/categories/"+url.PathEscape(id), nil), nil)
	return err
}

var _ CategoriesServiceInterface = (*CategoriesService)(nil)
