package client

import (
	"context"
	"net/http"
	"net/url"

	"mealgate/web-svc/internal/domain"
)

type CreateOrderFromDraftsInput struct {
	DeliveryAddress string  `json:"deliveryAddress"`
	Phone           string  `json:"phone"`
	Note            string  `json:"note,omitempty"`
	DeliveryFee     float64 `json:"deliveryFee"`
}

type updateOrderStatusInput struct {
	Status domain.OrderStatus `json:"status"`
}

type OrdersServiceInterface interface {
	GetAll(ctx context.Context) ([]domain.Order, error)
	GetMine(ctx context.Context) ([]domain.Order, error)
	GetByProvider(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	CreateFromDrafts(ctx context.Context, input CreateOrderFromDraftsInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type OrdersService struct {
	c *Client
}

func NewOrdersService(c *Client) *OrdersService {
	return &OrdersService{c: c}
}

func (s *OrdersService) GetAll(ctx context.Context) ([]domain.Order, error) {
	raw, err := s.c.doJSON(ctx, "fetch orders", http.MethodGet, s.c.apiURL("/orders", nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[domain.Order]("fetch orders", raw), nil
}

func (s *OrdersService) GetMine(ctx context.Context) ([]domain.Order, error) {
	raw, err := s.c.doJSON(ctx, "fetch my orders", http.MethodGet, s.c.apiURL("/orders/me", nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[domain.Order]("fetch my orders", raw), nil
}

// GetByProvider lists the orders containing the calling provider's meals; the
// backend resolves the provider from the forwarded session.
func (s *OrdersService) GetByProvider(ctx context.Context) ([]domain.Order, error) {
	raw, err := s.c.doJSON(ctx, "fetch provider orders", http.MethodGet, s.c.apiURL("/providers/orders", nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[domain.Order]("fetch provider orders", raw), nil
}

func (s *OrdersService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	raw, err := s.c.doJSON(ctx, "fetch order", http.MethodGet, s.c.apiURL("/orders/"+url.PathEscape(id), nil), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Order]("fetch order", raw)
}

// CreateFromDrafts asks the backend to convert all of the customer's draft
// items into a single order. The backend owns atomicity, subtotal and total
// computation, and clearing the draft set.
func (s *OrdersService) CreateFromDrafts(ctx context.Context, input CreateOrderFromDraftsInput) (*domain.Order, error) {
	raw, err := s.c.doJSON(ctx, "create order", http.MethodPost, s.c.apiURL("/orders/from-drafts", nil), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Order]("create order", raw)
}

func (s *OrdersService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	raw, err := s.c.doJSON(ctx, "update order status", http.MethodPatch,
		s.c.apiURL("/orders/"+url.PathEscape(id)+"/status", nil), updateOrderStatusInput{Status: status})
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Order]("update order status", raw)
}

var _ OrdersServiceInterface = (*OrdersService)(nil)
