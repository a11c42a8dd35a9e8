package client

import (
	"context"
	"net/http"
	"net/url"

	"mealgate/web-svc/internal/domain"
)

type CreateOrderItemInput struct {
	CustomerID string `json:"customerId"`
	MealID     string `json:"mealId"`
	Quantity   int    `json:"quantity"`
}

type updateQuantityInput struct {
	Quantity int `json:"quantity"`
}

type OrderItemsServiceInterface interface {
	GetDrafts(ctx context.Context) ([]domain.OrderItem, error)
	Create(ctx context.Context, input CreateOrderItemInput) (*domain.OrderItem, error)
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.OrderItem, error)
	Remove(ctx context.Context, itemID string) error
}

// OrderItemsService manages the draft cart: order lines that exist under a
// customer but are not yet attached to a committed order.
type OrderItemsService struct {
	c *Client
}

func NewOrderItemsService(c *Client) *OrderItemsService {
	return &OrderItemsService{c: c}
}

func (s *OrderItemsService) GetDrafts(ctx context.Context) ([]domain.OrderItem, error) {
	raw, err := s.c.doJSON(ctx, "fetch order items", http.MethodGet, s.c.apiURL("/order-items", nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[domain.OrderItem]("fetch order items", raw), nil
}

func (s *OrderItemsService) Create(ctx context.Context, input CreateOrderItemInput) (*domain.OrderItem, error) {
	raw, err := s.c.doJSON(ctx, "create order item", http.MethodPost, s.c.apiURL("/order-items", nil), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.OrderItem]("create order item", raw)
}

func (s *OrderItemsService) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.OrderItem, error) {
	raw, err := s.c.doJSON(ctx, "update quantity", http.MethodPatch,
		s.c.apiURL("/order-items/"+url.PathEscape(itemID), nil), updateQuantityInput{Quantity: quantity})
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.OrderItem]("update quantity", raw)
}

func (s *OrderItemsService) Remove(ctx context.Context, itemID string) error {
	_, err := s.c.doJSON(ctx, "delete order item", http.MethodDelete, s.c.apiURL("/order-items/"+url.PathEscape(itemID), nil), nil)
	return err
}

var _ OrderItemsServiceInterface = (*OrderItemsService)(nil)
