package action

import (
	"context"
	"strings"

	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"
)

const TagOrders = "orders"

type OrderActions struct {
	Orders client.OrdersServiceInterface
	Tags   CacheInvalidator
}

func NewOrderActions(orders client.OrdersServiceInterface, tags CacheInvalidator) *OrderActions {
	return &OrderActions{Orders: orders, Tags: tags}
}

type CheckoutInput struct {
	DeliveryAddress string
	Phone           string
	Note            string
	DeliveryFee     float64
}

// CreateOrderFromDrafts commits the customer's draft cart into an order. The
// backend converts the drafts atomically and computes subtotal and total;
// partial failure handling lives there, not here.
func (a *OrderActions) CreateOrderFromDrafts(ctx context.Context, sess *domain.Session, input CheckoutInput) Result {
	if _, err := requireSession(sess); err != nil {
		return Fail(err)
	}

	address := strings.TrimSpace(input.DeliveryAddress)
	phone := strings.TrimSpace(input.Phone)
	if address == "" {
		return Fail(ValidationError("delivery address is required"))
	}
	if phone == "" {
		return Fail(ValidationError("phone is required"))
	}

	_, err := a.Orders.CreateFromDrafts(ctx, client.CreateOrderFromDraftsInput{
		DeliveryAddress: address,
		Phone:           phone,
		Note:            strings.TrimSpace(input.Note),
		DeliveryFee:     input.DeliveryFee,
	})
	if err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagCart, TagOrders)
	return Redirect("/customer-dashboard/customer-order")
}

// UpdateOrderStatus performs the provider/admin status transition. The role
// check here only keeps honest callers honest; the backend is the authority.
func (a *OrderActions) UpdateOrderStatus(ctx context.Context, sess *domain.Session, orderID string, status domain.OrderStatus) Result {
	if _, err := requireRole(sess, domain.RoleProvider, domain.RoleAdmin); err != nil {
		return Fail(err)
	}
	if orderID == "" {
		return Fail(ValidationError("order id is required"))
	}
	if !status.Valid() {
		return Fail(ValidationError("invalid order status"))
	}

	order, err := a.Orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagOrders)
	return OK(order)
}
