package action

import (
	"context"
	"strings"

	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"
)

const TagCart = "cart"

type CartActions struct {
	Items client.OrderItemsServiceInterface
	Tags  CacheInvalidator
}

func NewCartActions(items client.OrderItemsServiceInterface, tags CacheInvalidator) *CartActions {
	return &CartActions{Items: items, Tags: tags}
}

type AddToCartInput struct {
	MealID   string
	Quantity int
}

// AddToDraftCart creates a draft order item for the signed-in customer. A
// zero quantity means "not supplied" and defaults to 1.
func (a *CartActions) AddToDraftCart(ctx context.Context, sess *domain.Session, input AddToCartInput) Result {
	userID, err := requireSession(sess)
	if err != nil {
		return Fail(err)
	}

	mealID := strings.TrimSpace(input.MealID)
	if mealID == "" {
		return Fail(ValidationError("meal is required"))
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return Fail(ValidationError("quantity must be at least 1"))
	}

	item, err := a.Items.Create(ctx, client.CreateOrderItemInput{
		CustomerID: userID,
		MealID:     mealID,
		Quantity:   quantity,
	})
	if err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagCart)
	return OK(item)
}

func (a *CartActions) UpdateDraftItemQuantity(ctx context.Context, sess *domain.Session, itemID string, quantity int) Result {
	if _, err := requireSession(sess); err != nil {
		return Fail(err)
	}
	if itemID == "" {
		return Fail(ValidationError("item id is required"))
	}
	if quantity < 1 {
		return Fail(ValidationError("quantity must be at least 1"))
	}

	item, err := a.Items.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagCart)
	return OK(item)
}

func (a *CartActions) RemoveDraftItem(ctx context.Context, sess *domain.Session, itemID string) Result {
	if _, err := requireSession(sess); err != nil {
		return Fail(err)
	}
	if itemID == "" {
		return Fail(ValidationError("item id is required"))
	}

	if err := a.Items.Remove(ctx, itemID); err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagCart)
	return OK(nil)
}
