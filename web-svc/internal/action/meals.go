package action

import (
	"context"
	"strings"

	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"
)

const TagMeals = "meals"

func TagMeal(id string) string {
	return "meal:" + id
}

type MealActions struct {
	Meals client.MealsServiceInterface
	Tags  CacheInvalidator
}

func NewMealActions(meals client.MealsServiceInterface, tags CacheInvalidator) *MealActions {
	return &MealActions{Meals: meals, Tags: tags}
}

// CreateMeal is the canonical create contract: category, title and a positive
// price are required. ProviderID is only supplied by admins creating on a
// provider's behalf; for providers the backend attaches their own shop.
func (a *MealActions) CreateMeal(ctx context.Context, sess *domain.Session, input client.CreateMealInput) Result {
	if _, err := requireRole(sess, domain.RoleProvider, domain.RoleAdmin); err != nil {
		return Fail(err)
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return Fail(ValidationError("title is required"))
	}
	if input.CategoryID == "" {
		return Fail(ValidationError("category is required"))
	}
	if input.Price <= 0 {
		return Fail(ValidationError("price must be positive"))
	}

	if _, err := a.Meals.Create(ctx, input); err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagMeals)
	return Redirect("/meals")
}

func (a *MealActions) DeleteMeal(ctx context.Context, sess *domain.Session, mealID string) Result {
	if _, err := requireRole(sess, domain.RoleProvider, domain.RoleAdmin); err != nil {
		return Fail(err)
	}
	if mealID == "" {
		return Fail(ValidationError("meal id is required"))
	}

	if err := a.Meals.Delete(ctx, mealID); err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagMeals, TagMeal(mealID))
	return OK(nil)
}
