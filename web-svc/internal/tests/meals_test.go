package tests

import (
	"context"
	"testing"

	"mealgate/web-svc/internal/action"
	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"
	"mealgate/web-svc/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validMealInput() client.CreateMealInput {
	return client.CreateMealInput{
		CategoryID:  "c1",
		Title:       "Beef Tehari",
		Description: "Spiced rice with beef",
		Price:       220,
	}
}

func TestCreateMealRequiresProviderOrAdmin(t *testing.T) {
	meals := mocks.NewMealsServiceInterface(t)
	inv := mocks.NewCacheInvalidator(t)
	actions := action.NewMealActions(meals, inv)

	for _, sess := range []*domain.Session{nil, customerSession("u1")} {
		res := actions.CreateMeal(context.Background(), sess, validMealInput())

		assert.Equal(t, action.KindError, res.Kind)
		assert.ErrorIs(t, res.Err, action.ErrUnauthorized)
	}
	meals.AssertNotCalled(t, "Create")
}

func TestCreateMealValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*client.CreateMealInput)
	}{
		{"title is required", func(in *client.CreateMealInput) { in.Title = "  " }},
		{"category is required", func(in *client.CreateMealInput) { in.CategoryID = "" }},
		{"zero price is rejected", func(in *client.CreateMealInput) { in.Price = 0 }},
		{"negative price is rejected", func(in *client.CreateMealInput) { in.Price = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meals := mocks.NewMealsServiceInterface(t)
			inv := mocks.NewCacheInvalidator(t)
			actions := action.NewMealActions(meals, inv)

			input := validMealInput()
			tt.mutate(&input)
			res := actions.CreateMeal(context.Background(), sessionWithRole("p1", domain.RoleProvider), input)

			assert.Equal(t, action.KindError, res.Kind)
			var vErr action.ValidationError
			assert.ErrorAs(t, res.Err, &vErr)
			meals.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateMealRedirectsToCatalog(t *testing.T) {
	meals := mocks.NewMealsServiceInterface(t)
	inv := mocks.NewCacheInvalidator(t)
	actions := action.NewMealActions(meals, inv)

	meals.On("Create", mock.Anything, validMealInput()).
		Return(&domain.Meal{ID: "m1", Title: "Beef Tehari"}, nil)
	inv.On("Invalidate", mock.Anything, []string{action.TagMeals})

	res := actions.CreateMeal(context.Background(), sessionWithRole("p1", domain.RoleProvider), validMealInput())

	require.Equal(t, action.KindRedirect, res.Kind)
	assert.Equal(t, "/meals", res.To)
}

func TestDeleteMealInvalidatesBothTags(t *testing.T) {
	meals := mocks.NewMealsServiceInterface(t)
	inv := mocks.NewCacheInvalidator(t)
	actions := action.NewMealActions(meals, inv)

	meals.On("Delete", mock.Anything, "m1").Return(nil)
	inv.On("Invalidate", mock.Anything, []string{action.TagMeals, action.TagMeal("m1")})

	res := actions.DeleteMeal(context.Background(), sessionWithRole("admin", domain.RoleAdmin), "m1")

	assert.Equal(t, action.KindOK, res.Kind)
}
