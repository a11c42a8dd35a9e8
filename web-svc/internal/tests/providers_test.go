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

func TestCreateProviderRequiresSession(t *testing.T) {
	providers := mocks.NewProvidersServiceInterface(t)
	inv := mocks.NewCacheInvalidator(t)
	actions := action.NewProviderActions(providers, inv)

	res := actions.CreateProvider(context.Background(), nil, action.CreateProviderInput{ShopName: "Mezban Kitchen"})

	assert.Equal(t, action.KindError, res.Kind)
	assert.ErrorIs(t, res.Err, action.ErrUnauthorized)
	providers.AssertNotCalled(t, "Create")
}

func TestCreateProviderRequiresShopName(t *testing.T) {
	providers := mocks.NewProvidersServiceInterface(t)
	inv := mocks.NewCacheInvalidator(t)
	actions := action.NewProviderActions(providers, inv)

	res := actions.CreateProvider(context.Background(), customerSession("u1"), action.CreateProviderInput{ShopName: "   "})

	assert.Equal(t, action.KindError, res.Kind)
	var vErr action.ValidationError
	assert.ErrorAs(t, res.Err, &vErr)
	providers.AssertNotCalled(t, "Create")
}

func TestCreateProviderUsesSessionUserID(t *testing.T) {
	providers := mocks.NewProvidersServiceInterface(t)
	inv := mocks.NewCacheInvalidator(t)
	actions := action.NewProviderActions(providers, inv)

	providers.On("Create", mock.Anything, client.CreateProviderInput{
		UserID:   "u1",
		ShopName: "Mezban Kitchen",
		Address:  "45 Mirpur Rd",
	}).Return(&domain.Provider{ID: "p1", UserID: "u1", ShopName: "Mezban Kitchen"}, nil)
	inv.On("Invalidate", mock.Anything, []string{action.TagProviders})

	res := actions.CreateProvider(context.Background(), customerSession("u1"), action.CreateProviderInput{
		ShopName: " Mezban Kitchen ",
		Address:  " 45 Mirpur Rd ",
	})

	require.Equal(t, action.KindRedirect, res.Kind)
	assert.Equal(t, "/provider", res.To)
}
