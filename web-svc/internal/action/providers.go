package action

import (
	"context"
	"strings"

	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"
)

const TagProviders = "providers"

type ProviderActions struct {
	Providers client.ProvidersServiceInterface
	Tags      CacheInvalidator
}

func NewProviderActions(providers client.ProvidersServiceInterface, tags CacheInvalidator) *ProviderActions {
	return &ProviderActions{Providers: providers, Tags: tags}
}

type CreateProviderInput struct {
	ShopName    string
	Description string
	Address     string
	Phone       string
	LogoURL     string
}

// CreateProvider claims the provider role for the signed-in user; the user id
// always comes from the session, never from the form.
func (a *ProviderActions) CreateProvider(ctx context.Context, sess *domain.Session, input CreateProviderInput) Result {
	userID, err := requireSession(sess)
	if err != nil {
		return Fail(err)
	}

	shopName := strings.TrimSpace(input.ShopName)
	if shopName == "" {
		return Fail(ValidationError("shop name is required"))
	}

	_, err = a.Providers.Create(ctx, client.CreateProviderInput{
		UserID:      userID,
		ShopName:    shopName,
		Description: strings.TrimSpace(input.Description),
		Address:     strings.TrimSpace(input.Address),
		Phone:       strings.TrimSpace(input.Phone),
		LogoURL:     strings.TrimSpace(input.LogoURL),
	})
	if err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagProviders)
	return Redirect("/provider")
}
