package action

import (
	"context"
	"strings"

	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"
)

const TagCategories = "categories"

type CategoryActions struct {
	Categories client.CategoriesServiceInterface
	Tags       CacheInvalidator
}

func NewCategoryActions(categories client.CategoriesServiceInterface, tags CacheInvalidator) *CategoryActions {
	return &CategoryActions{Categories: categories, Tags: tags}
}

func (a *CategoryActions) CreateCategory(ctx context.Context, sess *domain.Session, input client.CreateCategoryInput) Result {
	if _, err := requireRole(sess, domain.RoleAdmin); err != nil {
		return Fail(err)
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Slug = strings.TrimSpace(input.Slug)
	if input.Name == "" || input.Slug == "" {
		return Fail(ValidationError("name and slug are required"))
	}

	category, err := a.Categories.Create(ctx, input)
	if err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagCategories)
	return OK(category)
}

func (a *CategoryActions) DeleteCategory(ctx context.Context, sess *domain.Session, categoryID string) Result {
	if _, err := requireRole(sess, domain.RoleAdmin); err != nil {
		return Fail(err)
	}
	if categoryID == "" {
		return Fail(ValidationError("category id is required"))
	}

	if err := a.Categories.Delete(ctx, categoryID); err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagCategories)
	return OK(nil)
}
