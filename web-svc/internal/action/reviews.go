package action

import (
	"context"
	"strings"

	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"
)

const TagReviews = "reviews"

type ReviewActions struct {
	Reviews client.ReviewsServiceInterface
	Tags    CacheInvalidator
}

func NewReviewActions(reviews client.ReviewsServiceInterface, tags CacheInvalidator) *ReviewActions {
	return &ReviewActions{Reviews: reviews, Tags: tags}
}

type CreateReviewInput struct {
	MealID  string
	Rating  int
	Comment string
}

func (a *ReviewActions) CreateReview(ctx context.Context, sess *domain.Session, input CreateReviewInput) Result {
	userID, err := requireSession(sess)
	if err != nil {
		return Fail(err)
	}

	mealID := strings.TrimSpace(input.MealID)
	if mealID == "" {
		return Fail(ValidationError("meal is required"))
	}
	if input.Rating < 1 || input.Rating > 5 {
		return Fail(ValidationError("rating must be 1 to 5"))
	}

	_, err = a.Reviews.Create(ctx, client.CreateReviewInput{
		CustomerID: userID,
		MealID:     mealID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
	})
	if err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagReviews, TagMeal(mealID))
	return Redirect("/meals/" + mealID)
}
