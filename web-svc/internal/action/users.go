package action

import (
	"context"

	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"
)

const TagUsers = "users"

// UserActions are the admin-only user mutations. The gates here only hide the
// controls; a forged request is rejected by the backend, not by this layer.
type UserActions struct {
	Users client.UsersServiceInterface
	Tags  CacheInvalidator
}

func NewUserActions(users client.UsersServiceInterface, tags CacheInvalidator) *UserActions {
	return &UserActions{Users: users, Tags: tags}
}

func (a *UserActions) UpdateUserRole(ctx context.Context, sess *domain.Session, userID string, role domain.Role) Result {
	if _, err := requireRole(sess, domain.RoleAdmin); err != nil {
		return Fail(err)
	}
	if userID == "" {
		return Fail(ValidationError("user id is required"))
	}
	if !role.Valid() {
		return Fail(ValidationError("invalid role"))
	}

	user, err := a.Users.Update(ctx, userID, client.UpdateUserInput{Role: role})
	if err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagUsers)
	return OK(user)
}

func (a *UserActions) UpdateUserStatus(ctx context.Context, sess *domain.Session, userID string, status domain.UserStatus) Result {
	if _, err := requireRole(sess, domain.RoleAdmin); err != nil {
		return Fail(err)
	}
	if userID == "" {
		return Fail(ValidationError("user id is required"))
	}
	if !status.Valid() {
		return Fail(ValidationError("invalid status"))
	}

	user, err := a.Users.Update(ctx, userID, client.UpdateUserInput{Status: status})
	if err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagUsers)
	return OK(user)
}

func (a *UserActions) DeleteUser(ctx context.Context, sess *domain.Session, userID string) Result {
	if _, err := requireRole(sess, domain.RoleAdmin); err != nil {
		return Fail(err)
	}
	if userID == "" {
		return Fail(ValidationError("user id is required"))
	}

	if err := a.Users.Delete(ctx, userID); err != nil {
		return Fail(err)
	}

	a.Tags.Invalidate(ctx, TagUsers)
	return OK(nil)
}
