package action

import (
	"context"
	"errors"

	"mealgate/web-svc/internal/domain"
)

var ErrUnauthorized = errors.New("unauthorized")

// ValidationError marks an input problem caught before any network call.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

type Kind int

const (
	KindOK Kind = iota
	KindRedirect
	KindError
)

// Result makes action control flow explicit: a successful payload, a
// navigation target, or a failure. Exactly one of Data/To/Err is meaningful
// for its Kind.
type Result struct {
	Kind Kind
	Data any
	To   string
	Err  error
}

func OK(data any) Result {
	return Result{Kind: KindOK, Data: data}
}

func Redirect(to string) Result {
	return Result{Kind: KindRedirect, To: to}
}

func Fail(err error) Result {
	return Result{Kind: KindError, Err: err}
}

// CacheInvalidator expires the revalidation tags touched by a mutation.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, tags ...string)
}

func requireSession(sess *domain.Session) (string, error) {
	userID := sess.UserID()
	if userID == "" {
		return "", ErrUnauthorized
	}
	return userID, nil
}

func requireRole(sess *domain.Session, roles ...domain.Role) (string, error) {
	userID, err := requireSession(sess)
	if err != nil {
		return "", err
	}
	for _, role := range roles {
		if sess.Role() == role {
			return userID, nil
		}
	}
	return "", ErrUnauthorized
}
