package user

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const UserKey contextKey = "user"

var ErrNoUser = errors.New("user not found")

// WithUser stores the authenticated user on the context for downstream
// handlers and services.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// CurrentUser returns the user previously stored with WithUser, or ErrNoUser
// for anonymous requests.
func CurrentUser(ctx context.Context) (User, error) {
	user, ok := ctx.Value(UserKey).(User)
	if !ok {
		log.Trace("no user in context")
		return User{}, ErrNoUser
	}
	return user, nil
}

// CurrentId returns the id of the user on the context, or ErrNoUser.
func CurrentId(ctx context.Context) (int, error) {
	user, err := CurrentUser(ctx)
	if err != nil {
		return 0, err
	}
	return user.Id, nil
}
