package auth

import (
	"context"
	"errors"
)

// UserContext carries the authenticated caller through request handling.
type UserContext struct {
	UserID string
	Email  string
	Roles  []string
}

type contextKey string

const userContextKey contextKey = "auth.user"

// ErrNoUserInContext is returned when no authenticated user is attached
// to the context.
var ErrNoUserInContext = errors.New("no user in context")

// SetUserInContext attaches the user context to ctx.
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext extracts the user context from ctx.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, ErrNoUserInContext
	}
	return user, nil
}
