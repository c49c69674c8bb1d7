package session

import (
	"context"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/user"
	"github.com/planmate/planmate/internal/ports"
)

// contextKey is the unexported key type for storing the acting user in context.
type contextKey struct{}

// WithUser returns a new context carrying the acting user. The session
// middleware calls this after resolving the bearer token.
func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// UserFromContext extracts the acting user from the context.
// The second return is false when no user is attached.
func UserFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(contextKey{}).(user.User)
	return u, ok
}

// Compile-time interface check.
var _ ports.CurrentUserProvider = (*ContextProvider)(nil)

// ContextProvider resolves the acting user from the request context. It is
// the production implementation of ports.CurrentUserProvider; tests swap in
// a mock instead of faking context values.
type ContextProvider struct{}

// NewContextProvider creates a ContextProvider.
func NewContextProvider() *ContextProvider {
	return &ContextProvider{}
}

// CurrentUser returns the user attached to the context, or
// domain.ErrNoLoggedInUser when the request carries no session.
func (p *ContextProvider) CurrentUser(ctx context.Context) (user.User, error) {
	u, ok := UserFromContext(ctx)
	if !ok {
		return user.User{}, domain.ErrNoLoggedInUser
	}
	return u, nil
}
