package app

import (
	"context"
	"slices"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/user"
	"github.com/planmate/planmate/internal/ports"
)

// adminOnly is the role set required for gated mutations. Only Project
// mutations are gated; State and Task mutations are deliberately ungated.
// The asymmetry mirrors the observed access-control policy and is covered
// by tests rather than silently extended.
var adminOnly = []user.Role{user.RoleAdmin}

// Authorize wraps a mutating operation with a role check against the current
// user. It fails with domain.ErrNoLoggedInUser when no user is logged in and
// with domain.ErrUnauthorizedAccess when the user's role is not in roles.
// The operation runs only after the check passes, so an authorization
// failure leaves zero side effects.
func Authorize[T any](
	ctx context.Context,
	users ports.CurrentUserProvider,
	roles []user.Role,
	op func(ctx context.Context) (T, error),
) (T, error) {
	var zero T

	current, err := users.CurrentUser(ctx)
	if err != nil {
		return zero, err
	}
	if !slices.Contains(roles, current.Role) {
		return zero, domain.ErrUnauthorizedAccess
	}
	return op(ctx)
}

// AuthorizeVoid is Authorize for operations without a result value.
func AuthorizeVoid(
	ctx context.Context,
	users ports.CurrentUserProvider,
	roles []user.Role,
	op func(ctx context.Context) error,
) error {
	_, err := Authorize(ctx, users, roles, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}
