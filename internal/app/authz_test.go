package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/user"
	"github.com/planmate/planmate/mocks"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	t.Run("runs the operation for an allowed role", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockCurrentUserProvider(t)
		users.EXPECT().CurrentUser(mock.Anything).Return(adminUser(), nil)

		got, err := Authorize(context.Background(), users, adminOnly, func(context.Context) (string, error) {
			return "done", nil
		})
		if err != nil {
			t.Fatalf("Authorize() error = %v, want nil", err)
		}
		if got != "done" {
			t.Errorf("Authorize() = %q, want %q", got, "done")
		}
	})

	t.Run("rejects a disallowed role without running the operation", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockCurrentUserProvider(t)
		users.EXPECT().CurrentUser(mock.Anything).Return(memberUser(), nil)

		ran := false
		_, err := Authorize(context.Background(), users, adminOnly, func(context.Context) (string, error) {
			ran = true
			return "", nil
		})
		if !errors.Is(err, domain.ErrUnauthorizedAccess) {
			t.Errorf("Authorize() error = %v, want ErrUnauthorizedAccess", err)
		}
		if ran {
			t.Error("operation ran despite failed role check")
		}
	})

	t.Run("propagates a missing login without running the operation", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockCurrentUserProvider(t)
		users.EXPECT().CurrentUser(mock.Anything).Return(user.User{}, domain.ErrNoLoggedInUser)

		ran := false
		_, err := Authorize(context.Background(), users, adminOnly, func(context.Context) (int, error) {
			ran = true
			return 0, nil
		})
		if !errors.Is(err, domain.ErrNoLoggedInUser) {
			t.Errorf("Authorize() error = %v, want ErrNoLoggedInUser", err)
		}
		if ran {
			t.Error("operation ran despite missing login")
		}
	})

	t.Run("propagates the operation's own error", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockCurrentUserProvider(t)
		users.EXPECT().CurrentUser(mock.Anything).Return(adminUser(), nil)

		_, err := Authorize(context.Background(), users, adminOnly, func(context.Context) (string, error) {
			return "", domain.ErrUnavailable
		})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Authorize() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestAuthorizeVoid(t *testing.T) {
	t.Parallel()

	t.Run("runs the operation for an allowed role", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockCurrentUserProvider(t)
		users.EXPECT().CurrentUser(mock.Anything).Return(adminUser(), nil)

		ran := false
		err := AuthorizeVoid(context.Background(), users, adminOnly, func(context.Context) error {
			ran = true
			return nil
		})
		if err != nil {
			t.Fatalf("AuthorizeVoid() error = %v, want nil", err)
		}
		if !ran {
			t.Error("operation did not run for an allowed role")
		}
	})

	t.Run("rejects a disallowed role", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockCurrentUserProvider(t)
		users.EXPECT().CurrentUser(mock.Anything).Return(memberUser(), nil)

		err := AuthorizeVoid(context.Background(), users, adminOnly, func(context.Context) error {
			t.Error("operation ran despite failed role check")
			return nil
		})
		if !errors.Is(err, domain.ErrUnauthorizedAccess) {
			t.Errorf("AuthorizeVoid() error = %v, want ErrUnauthorizedAccess", err)
		}
	})
}
