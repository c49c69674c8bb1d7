package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/user"
	"github.com/planmate/planmate/mocks"
)

type authServiceMocks struct {
	users    *mocks.MockUserRepository
	sessions *mocks.MockSessionStore
	provider *mocks.MockCurrentUserProvider
}

func newAuthService(t *testing.T) (*AuthService, authServiceMocks) {
	m := authServiceMocks{
		users:    mocks.NewMockUserRepository(t),
		sessions: mocks.NewMockSessionStore(t),
		provider: mocks.NewMockCurrentUserProvider(t),
	}
	svc := NewAuthService(m.users, m.sessions, m.provider, discardLogger())
	return svc, m
}

// --- Register ---

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates a USER account with a bcrypt hash", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.users.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, u user.User) (user.User, error) {
				return u, nil
			})

		got, err := svc.Register(context.Background(), "mate", "hunter22")
		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if got.Role != user.RoleUser {
			t.Errorf("Register().Role = %s, want %s", got.Role, user.RoleUser)
		}
		if got.Username != "mate" {
			t.Errorf("Register().Username = %q, want %q", got.Username, "mate")
		}
		if got.PasswordHash == "hunter22" {
			t.Error("Register() stored the plaintext password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("hunter22")); err != nil {
			t.Errorf("Register() stored hash does not verify: %v", err)
		}
		if got.ID == uuid.Nil {
			t.Error("Register().ID is nil, want a generated UUID")
		}
	})

	t.Run("rejects a username containing whitespace", func(t *testing.T) {
		t.Parallel()
		svc, _ := newAuthService(t)

		_, err := svc.Register(context.Background(), "ma te", "hunter22")
		if !errors.Is(err, domain.ErrInvalidUsername) {
			t.Errorf("Register() error = %v, want ErrInvalidUsername", err)
		}
	})

	t.Run("rejects blank credentials", func(t *testing.T) {
		t.Parallel()
		svc, _ := newAuthService(t)

		_, err := svc.Register(context.Background(), "mate", "   ")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Register() error = %v, want ErrValidation", err)
		}
	})

	t.Run("propagates a taken username", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.users.EXPECT().Create(mock.Anything, mock.Anything).
			Return(user.User{}, domain.ErrUsernameTaken)

		_, err := svc.Register(context.Background(), "mate", "hunter22")
		if !errors.Is(err, domain.ErrUsernameTaken) {
			t.Errorf("Register() error = %v, want ErrUsernameTaken", err)
		}
	})
}

// --- Login ---

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generating fixture hash: %v", err)
	}
	stored := user.User{
		ID:           uuid.MustParse("50000000-0000-4000-8000-000000000001"),
		Username:     "mate",
		Role:         user.RoleUser,
		PasswordHash: string(hash),
	}

	t.Run("opens a session for valid credentials", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.users.EXPECT().GetByUsername(mock.Anything, "mate").Return(stored, nil)
		m.sessions.EXPECT().Open(stored).Return("tok-123")

		got, token, err := svc.Login(context.Background(), "mate", "hunter22")
		if err != nil {
			t.Fatalf("Login() error = %v, want nil", err)
		}
		if token != "tok-123" {
			t.Errorf("Login() token = %q, want %q", token, "tok-123")
		}
		if got.ID != stored.ID {
			t.Errorf("Login().ID = %s, want %s", got.ID, stored.ID)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.users.EXPECT().GetByUsername(mock.Anything, "mate").Return(stored, nil)

		_, _, err := svc.Login(context.Background(), "mate", "wrong")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("maps an unknown username to invalid credentials", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.users.EXPECT().GetByUsername(mock.Anything, "ghost").
			Return(user.User{}, domain.ErrUserNotFound)

		_, _, err := svc.Login(context.Background(), "ghost", "hunter22")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("propagates infrastructure failure unchanged", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.users.EXPECT().GetByUsername(mock.Anything, "mate").
			Return(user.User{}, domain.ErrUnavailable)

		_, _, err := svc.Login(context.Background(), "mate", "hunter22")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Login() error = %v, want ErrUnavailable", err)
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			t.Error("Login() masked an infrastructure failure as invalid credentials")
		}
	})
}

// --- Logout / CurrentUser ---

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	m.sessions.EXPECT().Close("tok-123").Return()

	svc.Logout(context.Background(), "tok-123")
}

func TestAuthService_CurrentUser(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	m.provider.EXPECT().CurrentUser(mock.Anything).Return(user.User{}, domain.ErrNoLoggedInUser)

	_, err := svc.CurrentUser(context.Background())
	if !errors.Is(err, domain.ErrNoLoggedInUser) {
		t.Errorf("CurrentUser() error = %v, want ErrNoLoggedInUser", err)
	}
}
