package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/domain/user"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements ports.AuthService. Passwords are stored as bcrypt
// hashes; login failures collapse both the unknown-username and the
// bad-password case into domain.ErrInvalidCredentials so callers cannot
// probe which usernames exist.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	provider ports.CurrentUserProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewAuthService creates an AuthService.
func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	provider ports.CurrentUserProvider,
	logger *slog.Logger,
) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// Register validates the credentials, hashes the password, and persists a new
// USER-role account. A username collision surfaces as the repository's
// domain.ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password string) (user.User, error) {
	s.logger.InfoContext(ctx, "registering user", slog.String("username", username))

	if err := domain.ValidateCredentials(username, password); err != nil {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hashing password: %w", err)
	}

	created, err := s.users.Create(ctx, user.User{
		ID:           uuid.New(),
		Username:     username,
		Role:         user.RoleUser,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register user",
			slog.String("operation", "Register"),
			slog.String("username", username),
			slog.Any("error", err),
		)
		return user.User{}, err
	}

	return created, nil
}

// Login verifies the credentials against the stored bcrypt hash and opens a
// session for the user.
func (s *AuthService) Login(ctx context.Context, username, password string) (user.User, string, error) {
	s.logger.InfoContext(ctx, "logging in", slog.String("username", username))

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return user.User{}, "", domain.ErrInvalidCredentials
		}
		return user.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return user.User{}, "", domain.ErrInvalidCredentials
	}

	token := s.sessions.Open(u)
	return u, token, nil
}

// Logout closes the session bound to the token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) {
	s.logger.InfoContext(ctx, "logging out")
	s.sessions.Close(token)
}

// CurrentUser returns the acting user for this request.
func (s *AuthService) CurrentUser(ctx context.Context) (user.User, error) {
	return s.provider.CurrentUser(ctx)
}
