// Package session provides in-memory login sessions and the request-scoped
// current-user capability. Sessions are opened by login, resolved by the HTTP
// session middleware, and closed by logout; the acting user then travels on
// the request context rather than in process-wide state.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planmate/planmate/internal/domain/user"
	"github.com/planmate/planmate/internal/ports"
)

// Compile-time interface check.
var _ ports.SessionStore = (*Store)(nil)

type entry struct {
	user      user.User
	expiresAt time.Time
}

// Store is a thread-safe in-memory session store. Tokens are random UUIDs
// and expire after the configured TTL; expired entries are dropped lazily
// on resolve.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration

	// Injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewStore creates a session store whose tokens expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open creates a session for the user and returns its opaque token.
func (s *Store) Open(u user.User) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = entry{user: u, expiresAt: s.now().Add(s.ttl)}
	return token
}

// Resolve returns the user bound to the token. The second return is false
// for unknown or expired tokens; an expired entry is removed on the spot.
func (s *Store) Resolve(token string) (user.User, bool) {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return user.User{}, false
	}

	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return user.User{}, false
	}

	return e.user, true
}

// Close invalidates the token. Closing an unknown token is a no-op.
func (s *Store) Close(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
