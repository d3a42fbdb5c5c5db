package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mustafacapras/todoapp-frontend/internal/model"
)

// ErrInvalidToken is returned by Login when the token cannot be decoded.
var ErrInvalidToken = errors.New("invalid token")

// Store holds the authenticated-user state for the running process. The user
// fields live only in memory; the token alone is durable, via the TokenStore.
//
// Reads happen on every request and the API client may invalidate the session
// from any response, so all access goes through the mutex.
type Store struct {
	mu            sync.RWMutex
	user          *model.User
	authenticated bool

	tokens TokenStore
	logger *slog.Logger
}

// NewStore creates a Store over the given TokenStore. If the store already
// holds a token, the user fields are re-derived from its claims so a restart
// keeps both authorization and display state. An undecodable persisted token
// is discarded.
func NewStore(tokens TokenStore, logger *slog.Logger) *Store {
	s := &Store{tokens: tokens, logger: logger}

	token, ok := tokens.Load()
	if !ok {
		return s
	}
	user, err := decodeUser(token)
	if err != nil {
		logger.Warn("discarding undecodable persisted token", "error", err)
		if err := tokens.Clear(); err != nil {
			logger.Error("failed to clear token", "error", err)
		}
		return s
	}
	s.user = &user
	s.authenticated = true
	return s
}

// Login decodes the token claims into the user fields, marks the session
// authenticated and persists the token. On a decode failure the session is
// left unauthenticated and the error is returned.
func (s *Store) Login(token string) error {
	user, err := decodeUser(token)
	if err != nil {
		return err
	}

	if err := s.tokens.Save(token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

// Logout clears the user state and removes the persisted token.
func (s *Store) Logout() {
	s.Invalidate()
}

// Invalidate is the idempotent session clear used both by Logout and by the
// API client's unauthorized hook. Clearing an already-clear session is safe.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.logger.Error("failed to clear persisted token", "error", err)
	}
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// User returns the current user and whether a session is active.
func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Token returns the persisted bearer token, if any. Implements the API
// client's TokenSource.
func (s *Store) Token() (string, bool) {
	return s.tokens.Load()
}

// decodeUser extracts the display claims from the token without verifying
// the signature. Authenticity is enforced server-side on every call that
// carries the token; this decode is not a security boundary.
func decodeUser(token string) (model.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return model.User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return model.User{
		FirstName: stringClaim(claims, "firstName"),
		LastName:  stringClaim(claims, "lastName"),
		Email:     stringClaim(claims, "email"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
