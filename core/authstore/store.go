package authstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/dataview/core/kv"
	"github.com/dmitrymomot/dataview/core/logger"
)

// Durable storage keys. Both are written together and removed together; a
// clean operation never leaves one without the other.
const (
	TokenKey     = "token"
	PrincipalKey = "user"
)

// Principal is the authenticated user's attribute record, excluding
// credentials. The store does not interpret it beyond JSON validity.
type Principal map[string]any

// Authenticator performs the remote authentication call.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, secret string) (Principal, string, error)
}

// userMessenger is implemented by errors carrying a user-facing message.
type userMessenger interface {
	UserMessage() string
}

// Store holds the session state. Create with New; safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	auth    Authenticator
	storage kv.Store
	log     *slog.Logger

	principal Principal
	token     string
	lastError string
	hydrated  bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for persistence warnings and debug logging.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a session store over the given authenticator and durable
// storage.
func New(auth Authenticator, storage kv.Store, opts ...Option) (*Store, error) {
	if auth == nil {
		return nil, ErrNilAuthenticator
	}
	if storage == nil {
		return nil, ErrNilStorage
	}

	s := &Store{
		auth:    auth,
		storage: storage,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Login authenticates the credentials, persists the resulting session, and
// commits it to memory. Empty credentials are rejected locally without a
// network round trip. On failure the prior session, if any, stays intact
// and the error is both recorded on the store and returned to the caller.
func (s *Store) Login(ctx context.Context, identifier, secret string) error {
	identifier = strings.TrimSpace(identifier)
	secret = strings.TrimSpace(secret)
	if identifier == "" || secret == "" {
		s.setError("Username and password are required.")
		return ErrEmptyCredentials
	}

	principal, token, err := s.auth.Authenticate(ctx, identifier, secret)
	if err != nil {
		s.setError(loginMessage(err))
		return err
	}
	if token == "" || principal == nil {
		s.setError("Login failed.")
		return errors.New("authenticator returned an incomplete session")
	}

	// Persist before committing so a committed session is always
	// recoverable after a restart. Persistence failure is non-fatal: the
	// in-process session still works, it just will not survive a restart.
	s.persist(ctx, principal, token)

	s.mu.Lock()
	s.principal = principal
	s.token = token
	s.lastError = ""
	s.hydrated = true
	s.mu.Unlock()
	return nil
}

// Logout clears the in-memory session and removes both durable entries.
// Idempotent: logging out without a session is not an error.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.principal = nil
	s.token = ""
	s.lastError = ""
	s.hydrated = true
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, TokenKey, PrincipalKey); err != nil {
		s.log.Warn("failed to clear persisted session",
			logger.Component("authstore"),
			logger.Error(err),
		)
		return err
	}
	return nil
}

// Hydrate restores the session from durable storage. Both entries must be
// present and the principal must parse; anything else is treated as
// corrupted state and both entries are deleted. Idempotent.
func (s *Store) Hydrate(ctx context.Context) error {
	token, tokenErr := s.storage.Get(ctx, TokenKey)
	rawPrincipal, principalErr := s.storage.Get(ctx, PrincipalKey)

	defer func() {
		s.mu.Lock()
		s.hydrated = true
		s.mu.Unlock()
	}()

	missingToken := errors.Is(tokenErr, kv.ErrNotFound) || token == ""
	missingPrincipal := errors.Is(principalErr, kv.ErrNotFound) || rawPrincipal == ""

	switch {
	case missingToken && missingPrincipal:
		return nil
	case tokenErr != nil && !errors.Is(tokenErr, kv.ErrNotFound):
		return tokenErr
	case principalErr != nil && !errors.Is(principalErr, kv.ErrNotFound):
		return principalErr
	case missingToken || missingPrincipal:
		// Half a session is no session. Never operate on it.
		return s.dropCorrupted(ctx)
	}

	var principal Principal
	if err := json.Unmarshal([]byte(rawPrincipal), &principal); err != nil || principal == nil {
		return s.dropCorrupted(ctx)
	}

	s.mu.Lock()
	s.principal = principal
	s.token = token
	s.mu.Unlock()
	return nil
}

// IsAuthenticated reports whether a session exists. In-memory state is
// authoritative once hydrated; before that, durable storage is consulted
// directly to avoid a flash-redirect during the hydration window.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	s.mu.RLock()
	hydrated := s.hydrated
	token := s.token
	s.mu.RUnlock()

	if hydrated {
		return token != ""
	}

	stored, err := s.storage.Get(ctx, TokenKey)
	return err == nil && stored != ""
}

// Principal returns the current principal, or nil when signed out.
func (s *Store) Principal() Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// Token returns the current bearer token, or empty when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LastError returns the user-facing message of the most recent failed
// login, or empty.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// ClearError discards the last login failure message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = msg
}

// persist writes both durable entries. Failures are logged, not returned.
func (s *Store) persist(ctx context.Context, principal Principal, token string) {
	raw, err := json.Marshal(principal)
	if err == nil {
		err = s.storage.Set(ctx, TokenKey, token)
	}
	if err == nil {
		err = s.storage.Set(ctx, PrincipalKey, string(raw))
	}
	if err != nil {
		s.log.Warn("failed to persist session",
			logger.Component("authstore"),
			logger.Error(err),
		)
	}
}

// dropCorrupted removes both durable entries and leaves the store signed
// out. There is no user-facing recovery action to offer for corrupted
// persisted state, so no error surfaces.
func (s *Store) dropCorrupted(ctx context.Context) error {
	s.log.Debug("dropping corrupted persisted session", logger.Component("authstore"))
	return s.storage.Delete(ctx, TokenKey, PrincipalKey)
}

func loginMessage(err error) string {
	var um userMessenger
	if errors.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage()
	}
	return "Login failed."
}
