package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/custodia-labs/sentinel-cli/internal/core/domain"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sentinel-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionKey is the storage key holding the signed-in identity.
const SessionKey = "sentinel_auth"

// SessionService manages the single signed-in identity.
// The persisted record is written first; the in-memory session only changes
// once the write succeeded.
type SessionService struct {
	store driven.KeyValueStore

	mu      sync.RWMutex
	current *domain.Session
}

// NewSessionService creates a session service over a key-value store.
func NewSessionService(store driven.KeyValueStore) *SessionService {
	return &SessionService{store: store}
}

// Login signs in with an email.
func (s *SessionService) Login(identity string) (*domain.Session, error) {
	return s.signIn(domain.NewLoginSession(identity))
}

// Register creates an account and signs in with it.
func (s *SessionService) Register(name, identity string) (*domain.Session, error) {
	return s.signIn(domain.NewRegisteredSession(name, identity))
}

// Logout clears the session and its persisted record.
func (s *SessionService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(SessionKey); err != nil {
		return fmt.Errorf("removing session: %w", err)
	}
	s.current = nil
	return nil
}

// Restore loads the persisted session, if any.
func (s *SessionService) Restore() *domain.Session {
	raw, ok, err := s.store.Get(SessionKey)
	if err != nil {
		logger.Warn("session: reading record: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil || !session.Valid() {
		logger.Warn("session: ignoring malformed record")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &session
	out := session
	return &out
}

// Current returns the signed-in session or nil.
func (s *SessionService) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}

func (s *SessionService) signIn(session domain.Session) (*domain.Session, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(SessionKey, string(data)); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	s.current = &session
	logger.Debug("session: signed in as %s", session.Email)

	out := session
	return &out, nil
}
