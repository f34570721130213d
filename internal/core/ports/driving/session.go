package driving

import "github.com/custodia-labs/sentinel-cli/internal/core/domain"

// SessionService manages the single signed-in identity.
type SessionService interface {
	// Login signs in with an email. Nothing is verified.
	Login(identity string) (*domain.Session, error)

	// Register creates an account and signs in with it.
	Register(name, identity string) (*domain.Session, error)

	// Logout clears the session and its persisted record.
	Logout() error

	// Restore loads the persisted session, if any.
	// Missing or malformed data yields nil.
	Restore() *domain.Session

	// Current returns the signed-in session or nil.
	Current() *domain.Session
}
