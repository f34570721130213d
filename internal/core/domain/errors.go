package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownPlan indicates a subscription plan key is not in the catalog.
	ErrUnknownPlan = errors.New("unknown plan")

	// ErrNotLoggedIn indicates an operation needs a signed-in session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrCheckoutCancelled indicates a checkout was abandoned before payment completed.
	ErrCheckoutCancelled = errors.New("checkout cancelled")
)
