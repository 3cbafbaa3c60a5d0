package domain

import "errors"

// Sentinel errors for circulation preconditions. Handlers and callers check
// these with errors.Is; they are never retried automatically.
var (
	// ErrBookNotFound means the referenced book does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrUserNotFound means the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrBookNotAvailable means a checkout was attempted on a book whose
	// status is not AVAILABLE (already checked out, or on hold).
	ErrBookNotAvailable = errors.New("book is not available for checkout")

	// ErrNoActiveCheckout means a return was attempted for a book with no
	// open checkout.
	ErrNoActiveCheckout = errors.New("no active checkout found for this book")

	// ErrStoreUnavailable wraps failures of the underlying store: connection
	// errors, transaction conflicts, timeouts. The caller decides whether to
	// retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)
