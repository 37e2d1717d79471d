package domain

import "errors"

// Error taxonomy shared by services and handlers. Repos return raw store
// errors; services classify them into one of these before they reach HTTP.
var (
	// ErrInvalidInput covers malformed or missing request fields. Surfaced
	// before any store access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTransactionFailed wraps any store error raised inside the order
	// creation transaction, after rollback.
	ErrTransactionFailed = errors.New("transaction failed")
)
