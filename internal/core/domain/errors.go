package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. The relaxed parse and
// serialise paths never return errors at all; these surface only from
// services, stores and the strict parser.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required service or store is missing.
	ErrNotConfigured = errors.New("not configured")

	// ErrArchiveDisabled indicates the conversion archive is switched
	// off in the configuration.
	ErrArchiveDisabled = errors.New("archive disabled")
)
