package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation. Both wrap ErrInvalidArgument so handlers
// map them to a 400 with one check.
var (
	ErrMissingFrom = fmt.Errorf("%w: from is required", ErrInvalidArgument)
	ErrMissingTo   = fmt.Errorf("%w: to is required", ErrInvalidArgument)
)

// Sentinel errors for entity lookups. Absence is a normal outcome the
// caller branches on, not an internal failure.
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrEdgeNotFound = errors.New("edge not found")
)

// ErrDuplicateKey indicates the entity already exists (maps to HTTP 409 Conflict).
var ErrDuplicateKey = errors.New("duplicate key")

// ErrInvalidArgument indicates a request that must be rejected at the
// boundary: negative weight, non-positive limit, unbounded path enumeration
// past the safety threshold, and so on.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%w: %s exceeds maximum length of %d", ErrInvalidArgument, field, maxLen)
}
