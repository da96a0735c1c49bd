package repository

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraint indicates a write would violate a store-enforced
	// invariant (code uniqueness within a plan, foreign keys). Retryable
	// from the caller's point of view: the batch itself may be fine.
	ErrConstraint = errors.New("constraint violation")
)

// isConstraintErr reports whether err is a SQLite constraint failure.
// The modernc driver surfaces these as plain error strings.
func isConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "CHECK constraint failed")
}
