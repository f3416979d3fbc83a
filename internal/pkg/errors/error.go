package xerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services, repositories and handlers. Services
// wrap them with context via fmt.Errorf("%w"); handlers match them with
// errors.Is and pick the HTTP status.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("conflict: resource already exists")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrInvalidInput   = errors.New("invalid input")

	ErrUnauthorized   = errors.New("unauthorized access")
	ErrForbidden      = errors.New("forbidden")
	ErrSessionExpired = errors.New("session expired or invalid")
	ErrRateLimited    = errors.New("too many requests")

	ErrInternal = errors.New("internal server error")

	// ErrUnavailable marks operations that depend on a collaborator
	// (database, chat completion provider) that failed at startup.
	ErrUnavailable = errors.New("service temporarily unavailable")
)

// Wrap adds context to an error while keeping the sentinel matchable with errors.Is.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
