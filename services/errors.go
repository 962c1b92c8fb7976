package services

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds returned by the relationship service. Handlers map these to
// HTTP statuses with StatusFor; everything unrecognized is a 500.
var (
	ErrNotFound             = errors.New("not found")
	ErrRelationshipMismatch = errors.New("relationship mismatch")
	ErrConflict             = errors.New("duplicate unique key")
	ErrExternalService      = errors.New("external service failure")
)

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func mismatchf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrRelationshipMismatch)...)
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRelationshipMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrExternalService):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
