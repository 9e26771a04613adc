package common

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrAlreadyRelated     = errors.New("already friends or a friend request is pending")
	ErrAlreadyExists      = errors.New("login already exists")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrDuplicateRelation  = errors.New("more than one relation for the same pair")
	ErrFeedCorrupt        = errors.New("notification references a missing record")
)

// StatusFor maps an error returned by a service to the HTTP status a handler
// should answer with.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAlreadyRelated), errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
