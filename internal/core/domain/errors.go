package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the core unwraps to exactly one of these,
// which is what the transport layer maps to a status code.
var (
	ErrValidation      = errors.New("invalid input")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrConfiguration   = errors.New("server configuration error")
)

// Error is a specific failure that belongs to one of the kinds above.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	ErrExpiredToken       = newError(ErrUnauthenticated, "token has expired")
	ErrMalformedToken     = newError(ErrUnauthenticated, "invalid token")
	ErrInvalidCredentials = newError(ErrUnauthenticated, "invalid email or password")

	ErrAccountBlocked  = newError(ErrForbidden, "account is blocked")
	ErrAccountDisabled = newError(ErrForbidden, "account is disabled")
	ErrAdminOnly       = newError(ErrForbidden, "you do not have permission to access this resource")
	ErrRoleEscalation  = newError(ErrForbidden, "only an admin can create admin accounts")

	ErrUserNotFound        = newError(ErrNotFound, "user not found")
	ErrBookingNotFound     = newError(ErrNotFound, "booking not found")
	ErrRoomNotFound        = newError(ErrNotFound, "room not found")
	ErrCategoryNotFound    = newError(ErrNotFound, "category not found")
	ErrGalleryItemNotFound = newError(ErrNotFound, "gallery item not found")
	ErrNoRoomsInCategory   = newError(ErrNotFound, "no rooms found for this category")

	ErrUserExists        = newError(ErrConflict, "user already exists")
	ErrBookingIDTaken    = newError(ErrConflict, "booking id already assigned")
	ErrRoomExists        = newError(ErrConflict, "a room with this id already exists")
	ErrCategoryExists    = newError(ErrConflict, "a category with this name already exists")
	ErrGalleryItemExists = newError(ErrConflict, "a gallery item with this name already exists")

	ErrMissingSecret = newError(ErrConfiguration, "token signing secret is not configured")
)

// Invalid builds a validation error with a caller-facing message.
func Invalid(format string, args ...any) error {
	return newError(ErrValidation, fmt.Sprintf(format, args...))
}
