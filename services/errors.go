package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the services for a rejected request
// wraps exactly one of these.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrDependencyConflict = errors.New("cannot delete: dependents exist")
)

var (
	ErrGuestNotFound       = fmt.Errorf("guest %w", ErrNotFound)
	ErrRoomNotFound        = fmt.Errorf("room %w", ErrNotFound)
	ErrRoomTypeNotFound    = fmt.Errorf("room type %w", ErrNotFound)
	ErrReservationNotFound = fmt.Errorf("reservation %w", ErrNotFound)

	ErrRoomTypeInUse = fmt.Errorf("%w: rooms are attached to this room type", ErrDependencyConflict)
	ErrRoomInUse     = fmt.Errorf("%w: reservations are attached to this room", ErrDependencyConflict)
	ErrGuestInUse    = fmt.Errorf("%w: reservations are attached to this guest", ErrDependencyConflict)
)

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Outcome tells a soft-dedup create apart from a real insert.
type Outcome int

const (
	Created Outcome = iota
	FoundExisting
)

func (o Outcome) String() string {
	if o == FoundExisting {
		return "found_existing"
	}
	return "created"
}
