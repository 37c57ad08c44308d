package domain

import (
	"errors"
	"fmt"
)

// Categories. Every specific error below wraps exactly one of them, so callers
// can match either the category or the precise reason with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrTourNotFound        = fmt.Errorf("%w: tour", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("%w: user", ErrNotFound)
	ErrBookingNotFound     = fmt.Errorf("%w: booking", ErrNotFound)
	ErrApplicationNotFound = fmt.Errorf("%w: application", ErrNotFound)
)

var (
	ErrTourNotPublished     = fmt.Errorf("%w: tour is not published", ErrConflict)
	ErrDeparturePassed      = fmt.Errorf("%w: tour departure date has passed", ErrConflict)
	ErrInsufficientCapacity = fmt.Errorf("%w: insufficient capacity", ErrConflict)
)

var (
	ErrIllegalTransition      = fmt.Errorf("%w: illegal booking status transition", ErrConflict)
	ErrBookingStatusChanged   = fmt.Errorf("%w: booking status changed concurrently", ErrConflict)
	ErrCancelWindowClosed     = fmt.Errorf("%w: cancellation is not available on or after the departure date", ErrConflict)
	ErrDuplicateBookingNumber = fmt.Errorf("%w: booking number already exists", ErrConflict)
)

var (
	ErrInvalidAmount               = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrInsufficientBalance         = fmt.Errorf("%w: insufficient mileage balance", ErrConflict)
	ErrDuplicateReference          = fmt.Errorf("%w: reference already has a ledger entry", ErrConflict)
	ErrApplicationAlreadyProcessed = fmt.Errorf("%w: application already processed", ErrConflict)
	ErrApplicationStatusTransition = fmt.Errorf("%w: illegal application status transition", ErrConflict)
)

var (
	ErrEmailTaken = fmt.Errorf("%w: email is already registered", ErrConflict)
)
