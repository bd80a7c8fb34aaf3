package errs

import "errors"

// Closed error taxonomy for the booking engine. Handlers map these to
// stable HTTP status codes; nothing below ever carries a "CODE:" prefix
// inside its message.
var (
	// Validation
	ErrInvalidRange      = errors.New("start must be before end")
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:mm")
	ErrInvalidTurno      = errors.New("turno opening must be before closing")
	ErrOverlappingTurnos = errors.New("turnos for the same weekday overlap")
	ErrTurnoOverlap      = errors.New("turno overlaps an existing turno")
	ErrUnknownWriteMode  = errors.New("unknown schedule write mode")

	// Lookups
	ErrVenueNotFound       = errors.New("venue not found")
	ErrTableNotFound       = errors.New("table not found")
	ErrTurnoNotFound       = errors.New("turno not found")
	ErrBlockNotFound       = errors.New("block not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPaymentMissing      = errors.New("reservation has no payment")

	// Booking conflicts
	ErrVenueInactive       = errors.New("venue is not active")
	ErrReservationConflict = errors.New("an active reservation overlaps the requested window")
	ErrTableBlocked        = errors.New("table is blocked during the requested window")

	// Authorization
	ErrNotOwner        = errors.New("reservation does not belong to the requesting customer")
	ErrNotOwnerOfVenue = errors.New("caller does not administer the venue")

	// Lifecycle
	ErrNotEditable    = errors.New("reservation can no longer be rescheduled")
	ErrNotCancellable = errors.New("reservation can no longer be cancelled")
	ErrAlreadyInState = errors.New("reservation is already in the requested state")
)
