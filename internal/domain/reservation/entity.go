package reservation

import (
	"time"

	"billiar/internal/domain/schedule"
	"billiar/internal/pkg/errs"

	"github.com/google/uuid"
)

// Reservation holds one table for one customer over one Window.
//
// State machine:
//
//	PENDING   -> CONFIRMED | REJECTED | CANCELLED
//	CONFIRMED -> FINISHED  | CANCELLED
//	REJECTED, CANCELLED, FINISHED are terminal.
type Reservation struct {
	id             uuid.UUID
	tableID        uuid.UUID
	customerID     uuid.UUID
	window         Window
	estimatedCents Money
	penaltyCents   Money
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReservation(tableID, customerID uuid.UUID, window Window, estimated Money) *Reservation {
	return &Reservation{
		id:             uuid.New(),
		tableID:        tableID,
		customerID:     customerID,
		window:         window,
		estimatedCents: estimated,
		status:         StatusPending,
	}
}

func ReconstructReservation(
	id, tableID, customerID uuid.UUID,
	window Window,
	estimated, penalty Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		tableID:        tableID,
		customerID:     customerID,
		window:         window,
		estimatedCents: estimated,
		penaltyCents:   penalty,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) TableID() uuid.UUID    { return r.tableID }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) Window() Window        { return r.window }
func (r *Reservation) Estimated() Money      { return r.estimatedCents }
func (r *Reservation) Penalty() Money        { return r.penaltyCents }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Reservation) IsLive() bool { return r.status.IsLive() }

func (r *Reservation) BelongsTo(customerID uuid.UUID) bool {
	return r.customerID == customerID
}

// MoveTo reschedules a live reservation, preserving the original
// duration. The caller re-runs conflict and block checks for the new
// window before persisting.
func (r *Reservation) MoveTo(date time.Time, start schedule.TimeOfDay) error {
	if !r.status.IsLive() {
		return errs.Mark(
			errs.Wrapf(errs.ErrNotEditable, "reservation %s is %s", r.id, r.status),
			errs.ErrNotEditable,
		)
	}
	r.window = r.window.ShiftTo(date, start)
	return nil
}

func (r *Reservation) Confirm() error {
	if r.status != StatusPending && r.status != StatusConfirmed {
		return errs.Mark(
			errs.Wrapf(errs.ErrNotEditable, "reservation %s is %s", r.id, r.status),
			errs.ErrNotEditable,
		)
	}
	r.status = StatusConfirmed
	return nil
}

func (r *Reservation) Reject() error {
	if r.status.IsTerminal() {
		return errs.Mark(
			errs.Wrapf(errs.ErrNotEditable, "reservation %s is %s", r.id, r.status),
			errs.ErrNotEditable,
		)
	}
	r.status = StatusRejected
	return nil
}

// Cancel freezes the supplied penalty amount; it is never recomputed
// afterwards.
func (r *Reservation) Cancel(penalty Money) error {
	if !r.status.IsLive() {
		return errs.Mark(
			errs.Wrapf(errs.ErrNotCancellable, "reservation %s is %s", r.id, r.status),
			errs.ErrNotCancellable,
		)
	}
	r.status = StatusCancelled
	r.penaltyCents = penalty
	return nil
}

func (r *Reservation) Finish() error {
	if !r.status.IsLive() {
		return errs.Mark(
			errs.Wrapf(errs.ErrNotEditable, "reservation %s is %s", r.id, r.status),
			errs.ErrNotEditable,
		)
	}
	r.status = StatusFinished
	return nil
}
