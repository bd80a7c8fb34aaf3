package shared

import (
	"context"
	"time"

	"billiar/internal/domain/reservation"
	"billiar/internal/domain/schedule"
	"billiar/internal/domain/venue"

	"github.com/google/uuid"
)

// UnitOfWork is the transactional boundary: one public engine operation
// runs inside exactly one Within call. Conflict checks happen on the
// same Tx as the insert/update they protect.
type UnitOfWork interface {
	// Within runs fn in a read-committed transaction with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads exposes the repositories over the pool for single-query
	// read paths (implicit transactions).
	Reads() Reads
}

// Tx bundles the repositories bound to one open transaction.
type Tx interface {
	Venues() VenueRepository
	Tables() TableRepository
	Turnos() TurnoRepository
	Blocks() BlockRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
}

// Reads is the non-transactional view of the same repositories plus the
// joined listing queries.
type Reads interface {
	Venues() VenueRepository
	Tables() TableRepository
	Turnos() TurnoRepository
	Blocks() BlockRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Views() ReservationViews
}

type VenueRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error)
	// IsVenueAdmin is the single authorization predicate every
	// lifecycle operation consults: does userID administer the venue
	// owning tableID?
	IsVenueAdmin(ctx context.Context, userID, tableID uuid.UUID) (bool, error)
}

type TableRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*venue.Table, error)
	// LockForBooking takes a row lock on the table, serializing
	// concurrent conflict-check-then-insert sequences per table.
	LockForBooking(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status venue.TableStatus) error
}

type TurnoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.Turno, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID, activeOnly bool) ([]*schedule.Turno, error)
	ListByVenueAndWeekday(ctx context.Context, venueID uuid.UUID, weekday schedule.Weekday, activeOnly bool) ([]*schedule.Turno, error)
	Insert(ctx context.Context, t *schedule.Turno) error
	Update(ctx context.Context, t *schedule.Turno) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByVenue(ctx context.Context, venueID uuid.UUID) error
	DeleteByVenueAndWeekday(ctx context.Context, venueID uuid.UUID, weekday schedule.Weekday) error
}

type BlockRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*venue.Block, error)
	ListByTableAndDate(ctx context.Context, tableID uuid.UUID, date time.Time) ([]*venue.Block, error)
	Insert(ctx context.Context, b *venue.Block) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListLiveByTableAndDate(ctx context.Context, tableID uuid.UUID, date time.Time) ([]*reservation.Reservation, error)
	// HasLiveOverlap reports whether any PENDING/CONFIRMED reservation
	// for the table on the date overlaps [start,end), excluding
	// excludeID when non-nil (used by reschedule).
	HasLiveOverlap(ctx context.Context, tableID uuid.UUID, date time.Time, start, end schedule.TimeOfDay, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
}

type PaymentRepository interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*reservation.Payment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Payment, error)
	Insert(ctx context.Context, p *reservation.Payment) error
	Update(ctx context.Context, p *reservation.Payment) error
}

// ReservationViews serves the joined listing shapes the handlers
// return; it never mutates.
type ReservationViews interface {
	ReceiptByID(ctx context.Context, reservationID uuid.UUID) (*ReceiptView, error)
	CustomerReservations(ctx context.Context, customerID uuid.UUID) ([]*CustomerReservationView, error)
	OwnerRequests(ctx context.Context, ownerID uuid.UUID) ([]*OwnerRequestView, error)
	PendingRefunds(ctx context.Context, ownerID uuid.UUID) ([]*PendingRefundView, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*UserAccount, error)
}

// UserAccount is the thin credential snapshot the login collaborator
// needs; full user CRUD lives outside the engine.
type UserAccount struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}
