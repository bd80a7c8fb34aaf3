package shared

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptView is the booking extract returned right after create and
// on reservation detail reads.
type ReceiptView struct {
	ReservationID   uuid.UUID
	VenueName       string
	VenueAddress    string
	TableNumber     int
	TableCategory   string
	Date            time.Time
	StartsAt        string
	EndsAt          string
	DurationHours   float64
	AmountCents     int64
	DiscountPercent float64
	Status          string
	PaymentApproval string
	ReceiptURL      string
	CreatedAt       time.Time
}

// CustomerReservationView lists a customer's live reservations; the
// advisory penalty figures are filled in by the usecase from the clock.
type CustomerReservationView struct {
	ReservationID uuid.UUID
	TableID       uuid.UUID
	VenueName     string
	TableNumber   int
	TableCategory string
	Date          time.Time
	StartsAt      string
	EndsAt        string
	DurationHours float64
	PaidCents     int64
	Status        string
	OwnerPhone    string

	SuggestedPenaltyPercent int
	SuggestedRefundCents    int64
}

type OwnerRequestView struct {
	ReservationID uuid.UUID
	VenueName     string
	TableNumber   int
	CustomerName  string
	Date          time.Time
	StartsAt      string
	DurationHours float64
	PaidCents     int64
	Status        string
	ReceiptURL    string
}

type PendingRefundView struct {
	ReservationID uuid.UUID
	PaymentID     uuid.UUID
	VenueName     string
	TableNumber   int
	CustomerName  string
	Date          time.Time
	StartsAt      string
	PaidCents     int64
	PenaltyCents  int64
	RefundCents   int64
	RefundQRURL   string
}
