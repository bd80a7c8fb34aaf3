package venue

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Venue is a billiards establishment. It owns its tables and exactly
// one weekly business-hours calendar.
type Venue struct {
	id              uuid.UUID
	name            string
	address         string
	city            string
	lat             float64
	lng             float64
	ownerID         uuid.UUID
	discountPercent float64
	status          Status
	createdAt       time.Time
}

func ReconstructVenue(
	id uuid.UUID,
	name, address, city string,
	lat, lng float64,
	ownerID uuid.UUID,
	discountPercent float64,
	status Status,
	createdAt time.Time,
) *Venue {
	return &Venue{
		id:              id,
		name:            name,
		address:         address,
		city:            city,
		lat:             lat,
		lng:             lng,
		ownerID:         ownerID,
		discountPercent: discountPercent,
		status:          status,
		createdAt:       createdAt,
	}
}

func (v *Venue) ID() uuid.UUID            { return v.id }
func (v *Venue) Name() string             { return v.name }
func (v *Venue) Address() string          { return v.address }
func (v *Venue) City() string             { return v.city }
func (v *Venue) OwnerID() uuid.UUID       { return v.ownerID }
func (v *Venue) DiscountPercent() float64 { return v.discountPercent }
func (v *Venue) Status() Status           { return v.status }

func (v *Venue) IsActive() bool { return v.status == StatusActive }

func (v *Venue) IsAdministeredBy(userID uuid.UUID) bool {
	return v.ownerID == userID
}
