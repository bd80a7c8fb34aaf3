package venue

import (
	"time"

	"billiar/internal/domain/schedule"
	"billiar/internal/pkg/errs"

	"github.com/google/uuid"
)

// Block is an ad-hoc maintenance/blackout window on one table for one
// date, independent of reservations. Blocks may overlap each other;
// they only matter when checked against booking requests.
type Block struct {
	id       uuid.UUID
	tableID  uuid.UUID
	date     time.Time
	startsAt schedule.TimeOfDay
	endsAt   schedule.TimeOfDay
}

func NewBlock(tableID uuid.UUID, date time.Time, startsAt, endsAt schedule.TimeOfDay) (*Block, error) {
	if !endsAt.After(startsAt) {
		return nil, errs.Mark(
			errs.Wrapf(errs.ErrInvalidRange, "block [%s,%s)", startsAt, endsAt),
			errs.ErrInvalidRange,
		)
	}
	return &Block{
		id:       uuid.New(),
		tableID:  tableID,
		date:     date,
		startsAt: startsAt,
		endsAt:   endsAt,
	}, nil
}

func ReconstructBlock(id, tableID uuid.UUID, date time.Time, startsAt, endsAt schedule.TimeOfDay) *Block {
	return &Block{
		id:       id,
		tableID:  tableID,
		date:     date,
		startsAt: startsAt,
		endsAt:   endsAt,
	}
}

func (b *Block) ID() uuid.UUID                { return b.id }
func (b *Block) TableID() uuid.UUID           { return b.tableID }
func (b *Block) Date() time.Time              { return b.date }
func (b *Block) StartsAt() schedule.TimeOfDay { return b.startsAt }
func (b *Block) EndsAt() schedule.TimeOfDay   { return b.endsAt }

func (b *Block) OverlapsWindow(start, end schedule.TimeOfDay) bool {
	return schedule.Overlaps(b.startsAt, b.endsAt, start, end)
}
