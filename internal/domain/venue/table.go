package venue

import "github.com/google/uuid"

type TableCategory string

const (
	CategoryPool      TableCategory = "POOL"
	CategoryCarambola TableCategory = "CARAMBOLA"
	CategorySnooker   TableCategory = "SNOOKER"
	CategoryMixto     TableCategory = "MIXTO"
)

func (c TableCategory) IsValid() bool {
	switch c {
	case CategoryPool, CategoryCarambola, CategorySnooker, CategoryMixto:
		return true
	default:
		return false
	}
}

type TableStatus string

const (
	TableAvailable   TableStatus = "AVAILABLE"
	TableOccupied    TableStatus = "OCCUPIED"
	TableMaintenance TableStatus = "MAINTENANCE"
	TableInactive    TableStatus = "INACTIVE"
)

// Table is a single billiard table. Number is unique within its venue.
// Price or category changes never rewrite amounts already frozen on
// existing reservations.
type Table struct {
	id               uuid.UUID
	venueID          uuid.UUID
	number           int
	category         TableCategory
	hourlyPriceCents int64
	status           TableStatus
}

func ReconstructTable(
	id, venueID uuid.UUID,
	number int,
	category TableCategory,
	hourlyPriceCents int64,
	status TableStatus,
) *Table {
	return &Table{
		id:               id,
		venueID:          venueID,
		number:           number,
		category:         category,
		hourlyPriceCents: hourlyPriceCents,
		status:           status,
	}
}

func (t *Table) ID() uuid.UUID           { return t.id }
func (t *Table) VenueID() uuid.UUID      { return t.venueID }
func (t *Table) Number() int             { return t.number }
func (t *Table) Category() TableCategory { return t.category }
func (t *Table) HourlyPriceCents() int64 { return t.hourlyPriceCents }
func (t *Table) Status() TableStatus     { return t.status }
