package schedule

import (
	"time"

	"billiar/internal/pkg/errs"

	"github.com/google/uuid"
)

type TurnoStatus string

const (
	TurnoActive   TurnoStatus = "ACTIVE"
	TurnoInactive TurnoStatus = "INACTIVE"
)

func (s TurnoStatus) IsValid() bool {
	return s == TurnoActive || s == TurnoInactive
}

// WriteMode selects how ReplaceDays treats turnos already stored for
// the venue.
type WriteMode string

const (
	// ReplaceGivenDays deletes and recreates only the supplied weekdays.
	ReplaceGivenDays WriteMode = "REPLACE_GIVEN_DAYS"
	// ReplaceAll wipes the whole week before inserting.
	ReplaceAll WriteMode = "REPLACE_ALL"
	// Merge inserts alongside existing turnos, rejecting any overlap.
	Merge WriteMode = "MERGE"
)

func (m WriteMode) IsValid() bool {
	switch m {
	case ReplaceGivenDays, ReplaceAll, Merge:
		return true
	default:
		return false
	}
}

// Turno is one contiguous open/close shift on one weekday of a venue's
// business-hours calendar. Turnos are independent rows: each can be
// edited, deleted or toggled on its own.
type Turno struct {
	id        uuid.UUID
	venueID   uuid.UUID
	weekday   Weekday
	opensAt   TimeOfDay
	closesAt  TimeOfDay
	status    TurnoStatus
	createdAt time.Time
}

func NewTurno(venueID uuid.UUID, weekday Weekday, opensAt, closesAt TimeOfDay, status TurnoStatus) (*Turno, error) {
	if !closesAt.After(opensAt) {
		return nil, errs.Mark(
			errs.Wrapf(errs.ErrInvalidTurno, "%s [%s,%s)", weekday, opensAt, closesAt),
			errs.ErrInvalidTurno,
		)
	}
	if !status.IsValid() {
		status = TurnoActive
	}

	return &Turno{
		id:       uuid.New(),
		venueID:  venueID,
		weekday:  weekday,
		opensAt:  opensAt,
		closesAt: closesAt,
		status:   status,
	}, nil
}

func ReconstructTurno(
	id, venueID uuid.UUID,
	weekday Weekday,
	opensAt, closesAt TimeOfDay,
	status TurnoStatus,
	createdAt time.Time,
) *Turno {
	return &Turno{
		id:        id,
		venueID:   venueID,
		weekday:   weekday,
		opensAt:   opensAt,
		closesAt:  closesAt,
		status:    status,
		createdAt: createdAt,
	}
}

func (t *Turno) ID() uuid.UUID        { return t.id }
func (t *Turno) VenueID() uuid.UUID   { return t.venueID }
func (t *Turno) Weekday() Weekday     { return t.weekday }
func (t *Turno) OpensAt() TimeOfDay   { return t.opensAt }
func (t *Turno) ClosesAt() TimeOfDay  { return t.closesAt }
func (t *Turno) Status() TurnoStatus  { return t.status }
func (t *Turno) CreatedAt() time.Time { return t.createdAt }

func (t *Turno) IsActive() bool { return t.status == TurnoActive }

// OverlapsTurno is state-blind: the non-overlap invariant holds for the
// whole weekday regardless of ACTIVE/INACTIVE.
func (t *Turno) OverlapsTurno(other *Turno) bool {
	return Overlaps(t.opensAt, t.closesAt, other.opensAt, other.closesAt)
}

// Amend recomputes the effective window from the optional fields and
// re-validates open < close. Overlap against siblings is the calendar
// write path's responsibility.
func (t *Turno) Amend(opensAt, closesAt *TimeOfDay, status *TurnoStatus) error {
	newOpens := t.opensAt
	newCloses := t.closesAt
	if opensAt != nil {
		newOpens = *opensAt
	}
	if closesAt != nil {
		newCloses = *closesAt
	}
	if !newCloses.After(newOpens) {
		return errs.Mark(
			errs.Wrapf(errs.ErrInvalidTurno, "%s [%s,%s)", t.weekday, newOpens, newCloses),
			errs.ErrInvalidTurno,
		)
	}

	t.opensAt = newOpens
	t.closesAt = newCloses
	if status != nil && status.IsValid() {
		t.status = *status
	}
	return nil
}

func (t *Turno) SetStatus(status TurnoStatus) {
	t.status = status
}

// ValidateDayTurnos enforces the per-weekday invariant over a candidate
// set: every turno well-formed and no pairwise overlap.
func ValidateDayTurnos(weekday Weekday, turnos []*Turno) error {
	for i, a := range turnos {
		for _, b := range turnos[i+1:] {
			if a.OverlapsTurno(b) {
				return errs.Mark(
					errs.Wrapf(errs.ErrOverlappingTurnos, "%s: [%s,%s) vs [%s,%s)",
						weekday, a.opensAt, a.closesAt, b.opensAt, b.closesAt),
					errs.ErrOverlappingTurnos,
				)
			}
		}
	}
	return nil
}
