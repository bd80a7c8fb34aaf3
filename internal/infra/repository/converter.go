package repository

import (
	"time"

	"billiar/internal/domain/schedule"

	"github.com/jackc/pgx/v5/pgtype"
)

// Time-of-day columns are stored as their anchored timestamps
// (1970-01-01 base) so the half-open interval comparisons in SQL match
// the in-memory ones exactly, including a 24:00 upper bound.

func todToPg(t schedule.TimeOfDay) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.Anchor(), Valid: true}
}

func todFromPg(pt pgtype.Timestamptz) schedule.TimeOfDay {
	return schedule.FromAnchor(pt.Time)
}

func dateToPg(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func dateFromPg(pd pgtype.Date) time.Time {
	return time.Date(pd.Time.Year(), pd.Time.Month(), pd.Time.Day(), 0, 0, 0, 0, time.UTC)
}
