package schedule

import (
	"time"

	"billiar/internal/pkg/errs"
)

// Calendar dates are represented as midnight-UTC timestamps. All
// comparisons against "today" are made in the venue's civil zone, never
// in the host zone: stored times are timezone-naive, so the only
// correct frame is the venue's own wall clock.

var ErrInvalidDate = errs.New("invalid date, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(ErrInvalidDate, "parse %q", s), ErrInvalidDate)
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.UTC().Format(dateLayout)
}

// CivilNow projects the instant now into zone and returns the civil
// calendar date (midnight UTC) and wall-clock time of day there.
func CivilNow(now time.Time, zone *time.Location) (time.Time, TimeOfDay) {
	local := now.In(zone)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return date, NewTimeOfDay(local.Hour(), local.Minute(), local.Second())
}

// CivilToday returns today's calendar date in zone.
func CivilToday(now time.Time, zone *time.Location) time.Time {
	date, _ := CivilNow(now, zone)
	return date
}

// CivilNowAnchored returns now in zone as a timezone-naive timestamp
// (the civil clock reading rendered in UTC), directly comparable with a
// date+TimeOfDay combination built by CombineDateTime.
func CivilNowAnchored(now time.Time, zone *time.Location) time.Time {
	local := now.In(zone)
	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), 0, time.UTC)
}

// CombineDateTime merges a calendar date with a time of day into a
// naive timestamp comparable with CivilNowAnchored output.
func CombineDateTime(date time.Time, t TimeOfDay) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}
