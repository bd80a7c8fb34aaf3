package reservation

import (
	"fmt"
	"time"

	"billiar/internal/domain/schedule"
	"billiar/internal/pkg/errs"
)

// Money is an amount in integer cents, so "round to 2 decimals" in the
// business rules maps to rounding to the nearest cent.
type Money int64

func (m Money) Cents() int64 { return int64(m) }

func (m Money) Units() float64 { return float64(m) / 100.0 }

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Units())
}

// Window is one contiguous half-open booking interval on one calendar
// date. One reservation occupies exactly one table for one Window.
type Window struct {
	date  time.Time
	start schedule.TimeOfDay
	end   schedule.TimeOfDay
}

func NewWindow(date time.Time, start, end schedule.TimeOfDay) (Window, error) {
	if !end.After(start) {
		return Window{}, errs.Mark(
			errs.Wrapf(errs.ErrInvalidRange, "[%s,%s) on %s", start, end, schedule.FormatDate(date)),
			errs.ErrInvalidRange,
		)
	}
	return Window{date: date, start: start, end: end}, nil
}

// ReconstructWindow rebuilds a stored window without re-validating.
func ReconstructWindow(date time.Time, start, end schedule.TimeOfDay) Window {
	return Window{date: date, start: start, end: end}
}

func (w Window) Date() time.Time           { return w.date }
func (w Window) Start() schedule.TimeOfDay { return w.start }
func (w Window) End() schedule.TimeOfDay   { return w.end }
func (w Window) Duration() time.Duration   { return w.end.Sub(w.start) }

// ShiftTo moves the window to a new date and start, preserving its
// duration. Used by reschedule.
func (w Window) ShiftTo(date time.Time, start schedule.TimeOfDay) Window {
	return Window{date: date, start: start, end: start.Add(w.Duration())}
}

func (w Window) Overlaps(other Window) bool {
	if !w.date.Equal(other.date) {
		return false
	}
	return schedule.Overlaps(w.start, w.end, other.start, other.end)
}
