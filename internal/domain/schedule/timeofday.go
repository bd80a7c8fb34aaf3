package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"billiar/internal/pkg/errs"
)

// TimeOfDay is a wall-clock time anchored to 1970-01-01 UTC. Anchoring
// every value to the same calendar date lets callers compare and
// subtract times of day with ordinary timestamp arithmetic while the
// value stays independent of any real date. Call sites never see the
// anchor constant.
type TimeOfDay struct {
	t time.Time
}

var timeOfDayPattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)

const anchorYear = 1970

// ParseTimeOfDay accepts 24-hour "HH:mm" or "HH:mm:ss".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayPattern.MatchString(s) {
		return TimeOfDay{}, errs.Mark(errs.Wrapf(errs.ErrInvalidTimeFormat, "parse %q", s), errs.ErrInvalidTimeFormat)
	}

	hour, _ := strconv.Atoi(s[0:2])
	minute, _ := strconv.Atoi(s[3:5])
	second := 0
	if len(s) == 8 {
		second, _ = strconv.Atoi(s[6:8])
	}
	if hour > 23 || minute > 59 || second > 59 {
		return TimeOfDay{}, errs.Mark(errs.Wrapf(errs.ErrInvalidTimeFormat, "parse %q", s), errs.ErrInvalidTimeFormat)
	}

	return NewTimeOfDay(hour, minute, second), nil
}

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{t: time.Date(anchorYear, time.January, 1, hour, minute, second, 0, time.UTC)}
}

// SlotStart returns the start of the hourly slot h. h may be 24, which
// yields the exclusive upper bound of the last slot of the day.
func SlotStart(h int) TimeOfDay {
	return TimeOfDay{t: time.Date(anchorYear, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(h) * time.Hour)}
}

// FromAnchor rebuilds a TimeOfDay from a stored anchored timestamp.
// The timestamp is taken as-is so a 24:00 upper bound (anchor day + 1)
// survives the round trip.
func FromAnchor(t time.Time) TimeOfDay {
	return TimeOfDay{t: t.UTC()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.t.Hour(), t.t.Minute())
}

func (t TimeOfDay) Hour() int   { return t.t.Hour() }
func (t TimeOfDay) Minute() int { return t.t.Minute() }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.t.Before(other.t) }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.t.After(other.t) }
func (t TimeOfDay) Equal(other TimeOfDay) bool  { return t.t.Equal(other.t) }

func (t TimeOfDay) Sub(other TimeOfDay) time.Duration { return t.t.Sub(other.t) }

func (t TimeOfDay) Add(d time.Duration) TimeOfDay { return TimeOfDay{t: t.t.Add(d)} }

func (t TimeOfDay) IsZero() bool { return t.t.IsZero() }

// Anchor exposes the underlying anchored timestamp for persistence.
func (t TimeOfDay) Anchor() time.Time { return t.t }
