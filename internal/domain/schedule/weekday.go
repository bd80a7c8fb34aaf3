package schedule

import (
	"strings"
	"time"

	"billiar/internal/pkg/errs"
)

// Weekday is Monday-first, matching how venues declare their week.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var ErrInvalidWeekday = errs.New("invalid weekday")

var weekdayNames = [7]string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "INVALID"
	}
	return weekdayNames[w]
}

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func ParseWeekday(s string) (Weekday, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range weekdayNames {
		if name == up {
			return Weekday(i), nil
		}
	}
	return 0, errs.Mark(errs.Wrapf(ErrInvalidWeekday, "parse %q", s), ErrInvalidWeekday)
}

// WeekdayOf maps a calendar date to the Monday-first weekday.
func WeekdayOf(date time.Time) Weekday {
	// time.Weekday is Sunday-first.
	return Weekday((int(date.Weekday()) + 6) % 7)
}
