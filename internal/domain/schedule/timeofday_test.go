//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"billiar/internal/domain/schedule"
	"billiar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("accepts HH:mm", func(t *testing.T) {
		tod, err := schedule.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, tod.Hour())
		assert.Equal(t, 30, tod.Minute())
		assert.Equal(t, "09:30", tod.String())
	})

	t.Run("accepts HH:mm:ss", func(t *testing.T) {
		tod, err := schedule.ParseTimeOfDay("22:15:45")
		require.NoError(t, err)
		assert.Equal(t, 22, tod.Hour())
		assert.Equal(t, 15, tod.Minute())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"9:30", "09-30", "25:00", "09:61", "", "noon", "09:30:00:00"} {
			_, err := schedule.ParseTimeOfDay(s)
			assert.ErrorIs(t, err, errs.ErrInvalidTimeFormat, "input %q", s)
		}
	})
}

func TestTimeOfDayOrdering(t *testing.T) {
	early, err := schedule.ParseTimeOfDay("08:00")
	require.NoError(t, err)
	late, err := schedule.ParseTimeOfDay("20:00")
	require.NoError(t, err)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Equal(late))
	assert.Equal(t, 12*time.Hour, late.Sub(early))
}

func TestSlotStartUpperBound(t *testing.T) {
	// Slot 23 runs to 24:00, which must sort after every start of day.
	end := schedule.SlotStart(24)
	lastStart := schedule.SlotStart(23)
	assert.True(t, lastStart.Before(end))
	assert.Equal(t, 23, lastStart.Hour())
}

func TestFromAnchorRoundTrip(t *testing.T) {
	tod, err := schedule.ParseTimeOfDay("18:45")
	require.NoError(t, err)

	rebuilt := schedule.FromAnchor(tod.Anchor())
	assert.True(t, tod.Equal(rebuilt))

	// The 24:00 upper bound survives the round trip.
	upper := schedule.SlotStart(24)
	assert.True(t, upper.Equal(schedule.FromAnchor(upper.Anchor())))
}

func TestOverlaps(t *testing.T) {
	at := func(s string) schedule.TimeOfDay {
		tod, err := schedule.ParseTimeOfDay(s)
		require.NoError(t, err)
		return tod
	}

	cases := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"identical", "10:00", "12:00", "10:00", "12:00", true},
		{"partial overlap", "10:00", "12:00", "11:00", "13:00", true},
		{"containment", "10:00", "14:00", "11:00", "12:00", true},
		{"back to back", "10:00", "12:00", "12:00", "14:00", false},
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.Overlaps(at(tc.aStart), at(tc.aEnd), at(tc.bStart), at(tc.bEnd))
			assert.Equal(t, tc.want, got)
			// Overlap is symmetric.
			assert.Equal(t, tc.want, schedule.Overlaps(at(tc.bStart), at(tc.bEnd), at(tc.aStart), at(tc.aEnd)))
		})
	}
}

func TestContains(t *testing.T) {
	at := func(s string) schedule.TimeOfDay {
		tod, err := schedule.ParseTimeOfDay(s)
		require.NoError(t, err)
		return tod
	}

	assert.True(t, schedule.Contains(at("10:00"), at("22:00"), at("10:00"), at("11:00")))
	assert.True(t, schedule.Contains(at("10:00"), at("22:00"), at("21:00"), at("22:00")))
	assert.False(t, schedule.Contains(at("10:00"), at("22:00"), at("09:00"), at("10:00")))
	assert.False(t, schedule.Contains(at("10:00"), at("22:00"), at("21:30"), at("22:30")))
}

func TestWeekdayOf(t *testing.T) {
	// 2026-08-31 is a Monday, 2026-09-06 a Sunday.
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, schedule.Monday, schedule.WeekdayOf(monday))
	assert.Equal(t, schedule.Sunday, schedule.WeekdayOf(monday.AddDate(0, 0, 6)))
	assert.Equal(t, "MONDAY", schedule.Monday.String())
	assert.Equal(t, "SUNDAY", schedule.Sunday.String())
}

func TestCivilNow(t *testing.T) {
	zone, err := time.LoadLocation("America/La_Paz")
	require.NoError(t, err)

	// 03:30 UTC is 23:30 the previous day in La Paz (UTC-4).
	instant := time.Date(2026, 9, 2, 3, 30, 0, 0, time.UTC)
	date, tod := schedule.CivilNow(instant, zone)

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, 23, tod.Hour())
	assert.Equal(t, 30, tod.Minute())
}

func TestCombineDateTimeMatchesCivilNowAnchored(t *testing.T) {
	zone, err := time.LoadLocation("America/La_Paz")
	require.NoError(t, err)

	instant := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC) // 14:00 in La Paz
	anchored := schedule.CivilNowAnchored(instant, zone)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	tod, err := schedule.ParseTimeOfDay("14:00")
	require.NoError(t, err)

	assert.Equal(t, schedule.CombineDateTime(date, tod), anchored)
}
