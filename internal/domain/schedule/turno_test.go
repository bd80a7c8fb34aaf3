//go:build unit

package schedule_test

import (
	"testing"

	"billiar/internal/domain/schedule"
	"billiar/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTurno(t *testing.T, weekday schedule.Weekday, opens, closes string) *schedule.Turno {
	t.Helper()
	o, err := schedule.ParseTimeOfDay(opens)
	require.NoError(t, err)
	c, err := schedule.ParseTimeOfDay(closes)
	require.NoError(t, err)
	turno, err := schedule.NewTurno(uuid.New(), weekday, o, c, schedule.TurnoActive)
	require.NoError(t, err)
	return turno
}

func TestNewTurno(t *testing.T) {
	t.Run("valid shift", func(t *testing.T) {
		turno := mustTurno(t, schedule.Monday, "10:00", "22:00")
		assert.NotEqual(t, uuid.Nil, turno.ID())
		assert.True(t, turno.IsActive())
	})

	t.Run("rejects zero length", func(t *testing.T) {
		o, err := schedule.ParseTimeOfDay("10:00")
		require.NoError(t, err)
		_, err = schedule.NewTurno(uuid.New(), schedule.Monday, o, o, schedule.TurnoActive)
		assert.ErrorIs(t, err, errs.ErrInvalidTurno)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		o, err := schedule.ParseTimeOfDay("22:00")
		require.NoError(t, err)
		c, err := schedule.ParseTimeOfDay("10:00")
		require.NoError(t, err)
		_, err = schedule.NewTurno(uuid.New(), schedule.Monday, o, c, schedule.TurnoActive)
		assert.ErrorIs(t, err, errs.ErrInvalidTurno)
	})
}

func TestOverlapsTurno(t *testing.T) {
	morning := mustTurno(t, schedule.Monday, "08:00", "12:00")
	afternoon := mustTurno(t, schedule.Monday, "12:00", "18:00")
	overlapping := mustTurno(t, schedule.Monday, "11:00", "13:00")

	assert.False(t, morning.OverlapsTurno(afternoon), "back-to-back turnos do not overlap")
	assert.True(t, morning.OverlapsTurno(overlapping))
	assert.True(t, overlapping.OverlapsTurno(afternoon))

	// Overlap ignores state: an INACTIVE turno still claims its span.
	overlapping.SetStatus(schedule.TurnoInactive)
	assert.True(t, morning.OverlapsTurno(overlapping))
}

func TestValidateDayTurnos(t *testing.T) {
	t.Run("disjoint day passes", func(t *testing.T) {
		err := schedule.ValidateDayTurnos(schedule.Friday, []*schedule.Turno{
			mustTurno(t, schedule.Friday, "08:00", "12:00"),
			mustTurno(t, schedule.Friday, "14:00", "23:00"),
		})
		assert.NoError(t, err)
	})

	t.Run("overlapping day fails", func(t *testing.T) {
		err := schedule.ValidateDayTurnos(schedule.Friday, []*schedule.Turno{
			mustTurno(t, schedule.Friday, "08:00", "15:00"),
			mustTurno(t, schedule.Friday, "14:00", "23:00"),
		})
		assert.ErrorIs(t, err, errs.ErrOverlappingTurnos)
	})
}

func TestAmend(t *testing.T) {
	turno := mustTurno(t, schedule.Tuesday, "10:00", "20:00")

	newCloses, err := schedule.ParseTimeOfDay("22:00")
	require.NoError(t, err)
	inactive := schedule.TurnoInactive

	require.NoError(t, turno.Amend(nil, &newCloses, &inactive))
	assert.Equal(t, "22:00", turno.ClosesAt().String())
	assert.False(t, turno.IsActive())

	t.Run("amend cannot invert the range", func(t *testing.T) {
		badCloses, err := schedule.ParseTimeOfDay("09:00")
		require.NoError(t, err)
		assert.ErrorIs(t, turno.Amend(nil, &badCloses, nil), errs.ErrInvalidTurno)
		// Failed amend leaves the turno untouched.
		assert.Equal(t, "22:00", turno.ClosesAt().String())
	})
}
