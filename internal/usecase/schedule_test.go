//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"billiar/internal/domain/schedule"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(opens, closes string) usecase.TurnoInput {
	return usecase.TurnoInput{OpensAt: opens, ClosesAt: closes}
}

func seedTurno(t *testing.T, store *fakeStore, venueID uuid.UUID, weekday schedule.Weekday, opens, closes string) *schedule.Turno {
	t.Helper()
	turno, err := schedule.NewTurno(venueID, weekday, hhmm(t, opens), hhmm(t, closes), schedule.TurnoActive)
	require.NoError(t, err)
	store.turnos = append(store.turnos, turno)
	return turno
}

func venueTurnos(store *fakeStore, venueID uuid.UUID, weekday schedule.Weekday) []*schedule.Turno {
	var out []*schedule.Turno
	for _, turno := range store.turnos {
		if turno.VenueID() == venueID && turno.Weekday() == weekday {
			out = append(out, turno)
		}
	}
	return out
}

func TestReplaceDays(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()

	t.Run("replace given days leaves other days alone", func(t *testing.T) {
		store := newFakeStore()
		seedTurno(t, store, venueID, schedule.Monday, "08:00", "12:00")
		tuesday := seedTurno(t, store, venueID, schedule.Tuesday, "08:00", "12:00")

		uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
		created, err := uc.ReplaceDays(ctx, venueID, map[schedule.Weekday][]usecase.TurnoInput{
			schedule.Monday: {span("10:00", "14:00"), span("16:00", "22:00")},
		}, schedule.ReplaceGivenDays)
		require.NoError(t, err)
		assert.Len(t, created, 2)

		monday := venueTurnos(store, venueID, schedule.Monday)
		require.Len(t, monday, 2)
		assert.Equal(t, "10:00", monday[0].OpensAt().String())

		require.Len(t, venueTurnos(store, venueID, schedule.Tuesday), 1)
		assert.Equal(t, tuesday.ID(), venueTurnos(store, venueID, schedule.Tuesday)[0].ID())
	})

	t.Run("replace all wipes the whole week first", func(t *testing.T) {
		store := newFakeStore()
		seedTurno(t, store, venueID, schedule.Monday, "08:00", "12:00")
		seedTurno(t, store, venueID, schedule.Sunday, "08:00", "12:00")

		uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
		_, err := uc.ReplaceDays(ctx, venueID, map[schedule.Weekday][]usecase.TurnoInput{
			schedule.Friday: {span("18:00", "23:00")},
		}, schedule.ReplaceAll)
		require.NoError(t, err)

		assert.Len(t, store.turnos, 1)
		assert.Equal(t, schedule.Friday, store.turnos[0].Weekday())
	})

	t.Run("merge refuses overlap with stored turnos", func(t *testing.T) {
		store := newFakeStore()
		seedTurno(t, store, venueID, schedule.Monday, "10:00", "14:00")

		uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
		_, err := uc.ReplaceDays(ctx, venueID, map[schedule.Weekday][]usecase.TurnoInput{
			schedule.Monday: {span("13:00", "18:00")},
		}, schedule.Merge)
		assert.ErrorIs(t, err, errs.ErrTurnoOverlap)
	})

	t.Run("merge accepts back to back turnos", func(t *testing.T) {
		store := newFakeStore()
		seedTurno(t, store, venueID, schedule.Monday, "10:00", "14:00")

		uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
		_, err := uc.ReplaceDays(ctx, venueID, map[schedule.Weekday][]usecase.TurnoInput{
			schedule.Monday: {span("14:00", "18:00")},
		}, schedule.Merge)
		require.NoError(t, err)
		assert.Len(t, venueTurnos(store, venueID, schedule.Monday), 2)
	})

	t.Run("unknown write mode is rejected, not defaulted", func(t *testing.T) {
		store := newFakeStore()
		seedTurno(t, store, venueID, schedule.Monday, "08:00", "12:00")

		uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
		_, err := uc.ReplaceDays(ctx, venueID, map[schedule.Weekday][]usecase.TurnoInput{
			schedule.Monday: {span("10:00", "14:00")},
		}, schedule.WriteMode("REPLACE_GIVN_DAYS"))
		assert.ErrorIs(t, err, errs.ErrUnknownWriteMode)
		require.Len(t, venueTurnos(store, venueID, schedule.Monday), 1)
		assert.Equal(t, "08:00", venueTurnos(store, venueID, schedule.Monday)[0].OpensAt().String())
	})

	t.Run("overlapping inputs within one day are rejected up front", func(t *testing.T) {
		store := newFakeStore()

		uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
		_, err := uc.ReplaceDays(ctx, venueID, map[schedule.Weekday][]usecase.TurnoInput{
			schedule.Monday: {span("10:00", "14:00"), span("12:00", "16:00")},
		}, schedule.ReplaceGivenDays)
		assert.ErrorIs(t, err, errs.ErrOverlappingTurnos)
		assert.Empty(t, store.turnos, "nothing may be written on validation failure")
	})

	t.Run("malformed times are rejected up front", func(t *testing.T) {
		store := newFakeStore()

		uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
		_, err := uc.ReplaceDays(ctx, venueID, map[schedule.Weekday][]usecase.TurnoInput{
			schedule.Monday: {span("10h00", "14:00")},
		}, schedule.ReplaceGivenDays)
		assert.ErrorIs(t, err, errs.ErrInvalidTimeFormat)
	})
}

func TestUpdateTurno(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()

	strPtr := func(s string) *string { return &s }

	t.Run("amends times", func(t *testing.T) {
		store := newFakeStore()
		turno := seedTurno(t, store, venueID, schedule.Monday, "10:00", "14:00")

		uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
		updated, err := uc.UpdateTurno(ctx, venueID, turno.ID(), strPtr("11:00"), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "11:00", updated.OpensAt().String())
		assert.Equal(t, "14:00", updated.ClosesAt().String())
	})

	t.Run("refuses overlap with a sibling", func(t *testing.T) {
		store := newFakeStore()
		turno := seedTurno(t, store, venueID, schedule.Monday, "10:00", "14:00")
		seedTurno(t, store, venueID, schedule.Monday, "16:00", "20:00")

		uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
		_, err := uc.UpdateTurno(ctx, venueID, turno.ID(), nil, strPtr("17:00"), nil)
		assert.ErrorIs(t, err, errs.ErrTurnoOverlap)
	})

	t.Run("turno of another venue reads as not found", func(t *testing.T) {
		store := newFakeStore()
		turno := seedTurno(t, store, uuid.New(), schedule.Monday, "10:00", "14:00")

		uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
		_, err := uc.UpdateTurno(ctx, venueID, turno.ID(), strPtr("11:00"), nil, nil)
		assert.ErrorIs(t, err, errs.ErrTurnoNotFound)
	})
}

func TestDeactivateTurno(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()

	store := newFakeStore()
	turno := seedTurno(t, store, venueID, schedule.Monday, "10:00", "14:00")

	uc := usecase.NewScheduleUseCase(&fakeUoW{store: store})
	updated, err := uc.SetTurnoState(ctx, venueID, turno.ID(), schedule.TurnoInactive)
	require.NoError(t, err)
	assert.False(t, updated.IsActive())

	week, err := uc.ListWeek(ctx, venueID, true)
	require.NoError(t, err)
	assert.Empty(t, week[schedule.Monday], "inactive turnos drop out of the active listing")
}
