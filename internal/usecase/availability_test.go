//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"billiar/internal/domain/reservation"
	"billiar/internal/domain/schedule"
	"billiar/internal/domain/venue"
	"billiar/internal/infra"
	"billiar/internal/pkg/clock"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// laPaz stands in for America/La_Paz, which has no DST.
var laPaz = time.FixedZone("-04", -4*60*60)

type availabilityWorld struct {
	store   *fakeStore
	venueID uuid.UUID
	tableID uuid.UUID
	ownerID uuid.UUID
}

// seedAvailabilityWorld builds an active venue with one table opening
// Mondays 10:00-22:00.
func seedAvailabilityWorld(t *testing.T) availabilityWorld {
	t.Helper()

	store := newFakeStore()
	venueID := uuid.New()
	tableID := uuid.New()
	ownerID := uuid.New()

	store.venues[venueID] = venue.ReconstructVenue(
		venueID, "Club 8 Bola", "Av. Ballivian 123", "La Paz",
		-16.5, -68.15, ownerID, 0, venue.StatusActive, time.Now(),
	)
	store.tables[tableID] = venue.ReconstructTable(
		tableID, venueID, 1, venue.CategoryPool, 2500, venue.TableAvailable,
	)

	turno, err := schedule.NewTurno(venueID, schedule.Monday, hhmm(t, "10:00"), hhmm(t, "22:00"), schedule.TurnoActive)
	require.NoError(t, err)
	store.turnos = append(store.turnos, turno)

	return availabilityWorld{store: store, venueID: venueID, tableID: tableID, ownerID: ownerID}
}

func hhmm(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func hours(t *testing.T, slots []schedule.TimeOfDay) []int {
	t.Helper()
	out := make([]int, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Hour())
	}
	return out
}

func TestFreeSlots(t *testing.T) {
	ctx := context.Background()

	// Monday, well in the future relative to the fixed clock.
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	t.Run("turnos minus reservations and blocks", func(t *testing.T) {
		w := seedAvailabilityWorld(t)

		window, err := reservation.NewWindow(monday, hhmm(t, "14:00"), hhmm(t, "16:00"))
		require.NoError(t, err)
		res := reservation.NewReservation(w.tableID, uuid.New(), window, 5000)
		w.store.reservations[res.ID()] = res

		block, err := venue.NewBlock(w.tableID, monday, hhmm(t, "18:00"), hhmm(t, "19:00"))
		require.NoError(t, err)
		w.store.blocks = append(w.store.blocks, block)

		uc := usecase.NewAvailabilityUseCase(&fakeUoW{store: w.store}, clk, laPaz, 5)
		slots, err := uc.FreeSlots(ctx, w.tableID, monday)
		require.NoError(t, err)

		assert.Equal(t, []int{10, 11, 12, 13, 16, 17, 19, 20, 21}, hours(t, slots))
	})

	t.Run("cancelled reservations free their slots", func(t *testing.T) {
		w := seedAvailabilityWorld(t)

		window, err := reservation.NewWindow(monday, hhmm(t, "14:00"), hhmm(t, "16:00"))
		require.NoError(t, err)
		res := reservation.NewReservation(w.tableID, uuid.New(), window, 5000)
		require.NoError(t, res.Cancel(0))
		w.store.reservations[res.ID()] = res

		uc := usecase.NewAvailabilityUseCase(&fakeUoW{store: w.store}, clk, laPaz, 5)
		slots, err := uc.FreeSlots(ctx, w.tableID, monday)
		require.NoError(t, err)

		assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}, hours(t, slots))
	})

	t.Run("inactive turnos do not open slots", func(t *testing.T) {
		w := seedAvailabilityWorld(t)
		for _, turno := range w.store.turnos {
			turno.SetStatus(schedule.TurnoInactive)
		}

		uc := usecase.NewAvailabilityUseCase(&fakeUoW{store: w.store}, clk, laPaz, 5)
		slots, err := uc.FreeSlots(ctx, w.tableID, monday)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("past dates are empty", func(t *testing.T) {
		w := seedAvailabilityWorld(t)

		uc := usecase.NewAvailabilityUseCase(&fakeUoW{store: w.store}, clk, laPaz, 5)
		slots, err := uc.FreeSlots(ctx, w.tableID, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("same day keeps the current slot within tolerance", func(t *testing.T) {
		w := seedAvailabilityWorld(t)

		// 17:05 UTC is 13:05 in La Paz: slot 13 is still orderable
		// with the 5 minute tolerance, everything earlier is gone.
		sameDayClk := clock.NewMockClock(time.Date(2026, 9, 7, 17, 5, 0, 0, time.UTC))
		uc := usecase.NewAvailabilityUseCase(&fakeUoW{store: w.store}, sameDayClk, laPaz, 5)

		slots, err := uc.FreeSlots(ctx, w.tableID, monday)
		require.NoError(t, err)
		assert.Equal(t, []int{13, 14, 15, 16, 17, 18, 19, 20, 21}, hours(t, slots))

		// One minute past the tolerance the 13:00 slot closes too.
		sameDayClk.Set(time.Date(2026, 9, 7, 17, 6, 0, 0, time.UTC))
		slots, err = uc.FreeSlots(ctx, w.tableID, monday)
		require.NoError(t, err)
		assert.Equal(t, []int{14, 15, 16, 17, 18, 19, 20, 21}, hours(t, slots))
	})

	t.Run("read is repeatable", func(t *testing.T) {
		w := seedAvailabilityWorld(t)

		uc := usecase.NewAvailabilityUseCase(&fakeUoW{store: w.store}, clk, laPaz, 5)
		first, err := uc.FreeSlots(ctx, w.tableID, monday)
		require.NoError(t, err)
		second, err := uc.FreeSlots(ctx, w.tableID, monday)
		require.NoError(t, err)
		if diff := cmp.Diff(hours(t, first), hours(t, second)); diff != "" {
			t.Errorf("FreeSlots mismatch (-first +second):\n%s", diff)
		}
	})

	t.Run("unknown table", func(t *testing.T) {
		w := seedAvailabilityWorld(t)

		uc := usecase.NewAvailabilityUseCase(&fakeUoW{store: w.store}, clk, laPaz, 5)
		_, err := uc.FreeSlots(ctx, uuid.New(), monday)
		assert.ErrorIs(t, err, errs.ErrTableNotFound)
	})

	t.Run("repository failure is not a missing table", func(t *testing.T) {
		w := seedAvailabilityWorld(t)
		w.store.tableFindErr = infra.WrapRepoErr("failed to find table", errors.New("connection reset"))

		uc := usecase.NewAvailabilityUseCase(&fakeUoW{store: w.store}, clk, laPaz, 5)
		_, err := uc.FreeSlots(ctx, w.tableID, monday)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrTableNotFound)
	})
}
