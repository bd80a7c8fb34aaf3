package usecase

import (
	"context"
	"time"

	"billiar/internal/domain/schedule"
	"billiar/internal/pkg/clock"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityUseCase interface {
	// FreeSlots enumerates the bookable one-hour slots for a table on a
	// calendar date, ascending. Pure read: calling it twice with no
	// intervening writes yields identical results.
	FreeSlots(ctx context.Context, tableID uuid.UUID, date time.Time) ([]schedule.TimeOfDay, error)
}

type availabilityUseCaseImpl struct {
	uow              shared.UnitOfWork
	clock            clock.Clock
	zone             *time.Location
	toleranceMinutes int
}

func NewAvailabilityUseCase(uow shared.UnitOfWork, clk clock.Clock, zone *time.Location, toleranceMinutes int) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		uow:              uow,
		clock:            clk,
		zone:             zone,
		toleranceMinutes: toleranceMinutes,
	}
}

func (a *availabilityUseCaseImpl) FreeSlots(ctx context.Context, tableID uuid.UUID, date time.Time) ([]schedule.TimeOfDay, error) {
	reads := a.uow.Reads()

	table, err := reads.Tables().FindByID(ctx, tableID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrTableNotFound)
	}

	today := schedule.CivilToday(a.clock.Now(), a.zone)
	if date.Before(today) {
		return []schedule.TimeOfDay{}, nil
	}

	turnos, err := reads.Turnos().ListByVenueAndWeekday(ctx, table.VenueID(), schedule.WeekdayOf(date), true)
	if err != nil {
		return nil, err
	}

	reservations, err := reads.Reservations().ListLiveByTableAndDate(ctx, tableID, date)
	if err != nil {
		return nil, err
	}

	blocks, err := reads.Blocks().ListByTableAndDate(ctx, tableID, date)
	if err != nil {
		return nil, err
	}

	isToday := date.Equal(today)
	var nowCivil schedule.TimeOfDay
	if isToday {
		_, nowCivil = schedule.CivilNow(a.clock.Now(), a.zone)
	}

	free := make([]schedule.TimeOfDay, 0, 24)
	for h := 0; h < 24; h++ {
		slotStart := schedule.SlotStart(h)
		slotEnd := schedule.SlotStart(h + 1)

		insideTurno := false
		for _, t := range turnos {
			if schedule.Contains(t.OpensAt(), t.ClosesAt(), slotStart, slotEnd) {
				insideTurno = true
				break
			}
		}
		if !insideTurno {
			continue
		}

		occupied := false
		for _, r := range reservations {
			w := r.Window()
			if schedule.Overlaps(slotStart, slotEnd, w.Start(), w.End()) {
				occupied = true
				break
			}
		}
		if occupied {
			continue
		}

		blocked := false
		for _, b := range blocks {
			if b.OverlapsWindow(slotStart, slotEnd) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		// A slot stays orderable up to toleranceMinutes past its
		// nominal start.
		if isToday {
			if h < nowCivil.Hour() {
				continue
			}
			if h == nowCivil.Hour() && nowCivil.Minute() > a.toleranceMinutes {
				continue
			}
		}

		free = append(free, slotStart)
	}

	return free, nil
}
