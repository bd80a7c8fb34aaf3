package usecase

import (
	"context"

	"billiar/internal/domain/schedule"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase/shared"

	"github.com/google/uuid"
)

// TurnoInput is one candidate shift supplied by the venue owner.
type TurnoInput struct {
	OpensAt  string
	ClosesAt string
	Status   *string
}

// WeekSchedule maps every weekday to its turnos, Monday first, ordered
// by opening time.
type WeekSchedule map[schedule.Weekday][]*schedule.Turno

type ScheduleUseCase interface {
	ListWeek(ctx context.Context, venueID uuid.UUID, activeOnly bool) (WeekSchedule, error)
	ReplaceDays(ctx context.Context, venueID uuid.UUID, days map[schedule.Weekday][]TurnoInput, mode schedule.WriteMode) ([]*schedule.Turno, error)
	UpdateTurno(ctx context.Context, venueID, turnoID uuid.UUID, opensAt, closesAt *string, status *string) (*schedule.Turno, error)
	DeleteTurno(ctx context.Context, venueID, turnoID uuid.UUID) error
	SetTurnoState(ctx context.Context, venueID, turnoID uuid.UUID, status schedule.TurnoStatus) (*schedule.Turno, error)
}

type scheduleUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleUseCase(uow shared.UnitOfWork) ScheduleUseCase {
	return &scheduleUseCaseImpl{uow: uow}
}

func (s *scheduleUseCaseImpl) ListWeek(ctx context.Context, venueID uuid.UUID, activeOnly bool) (WeekSchedule, error) {
	turnos, err := s.uow.Reads().Turnos().ListByVenue(ctx, venueID, activeOnly)
	if err != nil {
		return nil, err
	}

	week := make(WeekSchedule, 7)
	for d := schedule.Monday; d <= schedule.Sunday; d++ {
		week[d] = []*schedule.Turno{}
	}
	for _, t := range turnos {
		week[t.Weekday()] = append(week[t.Weekday()], t)
	}
	return week, nil
}

// ReplaceDays validates every supplied day before touching storage,
// then applies the write mode inside one transaction.
func (s *scheduleUseCaseImpl) ReplaceDays(
	ctx context.Context,
	venueID uuid.UUID,
	days map[schedule.Weekday][]TurnoInput,
	mode schedule.WriteMode,
) ([]*schedule.Turno, error) {
	if !mode.IsValid() {
		return nil, errs.Wrapf(errs.ErrUnknownWriteMode, "mode %q", mode)
	}

	byDay := make(map[schedule.Weekday][]*schedule.Turno, len(days))
	for weekday, inputs := range days {
		turnos, err := buildDayTurnos(venueID, weekday, inputs)
		if err != nil {
			return nil, err
		}
		byDay[weekday] = turnos
	}

	var created []*schedule.Turno
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if mode == schedule.ReplaceAll {
			if err := tx.Turnos().DeleteByVenue(ctx, venueID); err != nil {
				return err
			}
		}

		for weekday, turnos := range byDay {
			switch mode {
			case schedule.Merge:
				existing, err := tx.Turnos().ListByVenueAndWeekday(ctx, venueID, weekday, false)
				if err != nil {
					return err
				}
				for _, n := range turnos {
					for _, e := range existing {
						if n.OverlapsTurno(e) {
							return errs.Mark(
								errs.Wrapf(errs.ErrTurnoOverlap, "%s: [%s,%s) vs stored [%s,%s)",
									weekday, n.OpensAt(), n.ClosesAt(), e.OpensAt(), e.ClosesAt()),
								errs.ErrTurnoOverlap,
							)
						}
					}
				}
			case schedule.ReplaceGivenDays:
				if err := tx.Turnos().DeleteByVenueAndWeekday(ctx, venueID, weekday); err != nil {
					return err
				}
			}

			for _, t := range turnos {
				if err := tx.Turnos().Insert(ctx, t); err != nil {
					return err
				}
			}
			created = append(created, turnos...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func buildDayTurnos(venueID uuid.UUID, weekday schedule.Weekday, inputs []TurnoInput) ([]*schedule.Turno, error) {
	turnos := make([]*schedule.Turno, 0, len(inputs))
	for _, in := range inputs {
		opens, err := schedule.ParseTimeOfDay(in.OpensAt)
		if err != nil {
			return nil, err
		}
		closes, err := schedule.ParseTimeOfDay(in.ClosesAt)
		if err != nil {
			return nil, err
		}

		status := schedule.TurnoActive
		if in.Status != nil {
			status = schedule.TurnoStatus(*in.Status)
		}

		t, err := schedule.NewTurno(venueID, weekday, opens, closes, status)
		if err != nil {
			return nil, err
		}
		turnos = append(turnos, t)
	}

	if err := schedule.ValidateDayTurnos(weekday, turnos); err != nil {
		return nil, err
	}
	return turnos, nil
}

func (s *scheduleUseCaseImpl) UpdateTurno(
	ctx context.Context,
	venueID, turnoID uuid.UUID,
	opensAt, closesAt *string,
	status *string,
) (*schedule.Turno, error) {
	var newOpens, newCloses *schedule.TimeOfDay
	if opensAt != nil {
		t, err := schedule.ParseTimeOfDay(*opensAt)
		if err != nil {
			return nil, err
		}
		newOpens = &t
	}
	if closesAt != nil {
		t, err := schedule.ParseTimeOfDay(*closesAt)
		if err != nil {
			return nil, err
		}
		newCloses = &t
	}
	var newStatus *schedule.TurnoStatus
	if status != nil {
		st := schedule.TurnoStatus(*status)
		newStatus = &st
	}

	var updated *schedule.Turno
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		turno, err := s.findVenueTurno(ctx, tx, venueID, turnoID)
		if err != nil {
			return err
		}

		if err := turno.Amend(newOpens, newCloses, newStatus); err != nil {
			return err
		}

		siblings, err := tx.Turnos().ListByVenueAndWeekday(ctx, venueID, turno.Weekday(), false)
		if err != nil {
			return err
		}
		for _, sib := range siblings {
			if sib.ID() == turno.ID() {
				continue
			}
			if turno.OverlapsTurno(sib) {
				return errs.Mark(
					errs.Wrapf(errs.ErrTurnoOverlap, "%s: [%s,%s) vs sibling [%s,%s)",
						turno.Weekday(), turno.OpensAt(), turno.ClosesAt(), sib.OpensAt(), sib.ClosesAt()),
					errs.ErrTurnoOverlap,
				)
			}
		}

		if err := tx.Turnos().Update(ctx, turno); err != nil {
			return err
		}
		updated = turno
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *scheduleUseCaseImpl) DeleteTurno(ctx context.Context, venueID, turnoID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		turno, err := s.findVenueTurno(ctx, tx, venueID, turnoID)
		if err != nil {
			return err
		}
		return tx.Turnos().Delete(ctx, turno.ID())
	})
}

func (s *scheduleUseCaseImpl) SetTurnoState(ctx context.Context, venueID, turnoID uuid.UUID, status schedule.TurnoStatus) (*schedule.Turno, error) {
	var updated *schedule.Turno
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		turno, err := s.findVenueTurno(ctx, tx, venueID, turnoID)
		if err != nil {
			return err
		}
		turno.SetStatus(status)
		if err := tx.Turnos().Update(ctx, turno); err != nil {
			return err
		}
		updated = turno
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// findVenueTurno resolves the turno and enforces that it belongs to the
// given venue; anything else is reported as not found.
func (s *scheduleUseCaseImpl) findVenueTurno(ctx context.Context, tx shared.Tx, venueID, turnoID uuid.UUID) (*schedule.Turno, error) {
	turno, err := tx.Turnos().FindByID(ctx, turnoID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrTurnoNotFound)
	}
	if turno.VenueID() != venueID {
		return nil, errs.Mark(
			errs.Wrapf(errs.ErrTurnoNotFound, "turno %s does not belong to venue %s", turnoID, venueID),
			errs.ErrTurnoNotFound,
		)
	}
	return turno, nil
}
