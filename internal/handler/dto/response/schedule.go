package response

import (
	"billiar/internal/domain/schedule"
	"billiar/internal/domain/venue"
	"billiar/internal/usecase"

	"github.com/google/uuid"
)

type TurnoResponse struct {
	ID       uuid.UUID `json:"id"`
	Weekday  string    `json:"weekday"`
	OpensAt  string    `json:"opens_at"`
	ClosesAt string    `json:"closes_at"`
	Status   string    `json:"status"`
}

func FromTurno(t *schedule.Turno) *TurnoResponse {
	return &TurnoResponse{
		ID:       t.ID(),
		Weekday:  t.Weekday().String(),
		OpensAt:  t.OpensAt().String(),
		ClosesAt: t.ClosesAt().String(),
		Status:   string(t.Status()),
	}
}

type WeekScheduleResponse map[string][]*TurnoResponse

func FromWeekSchedule(week usecase.WeekSchedule) WeekScheduleResponse {
	out := make(WeekScheduleResponse, len(week))
	for weekday, turnos := range week {
		items := make([]*TurnoResponse, len(turnos))
		for i, t := range turnos {
			items[i] = FromTurno(t)
		}
		out[weekday.String()] = items
	}
	return out
}

type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

func FromSlots(date string, slots []schedule.TimeOfDay) *SlotsResponse {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return &SlotsResponse{Date: date, Slots: out}
}

type BlockResponse struct {
	ID       uuid.UUID `json:"id"`
	TableID  uuid.UUID `json:"table_id"`
	Date     string    `json:"date"`
	StartsAt string    `json:"starts_at"`
	EndsAt   string    `json:"ends_at"`
}

func FromBlock(b *venue.Block) *BlockResponse {
	return &BlockResponse{
		ID:       b.ID(),
		TableID:  b.TableID(),
		Date:     schedule.FormatDate(b.Date()),
		StartsAt: b.StartsAt().String(),
		EndsAt:   b.EndsAt().String(),
	}
}
