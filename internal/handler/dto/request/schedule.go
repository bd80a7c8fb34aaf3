package request

type DayTurnosRequest struct {
	Weekday string      `json:"weekday" binding:"required"`
	Turnos  []TurnoSpan `json:"turnos" binding:"required"`
}

type TurnoSpan struct {
	OpensAt  string  `json:"opens_at" binding:"required"`
	ClosesAt string  `json:"closes_at" binding:"required"`
	Status   *string `json:"status,omitempty"`
}

type ReplaceScheduleRequest struct {
	Mode string             `json:"mode" binding:"required,oneof=REPLACE_GIVEN_DAYS REPLACE_ALL MERGE"`
	Days []DayTurnosRequest `json:"days" binding:"required"`
}

type UpdateTurnoRequest struct {
	OpensAt  *string `json:"opens_at,omitempty"`
	ClosesAt *string `json:"closes_at,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type SetTurnoStateRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

type CreateBlockRequest struct {
	Date     string `json:"date" binding:"required"`
	StartsAt string `json:"starts_at" binding:"required"`
	EndsAt   string `json:"ends_at" binding:"required"`
}
