package api

import (
	"errors"
	"net/http"

	"billiar/internal/domain/schedule"
	reqdto "billiar/internal/handler/dto/request"
	resdto "billiar/internal/handler/dto/response"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleUseCase usecase.ScheduleUseCase
}

func NewScheduleHandler(scheduleUseCase usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUseCase: scheduleUseCase,
	}
}

// @Summary Weekly schedule
// @Description Get a venue's business hours for the whole week
// @Tags schedule
// @Produce json
// @Param id path string true "Venue ID"
// @Param active query bool false "Only ACTIVE turnos"
// @Success 200 {object} resdto.WeekScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /venues/{id}/schedule [get]
func (h *ScheduleHandler) GetWeekSchedule(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	activeOnly := c.Query("active") == "true"

	week, err := h.scheduleUseCase.ListWeek(c.Request.Context(), venueID, activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekSchedule(week))
}

// @Summary Replace schedule
// @Description Rewrite a venue's business hours per the requested write mode
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.ReplaceScheduleRequest true "Schedule request"
// @Success 200 {array} resdto.TurnoResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venues/{id}/schedule [put]
func (h *ScheduleHandler) ReplaceSchedule(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	var req reqdto.ReplaceScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	days := make(map[schedule.Weekday][]usecase.TurnoInput, len(req.Days))
	for _, day := range req.Days {
		weekday, err := schedule.ParseWeekday(day.Weekday)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid weekday: " + day.Weekday,
			})
			return
		}
		inputs := make([]usecase.TurnoInput, len(day.Turnos))
		for i, span := range day.Turnos {
			inputs[i] = usecase.TurnoInput{
				OpensAt:  span.OpensAt,
				ClosesAt: span.ClosesAt,
				Status:   span.Status,
			}
		}
		days[weekday] = inputs
	}

	turnos, err := h.scheduleUseCase.ReplaceDays(c.Request.Context(), venueID, days, schedule.WriteMode(req.Mode))
	if err != nil {
		h.respondScheduleError(c, err)
		return
	}

	out := make([]*resdto.TurnoResponse, len(turnos))
	for i, t := range turnos {
		out[i] = resdto.FromTurno(t)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Update turno
// @Description Amend one turno's hours or state
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param turnoId path string true "Turno ID"
// @Param request body reqdto.UpdateTurnoRequest true "Turno update"
// @Success 200 {object} resdto.TurnoResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /venues/{id}/schedule/{turnoId} [patch]
func (h *ScheduleHandler) UpdateTurno(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}
	turnoID, err := uuid.Parse(c.Param("turnoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid turno ID format",
		})
		return
	}

	var req reqdto.UpdateTurnoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	turno, err := h.scheduleUseCase.UpdateTurno(c.Request.Context(), venueID, turnoID, req.OpensAt, req.ClosesAt, req.Status)
	if err != nil {
		h.respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTurno(turno))
}

// @Summary Delete turno
// @Tags schedule
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param turnoId path string true "Turno ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/schedule/{turnoId} [delete]
func (h *ScheduleHandler) DeleteTurno(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}
	turnoID, err := uuid.Parse(c.Param("turnoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid turno ID format",
		})
		return
	}

	if err := h.scheduleUseCase.DeleteTurno(c.Request.Context(), venueID, turnoID); err != nil {
		h.respondScheduleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Set turno state
// @Description Activate or deactivate a turno without touching its hours
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param turnoId path string true "Turno ID"
// @Param request body reqdto.SetTurnoStateRequest true "Target state"
// @Success 200 {object} resdto.TurnoResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/schedule/{turnoId}/state [patch]
func (h *ScheduleHandler) SetTurnoState(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}
	turnoID, err := uuid.Parse(c.Param("turnoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid turno ID format",
		})
		return
	}

	var req reqdto.SetTurnoStateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	turno, err := h.scheduleUseCase.SetTurnoState(c.Request.Context(), venueID, turnoID, schedule.TurnoStatus(req.Status))
	if err != nil {
		h.respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTurno(turno))
}

func (h *ScheduleHandler) respondScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidTimeFormat):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time format, expected HH:mm",
		})
	case errors.Is(err, errs.ErrUnknownWriteMode):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown schedule write mode",
		})
	case errors.Is(err, errs.ErrInvalidTurno):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Turno must open before it closes",
		})
	case errors.Is(err, errs.ErrOverlappingTurnos):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Turnos for a day must not overlap",
		})
	case errors.Is(err, errs.ErrTurnoOverlap):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Turno overlaps an existing turno",
		})
	case errors.Is(err, errs.ErrTurnoNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Turno not found",
		})
	case errors.Is(err, errs.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
