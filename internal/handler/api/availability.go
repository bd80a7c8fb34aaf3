package api

import (
	"errors"
	"net/http"

	"billiar/internal/domain/schedule"
	resdto "billiar/internal/handler/dto/response"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Free slots for a table
// @Description List the bookable one-hour slots for a table on a date
// @Tags availability
// @Produce json
// @Param id path string true "Table ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tables/{id}/slots [get]
func (h *AvailabilityHandler) GetFreeSlots(c *gin.Context) {
	tableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid table ID format",
		})
		return
	}

	dateStr := c.Query("date")
	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	slots, err := h.availabilityUseCase.FreeSlots(c.Request.Context(), tableID, date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTableNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Table not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(dateStr, slots))
}
