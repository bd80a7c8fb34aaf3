package api

import (
	"errors"
	"net/http"

	"billiar/internal/domain/schedule"
	reqdto "billiar/internal/handler/dto/request"
	resdto "billiar/internal/handler/dto/response"
	"billiar/internal/handler/middleware"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BlockHandler struct {
	blockUseCase usecase.BlockUseCase
}

func NewBlockHandler(blockUseCase usecase.BlockUseCase) *BlockHandler {
	return &BlockHandler{
		blockUseCase: blockUseCase,
	}
}

// @Summary List blocks
// @Description List a table's maintenance blocks for a date
// @Tags blocks
// @Produce json
// @Param id path string true "Table ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BlockResponse
// @Failure 400 {object} map[string]string
// @Router /tables/{id}/blocks [get]
func (h *BlockHandler) ListBlocks(c *gin.Context) {
	tableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid table ID format",
		})
		return
	}

	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	blocks, err := h.blockUseCase.List(c.Request.Context(), tableID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.BlockResponse, len(blocks))
	for i, b := range blocks {
		out[i] = resdto.FromBlock(b)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Create block
// @Description Block a table's window against bookings
// @Tags blocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Param request body reqdto.CreateBlockRequest true "Block window"
// @Success 201 {object} resdto.BlockResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /tables/{id}/blocks [post]
func (h *BlockHandler) CreateBlock(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	tableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid table ID format",
		})
		return
	}

	var req reqdto.CreateBlockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}
	startsAt, err := schedule.ParseTimeOfDay(req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid starts_at format, expected HH:mm",
		})
		return
	}
	endsAt, err := schedule.ParseTimeOfDay(req.EndsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ends_at format, expected HH:mm",
		})
		return
	}

	block, err := h.blockUseCase.Create(c.Request.Context(), usecase.CreateBlockParams{
		TableID:  tableID,
		OwnerID:  userID,
		Date:     date,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	})
	if err != nil {
		h.respondBlockError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBlock(block))
}

// @Summary Delete block
// @Tags blocks
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blocks/{id} [delete]
func (h *BlockHandler) DeleteBlock(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	blockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid block ID format",
		})
		return
	}

	if err := h.blockUseCase.Delete(c.Request.Context(), blockID, userID); err != nil {
		h.respondBlockError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BlockHandler) respondBlockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "End time must be after start time",
		})
	case errors.Is(err, errs.ErrNotOwnerOfVenue):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not administer this venue",
		})
	case errors.Is(err, errs.ErrTableNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Table not found",
		})
	case errors.Is(err, errs.ErrBlockNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Block not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
