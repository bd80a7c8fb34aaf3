package api

import (
	"context"
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

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create reservation
// @Description Book a table for a time window with a payment receipt
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
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

	receipt, err := h.reservationUseCase.Create(c.Request.Context(), usecase.CreateReservationParams{
		TableID:        req.TableID,
		CustomerID:     userID,
		Date:           date,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		ReceiptDataURI: req.Receipt,
	})
	if err != nil {
		h.respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReceiptView(receipt))
}

// @Summary Reschedule reservation
// @Description Move a live reservation to a new date and start, keeping its duration
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RescheduleReservationRequest true "New window"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) RescheduleReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.RescheduleReservationRequest
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

	receipt, err := h.reservationUseCase.Reschedule(c.Request.Context(), usecase.RescheduleParams{
		ReservationID: reservationID,
		CustomerID:    userID,
		NewDate:       date,
		NewStartsAt:   startsAt,
	})
	if err != nil {
		h.respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReceiptView(receipt))
}

// @Summary Accept reservation
// @Description Approve the payment and confirm a pending reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/accept [post]
func (h *ReservationHandler) AcceptReservation(c *gin.Context) {
	h.ownerDecision(c, h.reservationUseCase.Accept)
}

// @Summary Reject reservation
// @Description Reject the payment and the pending reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) RejectReservation(c *gin.Context) {
	h.ownerDecision(c, h.reservationUseCase.Reject)
}

// @Summary Finish reservation
// @Description Close out a reservation and release the table
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/finish [post]
func (h *ReservationHandler) FinishReservation(c *gin.Context) {
	h.ownerDecision(c, h.reservationUseCase.Finish)
}

// @Summary Cancel reservation
// @Description Cancel a live reservation, freezing the penalty computed now
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest true "Refund QR"
// @Success 200 {object} resdto.CancelResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.CancelReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reservationUseCase.Cancel(c.Request.Context(), usecase.CancelParams{
		ReservationID:   reservationID,
		RequesterID:     userID,
		RefundQRDataURI: req.RefundQR,
	})
	if err != nil {
		h.respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary My reservations
// @Description List the current customer's live reservations with advisory penalties
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) GetMyReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationUseCase.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.CustomerReservationResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromCustomerReservationView(v)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Pending requests
// @Description List pending reservation requests for the owner's venues
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OwnerRequestResponse
// @Router /reservations/requests [get]
func (h *ReservationHandler) GetRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationUseCase.ListRequests(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.OwnerRequestResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromOwnerRequestView(v)
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReservationHandler) ownerDecision(c *gin.Context, op func(ctx context.Context, reservationID, ownerID uuid.UUID) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := op(c.Request.Context(), reservationID, userID); err != nil {
		h.respondReservationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) respondReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "End time must be after start time",
		})
	case errors.Is(err, errs.ErrTableNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Table not found",
		})
	case errors.Is(err, errs.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
	case errors.Is(err, errs.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, errs.ErrVenueInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Venue is not accepting reservations",
		})
	case errors.Is(err, errs.ErrReservationConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Time window conflicts with an existing reservation",
		})
	case errors.Is(err, errs.ErrTableBlocked):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Table is blocked during the requested window",
		})
	case errors.Is(err, errs.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Reservation belongs to another customer",
		})
	case errors.Is(err, errs.ErrNotOwnerOfVenue):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You do not administer this venue",
		})
	case errors.Is(err, errs.ErrNotEditable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation is no longer editable",
		})
	case errors.Is(err, errs.ErrNotCancellable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation is no longer cancellable",
		})
	case errors.Is(err, errs.ErrAlreadyInState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Payment is already in the requested state",
		})
	case errors.Is(err, errs.ErrPaymentMissing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Reservation has no payment record",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
