package api

import (
	"errors"
	"net/http"

	reqdto "billiar/internal/handler/dto/request"
	resdto "billiar/internal/handler/dto/response"
	"billiar/internal/handler/middleware"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RefundHandler struct {
	refundUseCase usecase.RefundUseCase
}

func NewRefundHandler(refundUseCase usecase.RefundUseCase) *RefundHandler {
	return &RefundHandler{
		refundUseCase: refundUseCase,
	}
}

// @Summary Pending refunds
// @Description List cancelled reservations still awaiting a refund
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PendingRefundResponse
// @Router /refunds [get]
func (h *RefundHandler) ListPending(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.refundUseCase.ListPending(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.PendingRefundResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromPendingRefundView(v)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Register refund
// @Description Mark a payment as refunded with a transfer proof
// @Tags refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body reqdto.RegisterRefundRequest true "Refund details"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /refunds/{id} [post]
func (h *RefundHandler) Register(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	var req reqdto.RegisterRefundRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.refundUseCase.Register(c.Request.Context(), usecase.RegisterRefundParams{
		PaymentID:    paymentID,
		OwnerID:      userID,
		AmountCents:  req.AmountCents,
		ProofDataURI: req.Proof,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPaymentMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, errs.ErrNotOwnerOfVenue):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You do not administer this venue",
			})
		case errors.Is(err, errs.ErrAlreadyInState):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment is already refunded",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
