package request

import (
	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	TableID  uuid.UUID `json:"table_id" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	StartsAt string    `json:"starts_at" binding:"required"`
	EndsAt   string    `json:"ends_at" binding:"required"`
	Receipt  string    `json:"receipt" binding:"required"`
}

type RescheduleReservationRequest struct {
	Date     string `json:"date" binding:"required"`
	StartsAt string `json:"starts_at" binding:"required"`
}

type CancelReservationRequest struct {
	RefundQR string `json:"refund_qr" binding:"required"`
}

type RegisterRefundRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required"`
	Proof       string `json:"proof" binding:"required"`
}
