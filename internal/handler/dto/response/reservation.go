package response

import (
	"time"

	"billiar/internal/usecase"
	"billiar/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReceiptResponse struct {
	ReservationID   uuid.UUID `json:"reservation_id"`
	VenueName       string    `json:"venue_name"`
	VenueAddress    string    `json:"venue_address"`
	TableNumber     int       `json:"table_number"`
	TableCategory   string    `json:"table_category"`
	Date            string    `json:"date"`
	StartsAt        string    `json:"starts_at"`
	EndsAt          string    `json:"ends_at"`
	DurationHours   float64   `json:"duration_hours"`
	AmountCents     int64     `json:"amount_cents"`
	DiscountPercent float64   `json:"discount_percent"`
	Status          string    `json:"status"`
	PaymentApproval string    `json:"payment_approval"`
	ReceiptURL      string    `json:"receipt_url"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromReceiptView(v *shared.ReceiptView) *ReceiptResponse {
	return &ReceiptResponse{
		ReservationID:   v.ReservationID,
		VenueName:       v.VenueName,
		VenueAddress:    v.VenueAddress,
		TableNumber:     v.TableNumber,
		TableCategory:   v.TableCategory,
		Date:            v.Date.Format("2006-01-02"),
		StartsAt:        v.StartsAt,
		EndsAt:          v.EndsAt,
		DurationHours:   v.DurationHours,
		AmountCents:     v.AmountCents,
		DiscountPercent: v.DiscountPercent,
		Status:          v.Status,
		PaymentApproval: v.PaymentApproval,
		ReceiptURL:      v.ReceiptURL,
		CreatedAt:       v.CreatedAt,
	}
}

type CustomerReservationResponse struct {
	ReservationID           uuid.UUID `json:"reservation_id"`
	TableID                 uuid.UUID `json:"table_id"`
	VenueName               string    `json:"venue_name"`
	TableNumber             int       `json:"table_number"`
	TableCategory           string    `json:"table_category"`
	Date                    string    `json:"date"`
	StartsAt                string    `json:"starts_at"`
	EndsAt                  string    `json:"ends_at"`
	DurationHours           float64   `json:"duration_hours"`
	PaidCents               int64     `json:"paid_cents"`
	Status                  string    `json:"status"`
	OwnerPhone              string    `json:"owner_phone,omitempty"`
	SuggestedPenaltyPercent int       `json:"suggested_penalty_percent"`
	SuggestedRefundCents    int64     `json:"suggested_refund_cents"`
}

func FromCustomerReservationView(v *shared.CustomerReservationView) *CustomerReservationResponse {
	return &CustomerReservationResponse{
		ReservationID:           v.ReservationID,
		TableID:                 v.TableID,
		VenueName:               v.VenueName,
		TableNumber:             v.TableNumber,
		TableCategory:           v.TableCategory,
		Date:                    v.Date.Format("2006-01-02"),
		StartsAt:                v.StartsAt,
		EndsAt:                  v.EndsAt,
		DurationHours:           v.DurationHours,
		PaidCents:               v.PaidCents,
		Status:                  v.Status,
		OwnerPhone:              v.OwnerPhone,
		SuggestedPenaltyPercent: v.SuggestedPenaltyPercent,
		SuggestedRefundCents:    v.SuggestedRefundCents,
	}
}

type OwnerRequestResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	VenueName     string    `json:"venue_name"`
	TableNumber   int       `json:"table_number"`
	CustomerName  string    `json:"customer_name"`
	Date          string    `json:"date"`
	StartsAt      string    `json:"starts_at"`
	DurationHours float64   `json:"duration_hours"`
	PaidCents     int64     `json:"paid_cents"`
	Status        string    `json:"status"`
	ReceiptURL    string    `json:"receipt_url"`
}

func FromOwnerRequestView(v *shared.OwnerRequestView) *OwnerRequestResponse {
	return &OwnerRequestResponse{
		ReservationID: v.ReservationID,
		VenueName:     v.VenueName,
		TableNumber:   v.TableNumber,
		CustomerName:  v.CustomerName,
		Date:          v.Date.Format("2006-01-02"),
		StartsAt:      v.StartsAt,
		DurationHours: v.DurationHours,
		PaidCents:     v.PaidCents,
		Status:        v.Status,
		ReceiptURL:    v.ReceiptURL,
	}
}

type CancelResponse struct {
	ReservationID  uuid.UUID `json:"reservation_id"`
	PenaltyPercent int       `json:"penalty_percent"`
	PenaltyCents   int64     `json:"penalty_cents"`
	RefundCents    int64     `json:"refund_cents"`
}

func FromCancelResult(r *usecase.CancelResult) *CancelResponse {
	return &CancelResponse{
		ReservationID:  r.ReservationID,
		PenaltyPercent: r.PenaltyPercent,
		PenaltyCents:   r.PenaltyCents,
		RefundCents:    r.RefundCents,
	}
}

type PendingRefundResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	PaymentID     uuid.UUID `json:"payment_id"`
	VenueName     string    `json:"venue_name"`
	TableNumber   int       `json:"table_number"`
	CustomerName  string    `json:"customer_name"`
	Date          string    `json:"date"`
	StartsAt      string    `json:"starts_at"`
	PaidCents     int64     `json:"paid_cents"`
	PenaltyCents  int64     `json:"penalty_cents"`
	RefundCents   int64     `json:"refund_cents"`
	RefundQRURL   string    `json:"refund_qr_url,omitempty"`
}

func FromPendingRefundView(v *shared.PendingRefundView) *PendingRefundResponse {
	return &PendingRefundResponse{
		ReservationID: v.ReservationID,
		PaymentID:     v.PaymentID,
		VenueName:     v.VenueName,
		TableNumber:   v.TableNumber,
		CustomerName:  v.CustomerName,
		Date:          v.Date.Format("2006-01-02"),
		StartsAt:      v.StartsAt,
		PaidCents:     v.PaidCents,
		PenaltyCents:  v.PenaltyCents,
		RefundCents:   v.RefundCents,
		RefundQRURL:   v.RefundQRURL,
	}
}
