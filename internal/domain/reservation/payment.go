package reservation

import (
	"time"

	"billiar/internal/pkg/errs"

	"github.com/google/uuid"
)

// Payment is coupled 1:1 with a Reservation. Approval tracks the owner's
// decision on the receipt; the refund sub-state is independent and only
// used after the reservation is cancelled.
type Payment struct {
	id             uuid.UUID
	reservationID  uuid.UUID
	customerID     uuid.UUID
	amountCents    Money
	receiptURL     string
	receiptAssetID string
	approval       PaymentApproval
	refundStatus   RefundStatus
	refundedCents  Money
	refundQRURL    string
	refundQRAsset  string
	refundProofURL string
	createdAt      time.Time
}

func NewPayment(reservationID, customerID uuid.UUID, amount Money, receiptURL, receiptAssetID string) *Payment {
	return &Payment{
		id:             uuid.New(),
		reservationID:  reservationID,
		customerID:     customerID,
		amountCents:    amount,
		receiptURL:     receiptURL,
		receiptAssetID: receiptAssetID,
		approval:       PaymentPending,
		refundStatus:   NotRefunded,
	}
}

func ReconstructPayment(
	id, reservationID, customerID uuid.UUID,
	amount Money,
	receiptURL, receiptAssetID string,
	approval PaymentApproval,
	refundStatus RefundStatus,
	refunded Money,
	refundQRURL, refundQRAsset, refundProofURL string,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:             id,
		reservationID:  reservationID,
		customerID:     customerID,
		amountCents:    amount,
		receiptURL:     receiptURL,
		receiptAssetID: receiptAssetID,
		approval:       approval,
		refundStatus:   refundStatus,
		refundedCents:  refunded,
		refundQRURL:    refundQRURL,
		refundQRAsset:  refundQRAsset,
		refundProofURL: refundProofURL,
		createdAt:      createdAt,
	}
}

func (p *Payment) ID() uuid.UUID              { return p.id }
func (p *Payment) ReservationID() uuid.UUID   { return p.reservationID }
func (p *Payment) CustomerID() uuid.UUID      { return p.customerID }
func (p *Payment) Amount() Money              { return p.amountCents }
func (p *Payment) ReceiptURL() string         { return p.receiptURL }
func (p *Payment) ReceiptAssetID() string     { return p.receiptAssetID }
func (p *Payment) Approval() PaymentApproval  { return p.approval }
func (p *Payment) RefundStatus() RefundStatus { return p.refundStatus }
func (p *Payment) Refunded() Money            { return p.refundedCents }
func (p *Payment) RefundQRURL() string        { return p.refundQRURL }
func (p *Payment) RefundQRAssetID() string    { return p.refundQRAsset }
func (p *Payment) RefundProofURL() string     { return p.refundProofURL }
func (p *Payment) CreatedAt() time.Time       { return p.createdAt }

// Approve is idempotency-guarded: re-approving an APPROVED payment (or
// approving a REJECTED one) fails instead of silently succeeding.
func (p *Payment) Approve() error {
	if p.approval == PaymentApproved {
		return errs.Mark(
			errs.Wrapf(errs.ErrAlreadyInState, "payment %s already approved", p.id),
			errs.ErrAlreadyInState,
		)
	}
	if p.approval == PaymentRejected {
		return errs.Mark(
			errs.Wrapf(errs.ErrAlreadyInState, "payment %s already rejected", p.id),
			errs.ErrAlreadyInState,
		)
	}
	p.approval = PaymentApproved
	return nil
}

func (p *Payment) RejectApproval() error {
	if p.approval == PaymentRejected {
		return errs.Mark(
			errs.Wrapf(errs.ErrAlreadyInState, "payment %s already rejected", p.id),
			errs.ErrAlreadyInState,
		)
	}
	if p.approval == PaymentApproved {
		return errs.Mark(
			errs.Wrapf(errs.ErrAlreadyInState, "payment %s already approved", p.id),
			errs.ErrAlreadyInState,
		)
	}
	p.approval = PaymentRejected
	return nil
}

// AttachRefundQR records the customer's refund QR at cancel time; the
// approval state is left untouched.
func (p *Payment) AttachRefundQR(url, assetID string) {
	p.refundQRURL = url
	p.refundQRAsset = assetID
}

// MarkRefunded completes the refund exactly once.
func (p *Payment) MarkRefunded(amount Money, proofURL string) error {
	if p.refundStatus == Refunded {
		return errs.Mark(
			errs.Wrapf(errs.ErrAlreadyInState, "payment %s already refunded", p.id),
			errs.ErrAlreadyInState,
		)
	}
	p.refundStatus = Refunded
	p.refundedCents = amount
	p.refundProofURL = proofURL
	return nil
}
