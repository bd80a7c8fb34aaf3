package repository

import (
	"context"

	"billiar/internal/domain/reservation"
	"billiar/internal/infra"
	"billiar/internal/infra/db"
	"billiar/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

const paymentColumns = `id, reservation_id, customer_id, amount_cents, receipt_url, receipt_asset_id, approval, refund_status, refunded_cents, refund_qr_url, refund_qr_asset_id, refund_proof_url, created_at`

func (r *PaymentRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*reservation.Payment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE reservation_id = $1`,
		pgconv.UUIDToPgtype(reservationID))
	return scanPaymentOrNotFound(row)
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Payment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, pgconv.UUIDToPgtype(id))
	return scanPaymentOrNotFound(row)
}

const insertPaymentQuery = `
INSERT INTO payments (id, reservation_id, customer_id, amount_cents, receipt_url, receipt_asset_id, approval, refund_status, refunded_cents, refund_qr_url, refund_qr_asset_id, refund_proof_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

func (r *PaymentRepository) Insert(ctx context.Context, p *reservation.Payment) error {
	_, err := r.db.Exec(ctx, insertPaymentQuery,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDToPgtype(p.ReservationID()),
		pgconv.UUIDToPgtype(p.CustomerID()),
		p.Amount().Cents(),
		p.ReceiptURL(),
		p.ReceiptAssetID(),
		string(p.Approval()),
		string(p.RefundStatus()),
		p.Refunded().Cents(),
		p.RefundQRURL(),
		p.RefundQRAssetID(),
		p.RefundProofURL(),
		p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert payment", err)
	}
	return nil
}

const updatePaymentQuery = `
UPDATE payments
SET approval = $2, refund_status = $3, refunded_cents = $4, refund_qr_url = $5, refund_qr_asset_id = $6, refund_proof_url = $7
WHERE id = $1
`

func (r *PaymentRepository) Update(ctx context.Context, p *reservation.Payment) error {
	tag, err := r.db.Exec(ctx, updatePaymentQuery,
		pgconv.UUIDToPgtype(p.ID()),
		string(p.Approval()),
		string(p.RefundStatus()),
		p.Refunded().Cents(),
		p.RefundQRURL(),
		p.RefundQRAssetID(),
		p.RefundProofURL(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFoundErr("payment not found")
	}
	return nil
}

func scanPaymentOrNotFound(row pgx.Row) (*reservation.Payment, error) {
	var (
		id, reservationID, customerID pgtype.UUID
		amountCents, refundedCents    int64
		receiptURL, receiptAssetID    string
		approval, refundStatus        string
		refundQRURL, refundQRAsset    pgtype.Text
		refundProofURL                pgtype.Text
		createdAt                     pgtype.Timestamptz
	)
	err := row.Scan(&id, &reservationID, &customerID, &amountCents,
		&receiptURL, &receiptAssetID, &approval, &refundStatus, &refundedCents,
		&refundQRURL, &refundQRAsset, &refundProofURL, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewNotFoundErr("payment not found")
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}

	return reservation.ReconstructPayment(
		pgconv.UUIDFromPgtype(id),
		pgconv.UUIDFromPgtype(reservationID),
		pgconv.UUIDFromPgtype(customerID),
		reservation.Money(amountCents),
		receiptURL,
		receiptAssetID,
		reservation.PaymentApproval(approval),
		reservation.RefundStatus(refundStatus),
		reservation.Money(refundedCents),
		refundQRURL.String,
		refundQRAsset.String,
		refundProofURL.String,
		createdAt.Time,
	), nil
}
