package readstore

import (
	"context"
	"time"

	"billiar/internal/domain/schedule"
	"billiar/internal/infra"
	"billiar/internal/infra/db"
	"billiar/internal/pkg/pgconv"
	"billiar/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationReadStore serves the joined listing shapes behind
// shared.ReservationViews. All queries are read-only.
type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const receiptByIDQuery = `
SELECT r.id, v.name, v.address, t.number, t.category,
       r.date, r.starts_at, r.ends_at,
       r.estimated_cents, v.discount_percent, r.status,
       p.approval, p.receipt_url, r.created_at
FROM reservations r
JOIN tables t ON t.id = r.table_id
JOIN venues v ON v.id = t.venue_id
JOIN payments p ON p.reservation_id = r.id
WHERE r.id = $1
`

func (s *ReservationReadStore) ReceiptByID(ctx context.Context, reservationID uuid.UUID) (*shared.ReceiptView, error) {
	var (
		id                 pgtype.UUID
		venueName, address string
		number             int
		category           string
		date               pgtype.Date
		startsAt, endsAt   pgtype.Timestamptz
		amountCents        int64
		discountPercent    float64
		status, approval   string
		receiptURL         string
		createdAt          pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, receiptByIDQuery, pgconv.UUIDToPgtype(reservationID)).Scan(
		&id, &venueName, &address, &number, &category,
		&date, &startsAt, &endsAt,
		&amountCents, &discountPercent, &status,
		&approval, &receiptURL, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewNotFoundErr("reservation not found")
		}
		return nil, infra.WrapRepoErr("failed to load receipt", err)
	}

	start := schedule.FromAnchor(startsAt.Time)
	end := schedule.FromAnchor(endsAt.Time)

	return &shared.ReceiptView{
		ReservationID:   pgconv.UUIDFromPgtype(id),
		VenueName:       venueName,
		VenueAddress:    address,
		TableNumber:     number,
		TableCategory:   category,
		Date:            asDate(date),
		StartsAt:        start.String(),
		EndsAt:          end.String(),
		DurationHours:   end.Sub(start).Hours(),
		AmountCents:     amountCents,
		DiscountPercent: discountPercent,
		Status:          status,
		PaymentApproval: approval,
		ReceiptURL:      receiptURL,
		CreatedAt:       createdAt.Time,
	}, nil
}

const customerReservationsQuery = `
SELECT r.id, r.table_id, v.name, t.number, t.category,
       r.date, r.starts_at, r.ends_at,
       p.amount_cents, r.status, u.phone
FROM reservations r
JOIN tables t ON t.id = r.table_id
JOIN venues v ON v.id = t.venue_id
JOIN users u ON u.id = v.owner_id
JOIN payments p ON p.reservation_id = r.id
WHERE r.customer_id = $1 AND r.status IN ('PENDING', 'CONFIRMED')
ORDER BY r.date, r.starts_at
`

func (s *ReservationReadStore) CustomerReservations(ctx context.Context, customerID uuid.UUID) ([]*shared.CustomerReservationView, error) {
	rows, err := s.db.Query(ctx, customerReservationsQuery, pgconv.UUIDToPgtype(customerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer reservations", err)
	}
	defer rows.Close()

	var views []*shared.CustomerReservationView
	for rows.Next() {
		var (
			id, tableID      pgtype.UUID
			venueName        string
			number           int
			category         string
			date             pgtype.Date
			startsAt, endsAt pgtype.Timestamptz
			paidCents        int64
			status           string
			ownerPhone       pgtype.Text
		)
		if err := rows.Scan(&id, &tableID, &venueName, &number, &category,
			&date, &startsAt, &endsAt, &paidCents, &status, &ownerPhone); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer reservation", err)
		}

		start := schedule.FromAnchor(startsAt.Time)
		end := schedule.FromAnchor(endsAt.Time)

		views = append(views, &shared.CustomerReservationView{
			ReservationID: pgconv.UUIDFromPgtype(id),
			TableID:       pgconv.UUIDFromPgtype(tableID),
			VenueName:     venueName,
			TableNumber:   number,
			TableCategory: category,
			Date:          asDate(date),
			StartsAt:      start.String(),
			EndsAt:        end.String(),
			DurationHours: end.Sub(start).Hours(),
			PaidCents:     paidCents,
			Status:        status,
			OwnerPhone:    ownerPhone.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer reservations", err)
	}
	return views, nil
}

const ownerRequestsQuery = `
SELECT r.id, v.name, t.number, u.name,
       r.date, r.starts_at, r.ends_at,
       p.amount_cents, r.status, p.receipt_url
FROM reservations r
JOIN tables t ON t.id = r.table_id
JOIN venues v ON v.id = t.venue_id
JOIN users u ON u.id = r.customer_id
JOIN payments p ON p.reservation_id = r.id
WHERE v.owner_id = $1 AND r.status = 'PENDING' AND p.approval = 'PENDING'
ORDER BY r.date, r.starts_at, r.id
`

func (s *ReservationReadStore) OwnerRequests(ctx context.Context, ownerID uuid.UUID) ([]*shared.OwnerRequestView, error) {
	rows, err := s.db.Query(ctx, ownerRequestsQuery, pgconv.UUIDToPgtype(ownerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner requests", err)
	}
	defer rows.Close()

	var views []*shared.OwnerRequestView
	for rows.Next() {
		var (
			id               pgtype.UUID
			venueName        string
			number           int
			customerName     string
			date             pgtype.Date
			startsAt, endsAt pgtype.Timestamptz
			paidCents        int64
			status           string
			receiptURL       string
		)
		if err := rows.Scan(&id, &venueName, &number, &customerName,
			&date, &startsAt, &endsAt, &paidCents, &status, &receiptURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan owner request", err)
		}

		start := schedule.FromAnchor(startsAt.Time)
		end := schedule.FromAnchor(endsAt.Time)

		views = append(views, &shared.OwnerRequestView{
			ReservationID: pgconv.UUIDFromPgtype(id),
			VenueName:     venueName,
			TableNumber:   number,
			CustomerName:  customerName,
			Date:          asDate(date),
			StartsAt:      start.String(),
			DurationHours: end.Sub(start).Hours(),
			PaidCents:     paidCents,
			Status:        status,
			ReceiptURL:    receiptURL,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate owner requests", err)
	}
	return views, nil
}

const pendingRefundsQuery = `
SELECT r.id, p.id, v.name, t.number, u.name,
       r.date, r.starts_at,
       p.amount_cents, r.penalty_cents, p.refund_qr_url
FROM payments p
JOIN reservations r ON r.id = p.reservation_id
JOIN tables t ON t.id = r.table_id
JOIN venues v ON v.id = t.venue_id
JOIN users u ON u.id = r.customer_id
WHERE v.owner_id = $1
  AND r.status = 'CANCELLED'
  AND p.approval = 'APPROVED'
  AND p.refund_status = 'NOT_REFUNDED'
ORDER BY r.updated_at
`

func (s *ReservationReadStore) PendingRefunds(ctx context.Context, ownerID uuid.UUID) ([]*shared.PendingRefundView, error) {
	rows, err := s.db.Query(ctx, pendingRefundsQuery, pgconv.UUIDToPgtype(ownerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending refunds", err)
	}
	defer rows.Close()

	var views []*shared.PendingRefundView
	for rows.Next() {
		var (
			reservationID, paymentID pgtype.UUID
			venueName                string
			number                   int
			customerName             string
			date                     pgtype.Date
			startsAt                 pgtype.Timestamptz
			paidCents, penaltyCents  int64
			refundQRURL              pgtype.Text
		)
		if err := rows.Scan(&reservationID, &paymentID, &venueName, &number, &customerName,
			&date, &startsAt, &paidCents, &penaltyCents, &refundQRURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending refund", err)
		}

		views = append(views, &shared.PendingRefundView{
			ReservationID: pgconv.UUIDFromPgtype(reservationID),
			PaymentID:     pgconv.UUIDFromPgtype(paymentID),
			VenueName:     venueName,
			TableNumber:   number,
			CustomerName:  customerName,
			Date:          asDate(date),
			StartsAt:      schedule.FromAnchor(startsAt.Time).String(),
			PaidCents:     paidCents,
			PenaltyCents:  penaltyCents,
			RefundCents:   paidCents - penaltyCents,
			RefundQRURL:   refundQRURL.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending refunds", err)
	}
	return views, nil
}

func asDate(pd pgtype.Date) time.Time {
	return time.Date(pd.Time.Year(), pd.Time.Month(), pd.Time.Day(), 0, 0, 0, 0, time.UTC)
}
