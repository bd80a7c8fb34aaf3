package repository

import (
	"context"
	"time"

	"billiar/internal/domain/reservation"
	"billiar/internal/domain/schedule"
	"billiar/internal/infra"
	"billiar/internal/infra/db"
	"billiar/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

const reservationColumns = `id, table_id, customer_id, date, starts_at, ends_at, estimated_cents, penalty_cents, status, created_at, updated_at`

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, pgconv.UUIDToPgtype(id))
	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewNotFoundErr("reservation not found")
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

const listLiveQuery = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE table_id = $1 AND date = $2 AND status IN ('PENDING', 'CONFIRMED')
ORDER BY starts_at
`

func (r *ReservationRepository) ListLiveByTableAndDate(ctx context.Context, tableID uuid.UUID, date time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, listLiveQuery, pgconv.UUIDToPgtype(tableID), dateToPg(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live reservations", err)
	}
	defer rows.Close()

	var reservations []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return reservations, nil
}

const hasLiveOverlapQuery = `
SELECT EXISTS (
    SELECT 1
    FROM reservations
    WHERE table_id = $1
      AND date = $2
      AND status IN ('PENDING', 'CONFIRMED')
      AND starts_at < $4
      AND $3 < ends_at
      AND ($5::uuid IS NULL OR id <> $5)
)
`

func (r *ReservationRepository) HasLiveOverlap(ctx context.Context, tableID uuid.UUID, date time.Time, start, end schedule.TimeOfDay, excludeID *uuid.UUID) (bool, error) {
	var exclude pgtype.UUID
	if excludeID != nil {
		exclude = pgconv.UUIDToPgtype(*excludeID)
	}

	var exists bool
	err := r.db.QueryRow(ctx, hasLiveOverlapQuery,
		pgconv.UUIDToPgtype(tableID),
		dateToPg(date),
		todToPg(start),
		todToPg(end),
		exclude,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

const insertReservationQuery = `
INSERT INTO reservations (id, table_id, customer_id, date, starts_at, ends_at, estimated_cents, penalty_cents, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) error {
	w := res.Window()
	_, err := r.db.Exec(ctx, insertReservationQuery,
		pgconv.UUIDToPgtype(res.ID()),
		pgconv.UUIDToPgtype(res.TableID()),
		pgconv.UUIDToPgtype(res.CustomerID()),
		dateToPg(w.Date()),
		todToPg(w.Start()),
		todToPg(w.End()),
		res.Estimated().Cents(),
		res.Penalty().Cents(),
		string(res.Status()),
		res.CreatedAt(),
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

const updateReservationQuery = `
UPDATE reservations
SET date = $2, starts_at = $3, ends_at = $4, penalty_cents = $5, status = $6, updated_at = $7
WHERE id = $1
`

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	w := res.Window()
	tag, err := r.db.Exec(ctx, updateReservationQuery,
		pgconv.UUIDToPgtype(res.ID()),
		dateToPg(w.Date()),
		todToPg(w.Start()),
		todToPg(w.End()),
		res.Penalty().Cents(),
		string(res.Status()),
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFoundErr("reservation not found")
	}
	return nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, tableID, customerID pgtype.UUID
		date                    pgtype.Date
		startsAt, endsAt        pgtype.Timestamptz
		estimatedCents          int64
		penaltyCents            int64
		status                  string
		createdAt, updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &tableID, &customerID, &date, &startsAt, &endsAt,
		&estimatedCents, &penaltyCents, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	window := reservation.ReconstructWindow(dateFromPg(date), todFromPg(startsAt), todFromPg(endsAt))
	return reservation.ReconstructReservation(
		pgconv.UUIDFromPgtype(id),
		pgconv.UUIDFromPgtype(tableID),
		pgconv.UUIDFromPgtype(customerID),
		window,
		reservation.Money(estimatedCents),
		reservation.Money(penaltyCents),
		reservation.Status(status),
		createdAt.Time,
		updatedAt.Time,
	), nil
}
