package repository

import (
	"context"

	"billiar/internal/domain/venue"
	"billiar/internal/infra"
	"billiar/internal/infra/db"
	"billiar/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TableRepository struct {
	db db.DBTX
}

func NewTableRepository(dbtx db.DBTX) *TableRepository {
	return &TableRepository{db: dbtx}
}

const findTableByIDQuery = `
SELECT id, venue_id, number, category, hourly_price_cents, status
FROM tables
WHERE id = $1
`

func (r *TableRepository) FindByID(ctx context.Context, id uuid.UUID) (*venue.Table, error) {
	row := r.db.QueryRow(ctx, findTableByIDQuery, pgconv.UUIDToPgtype(id))

	var (
		tID, venueID     pgtype.UUID
		number           int
		category, status string
		hourlyPriceCents int64
	)
	if err := row.Scan(&tID, &venueID, &number, &category, &hourlyPriceCents, &status); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewNotFoundErr("table not found")
		}
		return nil, infra.WrapRepoErr("failed to find table", err)
	}

	return venue.ReconstructTable(
		pgconv.UUIDFromPgtype(tID),
		pgconv.UUIDFromPgtype(venueID),
		number,
		venue.TableCategory(category),
		hourlyPriceCents,
		venue.TableStatus(status),
	), nil
}

// LockForBooking serializes booking attempts per table: the row lock is
// held until the surrounding transaction ends.
func (r *TableRepository) LockForBooking(ctx context.Context, id uuid.UUID) error {
	var locked pgtype.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM tables WHERE id = $1 FOR UPDATE`, pgconv.UUIDToPgtype(id)).Scan(&locked)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.NewNotFoundErr("table not found")
		}
		return infra.WrapRepoErr("failed to lock table", err)
	}
	return nil
}

func (r *TableRepository) SetStatus(ctx context.Context, id uuid.UUID, status venue.TableStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE tables SET status = $2, updated_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(id), string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update table status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFoundErr("table not found")
	}
	return nil
}
