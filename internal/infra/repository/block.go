package repository

import (
	"context"
	"time"

	"billiar/internal/domain/venue"
	"billiar/internal/infra"
	"billiar/internal/infra/db"
	"billiar/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BlockRepository struct {
	db db.DBTX
}

func NewBlockRepository(dbtx db.DBTX) *BlockRepository {
	return &BlockRepository{db: dbtx}
}

const findBlockByIDQuery = `
SELECT id, table_id, date, starts_at, ends_at
FROM table_blocks
WHERE id = $1
`

func (r *BlockRepository) FindByID(ctx context.Context, id uuid.UUID) (*venue.Block, error) {
	row := r.db.QueryRow(ctx, findBlockByIDQuery, pgconv.UUIDToPgtype(id))

	var (
		bID, tableID     pgtype.UUID
		date             pgtype.Date
		startsAt, endsAt pgtype.Timestamptz
	)
	if err := row.Scan(&bID, &tableID, &date, &startsAt, &endsAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewNotFoundErr("block not found")
		}
		return nil, infra.WrapRepoErr("failed to find block", err)
	}

	return venue.ReconstructBlock(
		pgconv.UUIDFromPgtype(bID),
		pgconv.UUIDFromPgtype(tableID),
		dateFromPg(date),
		todFromPg(startsAt),
		todFromPg(endsAt),
	), nil
}

const listBlocksQuery = `
SELECT id, table_id, date, starts_at, ends_at
FROM table_blocks
WHERE table_id = $1 AND date = $2
ORDER BY starts_at
`

func (r *BlockRepository) ListByTableAndDate(ctx context.Context, tableID uuid.UUID, date time.Time) ([]*venue.Block, error) {
	rows, err := r.db.Query(ctx, listBlocksQuery, pgconv.UUIDToPgtype(tableID), dateToPg(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocks", err)
	}
	defer rows.Close()

	var blocks []*venue.Block
	for rows.Next() {
		var (
			bID, tID         pgtype.UUID
			d                pgtype.Date
			startsAt, endsAt pgtype.Timestamptz
		)
		if err := rows.Scan(&bID, &tID, &d, &startsAt, &endsAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan block", err)
		}
		blocks = append(blocks, venue.ReconstructBlock(
			pgconv.UUIDFromPgtype(bID),
			pgconv.UUIDFromPgtype(tID),
			dateFromPg(d),
			todFromPg(startsAt),
			todFromPg(endsAt),
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocks", err)
	}
	return blocks, nil
}

const insertBlockQuery = `
INSERT INTO table_blocks (id, table_id, date, starts_at, ends_at)
VALUES ($1, $2, $3, $4, $5)
`

func (r *BlockRepository) Insert(ctx context.Context, b *venue.Block) error {
	_, err := r.db.Exec(ctx, insertBlockQuery,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.TableID()),
		dateToPg(b.Date()),
		todToPg(b.StartsAt()),
		todToPg(b.EndsAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert block", err)
	}
	return nil
}

func (r *BlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM table_blocks WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete block", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFoundErr("block not found")
	}
	return nil
}
