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

type VenueRepository struct {
	db db.DBTX
}

func NewVenueRepository(dbtx db.DBTX) *VenueRepository {
	return &VenueRepository{db: dbtx}
}

const findVenueByIDQuery = `
SELECT id, name, address, city, lat, lng, owner_id, discount_percent, status, created_at
FROM venues
WHERE id = $1
`

func (r *VenueRepository) FindByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error) {
	row := r.db.QueryRow(ctx, findVenueByIDQuery, pgconv.UUIDToPgtype(id))

	var (
		vID, ownerID    pgtype.UUID
		name, address   string
		city            string
		lat, lng        float64
		discountPercent float64
		status          string
		createdAt       pgtype.Timestamptz
	)
	if err := row.Scan(&vID, &name, &address, &city, &lat, &lng, &ownerID, &discountPercent, &status, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewNotFoundErr("venue not found")
		}
		return nil, infra.WrapRepoErr("failed to find venue", err)
	}

	return venue.ReconstructVenue(
		pgconv.UUIDFromPgtype(vID),
		name, address, city,
		lat, lng,
		pgconv.UUIDFromPgtype(ownerID),
		discountPercent,
		venue.Status(status),
		createdAt.Time,
	), nil
}

const isVenueAdminQuery = `
SELECT EXISTS (
    SELECT 1
    FROM tables t
    JOIN venues v ON v.id = t.venue_id
    WHERE t.id = $1 AND v.owner_id = $2
)
`

func (r *VenueRepository) IsVenueAdmin(ctx context.Context, userID, tableID uuid.UUID) (bool, error) {
	var isAdmin bool
	err := r.db.QueryRow(ctx, isVenueAdminQuery,
		pgconv.UUIDToPgtype(tableID), pgconv.UUIDToPgtype(userID),
	).Scan(&isAdmin)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check venue admin", err)
	}
	return isAdmin, nil
}
