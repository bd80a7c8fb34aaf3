package repository

import (
	"context"

	"billiar/internal/domain/schedule"
	"billiar/internal/infra"
	"billiar/internal/infra/db"
	"billiar/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TurnoRepository struct {
	db db.DBTX
}

func NewTurnoRepository(dbtx db.DBTX) *TurnoRepository {
	return &TurnoRepository{db: dbtx}
}

const turnoColumns = `id, venue_id, weekday, opens_at, closes_at, status, created_at`

func (r *TurnoRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Turno, error) {
	row := r.db.QueryRow(ctx, `SELECT `+turnoColumns+` FROM venue_hours WHERE id = $1`, pgconv.UUIDToPgtype(id))
	t, err := scanTurno(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewNotFoundErr("turno not found")
		}
		return nil, infra.WrapRepoErr("failed to find turno", err)
	}
	return t, nil
}

func (r *TurnoRepository) ListByVenue(ctx context.Context, venueID uuid.UUID, activeOnly bool) ([]*schedule.Turno, error) {
	query := `SELECT ` + turnoColumns + ` FROM venue_hours WHERE venue_id = $1`
	if activeOnly {
		query += ` AND status = 'ACTIVE'`
	}
	query += ` ORDER BY weekday, opens_at`

	rows, err := r.db.Query(ctx, query, pgconv.UUIDToPgtype(venueID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list turnos", err)
	}
	defer rows.Close()

	return collectTurnos(rows)
}

func (r *TurnoRepository) ListByVenueAndWeekday(ctx context.Context, venueID uuid.UUID, weekday schedule.Weekday, activeOnly bool) ([]*schedule.Turno, error) {
	query := `SELECT ` + turnoColumns + ` FROM venue_hours WHERE venue_id = $1 AND weekday = $2`
	if activeOnly {
		query += ` AND status = 'ACTIVE'`
	}
	query += ` ORDER BY opens_at`

	rows, err := r.db.Query(ctx, query, pgconv.UUIDToPgtype(venueID), int(weekday))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list turnos by weekday", err)
	}
	defer rows.Close()

	return collectTurnos(rows)
}

const insertTurnoQuery = `
INSERT INTO venue_hours (id, venue_id, weekday, opens_at, closes_at, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *TurnoRepository) Insert(ctx context.Context, t *schedule.Turno) error {
	_, err := r.db.Exec(ctx, insertTurnoQuery,
		pgconv.UUIDToPgtype(t.ID()),
		pgconv.UUIDToPgtype(t.VenueID()),
		int(t.Weekday()),
		todToPg(t.OpensAt()),
		todToPg(t.ClosesAt()),
		string(t.Status()),
		t.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert turno", err)
	}
	return nil
}

const updateTurnoQuery = `
UPDATE venue_hours
SET opens_at = $2, closes_at = $3, status = $4
WHERE id = $1
`

func (r *TurnoRepository) Update(ctx context.Context, t *schedule.Turno) error {
	tag, err := r.db.Exec(ctx, updateTurnoQuery,
		pgconv.UUIDToPgtype(t.ID()),
		todToPg(t.OpensAt()),
		todToPg(t.ClosesAt()),
		string(t.Status()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update turno", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFoundErr("turno not found")
	}
	return nil
}

func (r *TurnoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM venue_hours WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete turno", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFoundErr("turno not found")
	}
	return nil
}

func (r *TurnoRepository) DeleteByVenue(ctx context.Context, venueID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM venue_hours WHERE venue_id = $1`, pgconv.UUIDToPgtype(venueID))
	if err != nil {
		return infra.WrapRepoErr("failed to delete venue turnos", err)
	}
	return nil
}

func (r *TurnoRepository) DeleteByVenueAndWeekday(ctx context.Context, venueID uuid.UUID, weekday schedule.Weekday) error {
	_, err := r.db.Exec(ctx, `DELETE FROM venue_hours WHERE venue_id = $1 AND weekday = $2`,
		pgconv.UUIDToPgtype(venueID), int(weekday))
	if err != nil {
		return infra.WrapRepoErr("failed to delete weekday turnos", err)
	}
	return nil
}

func scanTurno(row pgx.Row) (*schedule.Turno, error) {
	var (
		id, venueID       pgtype.UUID
		weekday           int
		opensAt, closesAt pgtype.Timestamptz
		status            string
		createdAt         pgtype.Timestamptz
	)
	if err := row.Scan(&id, &venueID, &weekday, &opensAt, &closesAt, &status, &createdAt); err != nil {
		return nil, err
	}
	return schedule.ReconstructTurno(
		pgconv.UUIDFromPgtype(id),
		pgconv.UUIDFromPgtype(venueID),
		schedule.Weekday(weekday),
		todFromPg(opensAt),
		todFromPg(closesAt),
		schedule.TurnoStatus(status),
		createdAt.Time,
	), nil
}

func collectTurnos(rows pgx.Rows) ([]*schedule.Turno, error) {
	var turnos []*schedule.Turno
	for rows.Next() {
		t, err := scanTurno(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan turno", err)
		}
		turnos = append(turnos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate turnos", err)
	}
	return turnos, nil
}
