package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"billiar/internal/infra/db"
	"billiar/internal/infra/readstore"
	"billiar/internal/infra/repository"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes;
// the table row lock taken by booking operations does the serializing.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.Reads {
	return &poolReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the conversion stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n // #nosec G115 -- safe after masking
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	venueRepo       shared.VenueRepository
	tableRepo       shared.TableRepository
	turnoRepo       shared.TurnoRepository
	blockRepo       shared.BlockRepository
	reservationRepo shared.ReservationRepository
	paymentRepo     shared.PaymentRepository
}

func (t *pgTx) Venues() shared.VenueRepository {
	if t.venueRepo == nil {
		t.venueRepo = repository.NewVenueRepository(t.dbtx)
	}
	return t.venueRepo
}

func (t *pgTx) Tables() shared.TableRepository {
	if t.tableRepo == nil {
		t.tableRepo = repository.NewTableRepository(t.dbtx)
	}
	return t.tableRepo
}

func (t *pgTx) Turnos() shared.TurnoRepository {
	if t.turnoRepo == nil {
		t.turnoRepo = repository.NewTurnoRepository(t.dbtx)
	}
	return t.turnoRepo
}

func (t *pgTx) Blocks() shared.BlockRepository {
	if t.blockRepo == nil {
		t.blockRepo = repository.NewBlockRepository(t.dbtx)
	}
	return t.blockRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.dbtx)
	}
	return t.paymentRepo
}

// poolReads runs each query directly on the pool; single statements get
// implicit transactions, which is all the read paths need.
type poolReads struct {
	dbtx db.DBTX

	venueRepo       shared.VenueRepository
	tableRepo       shared.TableRepository
	turnoRepo       shared.TurnoRepository
	blockRepo       shared.BlockRepository
	reservationRepo shared.ReservationRepository
	paymentRepo     shared.PaymentRepository
	views           shared.ReservationViews
}

func (r *poolReads) Venues() shared.VenueRepository {
	if r.venueRepo == nil {
		r.venueRepo = repository.NewVenueRepository(r.dbtx)
	}
	return r.venueRepo
}

func (r *poolReads) Tables() shared.TableRepository {
	if r.tableRepo == nil {
		r.tableRepo = repository.NewTableRepository(r.dbtx)
	}
	return r.tableRepo
}

func (r *poolReads) Turnos() shared.TurnoRepository {
	if r.turnoRepo == nil {
		r.turnoRepo = repository.NewTurnoRepository(r.dbtx)
	}
	return r.turnoRepo
}

func (r *poolReads) Blocks() shared.BlockRepository {
	if r.blockRepo == nil {
		r.blockRepo = repository.NewBlockRepository(r.dbtx)
	}
	return r.blockRepo
}

func (r *poolReads) Reservations() shared.ReservationRepository {
	if r.reservationRepo == nil {
		r.reservationRepo = repository.NewReservationRepository(r.dbtx)
	}
	return r.reservationRepo
}

func (r *poolReads) Payments() shared.PaymentRepository {
	if r.paymentRepo == nil {
		r.paymentRepo = repository.NewPaymentRepository(r.dbtx)
	}
	return r.paymentRepo
}

func (r *poolReads) Views() shared.ReservationViews {
	if r.views == nil {
		r.views = readstore.NewReservationReadStore(r.dbtx)
	}
	return r.views
}
