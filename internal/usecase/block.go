package usecase

import (
	"context"
	"time"

	"billiar/internal/domain/schedule"
	"billiar/internal/domain/venue"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBlockParams struct {
	TableID  uuid.UUID
	OwnerID  uuid.UUID
	Date     time.Time
	StartsAt schedule.TimeOfDay
	EndsAt   schedule.TimeOfDay
}

type BlockUseCase interface {
	List(ctx context.Context, tableID uuid.UUID, date time.Time) ([]*venue.Block, error)
	Create(ctx context.Context, params CreateBlockParams) (*venue.Block, error)
	Delete(ctx context.Context, blockID, ownerID uuid.UUID) error
}

type blockUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBlockUseCase(uow shared.UnitOfWork) BlockUseCase {
	return &blockUseCaseImpl{uow: uow}
}

func (b *blockUseCaseImpl) List(ctx context.Context, tableID uuid.UUID, date time.Time) ([]*venue.Block, error) {
	return b.uow.Reads().Blocks().ListByTableAndDate(ctx, tableID, date)
}

// Create records a maintenance block after verifying the caller
// administers the table's venue. Blocks may overlap each other; only
// reservations respect them.
func (b *blockUseCaseImpl) Create(ctx context.Context, params CreateBlockParams) (*venue.Block, error) {
	block, err := venue.NewBlock(params.TableID, params.Date, params.StartsAt, params.EndsAt)
	if err != nil {
		return nil, err
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireTableAdmin(ctx, tx.Venues(), params.OwnerID, params.TableID); err != nil {
			return err
		}
		return tx.Blocks().Insert(ctx, block)
	})
	if err != nil {
		return nil, err
	}
	return block, nil
}

func (b *blockUseCaseImpl) Delete(ctx context.Context, blockID, ownerID uuid.UUID) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		block, err := tx.Blocks().FindByID(ctx, blockID)
		if err != nil {
			return notFoundAs(err, errs.ErrBlockNotFound)
		}
		if err := requireTableAdmin(ctx, tx.Venues(), ownerID, block.TableID()); err != nil {
			return err
		}
		return tx.Blocks().Delete(ctx, blockID)
	})
}

func requireTableAdmin(ctx context.Context, venues shared.VenueRepository, ownerID, tableID uuid.UUID) error {
	isAdmin, err := venues.IsVenueAdmin(ctx, ownerID, tableID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return errs.Mark(
			errs.Wrapf(errs.ErrNotOwnerOfVenue, "user %s, table %s", ownerID, tableID),
			errs.ErrNotOwnerOfVenue,
		)
	}
	return nil
}
