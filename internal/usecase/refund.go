package usecase

import (
	"context"
	"log/slog"

	"billiar/internal/domain/reservation"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterRefundParams struct {
	PaymentID    uuid.UUID
	OwnerID      uuid.UUID
	AmountCents  int64
	ProofDataURI string
}

type RefundUseCase interface {
	ListPending(ctx context.Context, ownerID uuid.UUID) ([]*shared.PendingRefundView, error)
	Register(ctx context.Context, params RegisterRefundParams) error
}

type refundUseCaseImpl struct {
	uow    shared.UnitOfWork
	assets shared.AssetStore
}

func NewRefundUseCase(uow shared.UnitOfWork, assets shared.AssetStore) RefundUseCase {
	return &refundUseCaseImpl{uow: uow, assets: assets}
}

func (r *refundUseCaseImpl) ListPending(ctx context.Context, ownerID uuid.UUID) ([]*shared.PendingRefundView, error) {
	return r.uow.Reads().Views().PendingRefunds(ctx, ownerID)
}

// Register marks a cancelled reservation's payment as refunded, exactly
// once, with the owner's transfer proof attached. The proof is uploaded
// before the transaction and deleted again if the state change fails.
func (r *refundUseCaseImpl) Register(ctx context.Context, params RegisterRefundParams) error {
	reads := r.uow.Reads()

	pay, err := reads.Payments().FindByID(ctx, params.PaymentID)
	if err != nil {
		return notFoundAs(err, errs.ErrPaymentMissing)
	}
	if pay.RefundStatus() == reservation.Refunded {
		return errs.Mark(
			errs.Wrapf(errs.ErrAlreadyInState, "payment %s already refunded", pay.ID()),
			errs.ErrAlreadyInState,
		)
	}

	res, err := reads.Reservations().FindByID(ctx, pay.ReservationID())
	if err != nil {
		return notFoundAs(err, errs.ErrReservationNotFound)
	}
	if err := requireTableAdmin(ctx, reads.Venues(), params.OwnerID, res.TableID()); err != nil {
		return err
	}

	asset, err := r.assets.Upload(ctx, params.ProofDataURI, "refunds/payment-"+pay.ID().String())
	if err != nil {
		return errs.Wrap(err, "failed to upload refund proof")
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		txPay, err := tx.Payments().FindByID(ctx, params.PaymentID)
		if err != nil {
			return notFoundAs(err, errs.ErrPaymentMissing)
		}
		if err := txPay.MarkRefunded(reservation.Money(params.AmountCents), asset.URL); err != nil {
			return err
		}
		return tx.Payments().Update(ctx, txPay)
	})
	if err != nil {
		if delErr := r.assets.Delete(ctx, asset.AssetID); delErr != nil {
			slog.Warn("failed to delete orphaned refund proof", "asset_id", asset.AssetID, "error", delErr.Error())
		}
		return err
	}
	return nil
}
