package usecase

import (
	"context"
	"log/slog"
	"time"

	"billiar/internal/domain/reservation"
	"billiar/internal/domain/schedule"
	"billiar/internal/domain/venue"
	"billiar/internal/pkg/clock"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationParams struct {
	TableID        uuid.UUID
	CustomerID     uuid.UUID
	Date           time.Time
	StartsAt       schedule.TimeOfDay
	EndsAt         schedule.TimeOfDay
	ReceiptDataURI string
}

type RescheduleParams struct {
	ReservationID uuid.UUID
	CustomerID    uuid.UUID
	NewDate       time.Time
	NewStartsAt   schedule.TimeOfDay
}

type CancelParams struct {
	ReservationID   uuid.UUID
	RequesterID     uuid.UUID
	RefundQRDataURI string
}

type CancelResult struct {
	ReservationID  uuid.UUID
	PenaltyPercent int
	PenaltyCents   int64
	RefundCents    int64
}

type ReservationUseCase interface {
	Create(ctx context.Context, params CreateReservationParams) (*shared.ReceiptView, error)
	Reschedule(ctx context.Context, params RescheduleParams) (*shared.ReceiptView, error)
	Accept(ctx context.Context, reservationID, ownerID uuid.UUID) error
	Reject(ctx context.Context, reservationID, ownerID uuid.UUID) error
	Cancel(ctx context.Context, params CancelParams) (*CancelResult, error)
	Finish(ctx context.Context, reservationID, ownerID uuid.UUID) error

	ListMine(ctx context.Context, customerID uuid.UUID) ([]*shared.CustomerReservationView, error)
	ListRequests(ctx context.Context, ownerID uuid.UUID) ([]*shared.OwnerRequestView, error)
}

type reservationUseCaseImpl struct {
	uow    shared.UnitOfWork
	assets shared.AssetStore
	clock  clock.Clock
	zone   *time.Location
}

func NewReservationUseCase(uow shared.UnitOfWork, assets shared.AssetStore, clk clock.Clock, zone *time.Location) ReservationUseCase {
	return &reservationUseCaseImpl{
		uow:    uow,
		assets: assets,
		clock:  clk,
		zone:   zone,
	}
}

// Create validates fail-fast, uploads the receipt, then inserts the
// PENDING reservation together with its PENDING payment in one
// transaction. The conflict and block checks run twice: once before the
// upload so obviously doomed requests never reach the image store, and
// again inside the transaction under the table row lock, which is the
// authoritative check.
func (r *reservationUseCaseImpl) Create(ctx context.Context, params CreateReservationParams) (*shared.ReceiptView, error) {
	window, err := reservation.NewWindow(params.Date, params.StartsAt, params.EndsAt)
	if err != nil {
		return nil, err
	}

	reads := r.uow.Reads()

	table, err := reads.Tables().FindByID(ctx, params.TableID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrTableNotFound)
	}

	vn, err := reads.Venues().FindByID(ctx, table.VenueID())
	if err != nil {
		return nil, notFoundAs(err, errs.ErrVenueNotFound)
	}
	if !vn.IsActive() {
		return nil, errs.Mark(
			errs.Wrapf(errs.ErrVenueInactive, "venue %s", vn.ID()),
			errs.ErrVenueInactive,
		)
	}

	if err := r.checkWindowFree(ctx, reads.Reservations(), reads.Blocks(), table.ID(), window, nil); err != nil {
		return nil, err
	}

	amount := reservation.EstimatedAmount(window, table.HourlyPriceCents(), vn.DiscountPercent())

	asset, err := r.assets.Upload(ctx, params.ReceiptDataURI, "payments/table-"+table.ID().String())
	if err != nil {
		return nil, errs.Wrap(err, "failed to upload payment receipt")
	}

	res := reservation.NewReservation(table.ID(), params.CustomerID, window, amount)
	pay := reservation.NewPayment(res.ID(), params.CustomerID, amount, asset.URL, asset.AssetID)

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Tables().LockForBooking(ctx, table.ID()); err != nil {
			return err
		}
		if err := r.checkWindowFree(ctx, tx.Reservations(), tx.Blocks(), table.ID(), window, nil); err != nil {
			return err
		}
		if err := tx.Reservations().Insert(ctx, res); err != nil {
			return err
		}
		return tx.Payments().Insert(ctx, pay)
	})
	if err != nil {
		r.deleteAssetBestEffort(ctx, asset.AssetID)
		return nil, err
	}

	return r.uow.Reads().Views().ReceiptByID(ctx, res.ID())
}

// Reschedule moves a live reservation to a new window of the same
// duration, re-running the create-time checks and excluding the moved
// reservation from its own conflict check.
func (r *reservationUseCaseImpl) Reschedule(ctx context.Context, params RescheduleParams) (*shared.ReceiptView, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, params.ReservationID)
		if err != nil {
			return notFoundAs(err, errs.ErrReservationNotFound)
		}
		if !res.BelongsTo(params.CustomerID) {
			return errs.Mark(
				errs.Wrapf(errs.ErrNotOwner, "reservation %s", res.ID()),
				errs.ErrNotOwner,
			)
		}

		table, err := tx.Tables().FindByID(ctx, res.TableID())
		if err != nil {
			return notFoundAs(err, errs.ErrTableNotFound)
		}
		vn, err := tx.Venues().FindByID(ctx, table.VenueID())
		if err != nil {
			return notFoundAs(err, errs.ErrVenueNotFound)
		}
		if !vn.IsActive() {
			return errs.Mark(
				errs.Wrapf(errs.ErrVenueInactive, "venue %s", vn.ID()),
				errs.ErrVenueInactive,
			)
		}

		if err := res.MoveTo(params.NewDate, params.NewStartsAt); err != nil {
			return err
		}

		if err := tx.Tables().LockForBooking(ctx, table.ID()); err != nil {
			return err
		}
		self := res.ID()
		if err := r.checkWindowFree(ctx, tx.Reservations(), tx.Blocks(), table.ID(), res.Window(), &self); err != nil {
			return err
		}

		return tx.Reservations().Update(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	return r.uow.Reads().Views().ReceiptByID(ctx, params.ReservationID)
}

func (r *reservationUseCaseImpl) Accept(ctx context.Context, reservationID, ownerID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, pay, err := r.findForOwner(ctx, tx, reservationID, ownerID)
		if err != nil {
			return err
		}

		if err := pay.Approve(); err != nil {
			return err
		}
		if err := res.Confirm(); err != nil {
			return err
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		if err := tx.Payments().Update(ctx, pay); err != nil {
			return err
		}
		return tx.Tables().SetStatus(ctx, res.TableID(), venue.TableOccupied)
	})
}

func (r *reservationUseCaseImpl) Reject(ctx context.Context, reservationID, ownerID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, pay, err := r.findForOwner(ctx, tx, reservationID, ownerID)
		if err != nil {
			return err
		}

		if err := pay.RejectApproval(); err != nil {
			return err
		}
		if err := res.Reject(); err != nil {
			return err
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		return tx.Payments().Update(ctx, pay)
	})
}

// Cancel computes the penalty from the clock at cancel time, freezes it
// on the reservation, and records the customer's refund QR against the
// payment. The payment's approval state is left untouched.
func (r *reservationUseCaseImpl) Cancel(ctx context.Context, params CancelParams) (*CancelResult, error) {
	reads := r.uow.Reads()

	res, err := reads.Reservations().FindByID(ctx, params.ReservationID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrReservationNotFound)
	}
	if !res.IsLive() {
		return nil, errs.Mark(
			errs.Wrapf(errs.ErrNotCancellable, "reservation %s is %s", res.ID(), res.Status()),
			errs.ErrNotCancellable,
		)
	}

	if !res.BelongsTo(params.RequesterID) {
		isAdmin, adminErr := reads.Venues().IsVenueAdmin(ctx, params.RequesterID, res.TableID())
		if adminErr != nil {
			return nil, adminErr
		}
		if !isAdmin {
			return nil, errs.Mark(
				errs.Wrapf(errs.ErrNotOwner, "reservation %s", res.ID()),
				errs.ErrNotOwner,
			)
		}
	}

	pay, err := reads.Payments().FindByReservationID(ctx, params.ReservationID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrPaymentMissing)
	}

	now := schedule.CivilNowAnchored(r.clock.Now(), r.zone)
	w := res.Window()
	percent := reservation.PenaltyPercent(now, w.Date(), w.Start(), w.End())
	penalty := reservation.PenaltyAmount(pay.Amount(), percent)
	refund := reservation.RefundableAmount(pay.Amount(), percent)

	asset, err := r.assets.Upload(ctx, params.RefundQRDataURI, "refunds/reservation-"+res.ID().String())
	if err != nil {
		return nil, errs.Wrap(err, "failed to upload refund QR")
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		txRes, err := tx.Reservations().FindByID(ctx, params.ReservationID)
		if err != nil {
			return notFoundAs(err, errs.ErrReservationNotFound)
		}
		txPay, err := tx.Payments().FindByReservationID(ctx, params.ReservationID)
		if err != nil {
			return notFoundAs(err, errs.ErrPaymentMissing)
		}

		if err := txRes.Cancel(penalty); err != nil {
			return err
		}
		txPay.AttachRefundQR(asset.URL, asset.AssetID)

		if err := tx.Reservations().Update(ctx, txRes); err != nil {
			return err
		}
		return tx.Payments().Update(ctx, txPay)
	})
	if err != nil {
		r.deleteAssetBestEffort(ctx, asset.AssetID)
		return nil, err
	}

	return &CancelResult{
		ReservationID:  res.ID(),
		PenaltyPercent: percent,
		PenaltyCents:   penalty.Cents(),
		RefundCents:    refund.Cents(),
	}, nil
}

// Finish closes out a live reservation and releases the table back to
// AVAILABLE.
func (r *reservationUseCaseImpl) Finish(ctx context.Context, reservationID, ownerID uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return notFoundAs(err, errs.ErrReservationNotFound)
		}

		if err := requireTableAdmin(ctx, tx.Venues(), ownerID, res.TableID()); err != nil {
			return err
		}

		if err := res.Finish(); err != nil {
			return err
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		return tx.Tables().SetStatus(ctx, res.TableID(), venue.TableAvailable)
	})
}

func (r *reservationUseCaseImpl) ListMine(ctx context.Context, customerID uuid.UUID) ([]*shared.CustomerReservationView, error) {
	views, err := r.uow.Reads().Views().CustomerReservations(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := schedule.CivilNowAnchored(r.clock.Now(), r.zone)
	for _, v := range views {
		start, err := schedule.ParseTimeOfDay(v.StartsAt)
		if err != nil {
			continue
		}
		end, err := schedule.ParseTimeOfDay(v.EndsAt)
		if err != nil {
			continue
		}
		percent := reservation.PenaltyPercent(now, v.Date, start, end)
		v.SuggestedPenaltyPercent = percent
		v.SuggestedRefundCents = reservation.RefundableAmount(reservation.Money(v.PaidCents), percent).Cents()
	}
	return views, nil
}

func (r *reservationUseCaseImpl) ListRequests(ctx context.Context, ownerID uuid.UUID) ([]*shared.OwnerRequestView, error) {
	return r.uow.Reads().Views().OwnerRequests(ctx, ownerID)
}

// checkWindowFree enforces the two negative-availability rules shared
// by create and reschedule: no live reservation overlap, no block
// overlap.
func (r *reservationUseCaseImpl) checkWindowFree(
	ctx context.Context,
	reservations shared.ReservationRepository,
	blocks shared.BlockRepository,
	tableID uuid.UUID,
	window reservation.Window,
	excludeID *uuid.UUID,
) error {
	conflict, err := reservations.HasLiveOverlap(ctx, tableID, window.Date(), window.Start(), window.End(), excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return errs.Mark(
			errs.Wrapf(errs.ErrReservationConflict, "table %s [%s,%s) on %s",
				tableID, window.Start(), window.End(), schedule.FormatDate(window.Date())),
			errs.ErrReservationConflict,
		)
	}

	dayBlocks, err := blocks.ListByTableAndDate(ctx, tableID, window.Date())
	if err != nil {
		return err
	}
	for _, b := range dayBlocks {
		if b.OverlapsWindow(window.Start(), window.End()) {
			return errs.Mark(
				errs.Wrapf(errs.ErrTableBlocked, "table %s block [%s,%s)",
					tableID, b.StartsAt(), b.EndsAt()),
				errs.ErrTableBlocked,
			)
		}
	}
	return nil
}

func (r *reservationUseCaseImpl) findForOwner(
	ctx context.Context,
	tx shared.Tx,
	reservationID, ownerID uuid.UUID,
) (*reservation.Reservation, *reservation.Payment, error) {
	res, err := tx.Reservations().FindByID(ctx, reservationID)
	if err != nil {
		return nil, nil, notFoundAs(err, errs.ErrReservationNotFound)
	}

	if err := requireTableAdmin(ctx, tx.Venues(), ownerID, res.TableID()); err != nil {
		return nil, nil, err
	}

	pay, err := tx.Payments().FindByReservationID(ctx, reservationID)
	if err != nil {
		return nil, nil, notFoundAs(err, errs.ErrPaymentMissing)
	}
	return res, pay, nil
}

// Compensating action for upload-then-persist failures: the asset is
// orphaned in the external store, so delete it and surface only the
// primary error.
func (r *reservationUseCaseImpl) deleteAssetBestEffort(ctx context.Context, assetID string) {
	if assetID == "" {
		return
	}
	if err := r.assets.Delete(ctx, assetID); err != nil {
		slog.Warn("failed to delete orphaned asset", "asset_id", assetID, "error", err.Error())
	}
}
