//go:build unit

package usecase_test

import (
	"context"
	"fmt"
	"time"

	"billiar/internal/domain/reservation"
	"billiar/internal/domain/schedule"
	"billiar/internal/domain/venue"
	"billiar/internal/infra"
	"billiar/internal/usecase/shared"

	"github.com/google/uuid"
)

// Missing rows carry the repository layer's NOT_FOUND kind so the
// usecases classify them exactly as they would a live repository miss.
var errFakeNotFound = infra.NewNotFoundErr("not found")

// fakeStore is a single in-memory backing store shared by the fake
// transaction and the fake reads. There is no rollback: tests that
// exercise failure paths assert on observable effects (uploads,
// compensating deletes, returned errors) rather than on store state
// after a failed transaction.
type fakeStore struct {
	venues       map[uuid.UUID]*venue.Venue
	tables       map[uuid.UUID]*venue.Table
	turnos       []*schedule.Turno
	blocks       []*venue.Block
	reservations map[uuid.UUID]*reservation.Reservation
	payments     map[uuid.UUID]*reservation.Payment

	lockedTables []uuid.UUID

	tableFindErr         error
	reservationInsertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		venues:       make(map[uuid.UUID]*venue.Venue),
		tables:       make(map[uuid.UUID]*venue.Table),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		payments:     make(map[uuid.UUID]*reservation.Payment),
	}
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, fakeTx{s: u.store})
}

func (u *fakeUoW) Reads() shared.Reads {
	return fakeReads{fakeTx{s: u.store}}
}

type fakeTx struct {
	s *fakeStore
}

func (t fakeTx) Venues() shared.VenueRepository             { return fakeVenues{t.s} }
func (t fakeTx) Tables() shared.TableRepository             { return fakeTables{t.s} }
func (t fakeTx) Turnos() shared.TurnoRepository             { return fakeTurnos{t.s} }
func (t fakeTx) Blocks() shared.BlockRepository             { return fakeBlocks{t.s} }
func (t fakeTx) Reservations() shared.ReservationRepository { return fakeReservations{t.s} }
func (t fakeTx) Payments() shared.PaymentRepository         { return fakePayments{t.s} }

type fakeReads struct {
	fakeTx
}

func (r fakeReads) Views() shared.ReservationViews { return fakeViews{r.s} }

type fakeVenues struct{ s *fakeStore }

func (f fakeVenues) FindByID(_ context.Context, id uuid.UUID) (*venue.Venue, error) {
	v, ok := f.s.venues[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return v, nil
}

func (f fakeVenues) IsVenueAdmin(_ context.Context, userID, tableID uuid.UUID) (bool, error) {
	tb, ok := f.s.tables[tableID]
	if !ok {
		return false, nil
	}
	v, ok := f.s.venues[tb.VenueID()]
	if !ok {
		return false, nil
	}
	return v.OwnerID() == userID, nil
}

type fakeTables struct{ s *fakeStore }

func (f fakeTables) FindByID(_ context.Context, id uuid.UUID) (*venue.Table, error) {
	if f.s.tableFindErr != nil {
		return nil, f.s.tableFindErr
	}
	t, ok := f.s.tables[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return t, nil
}

func (f fakeTables) LockForBooking(_ context.Context, id uuid.UUID) error {
	f.s.lockedTables = append(f.s.lockedTables, id)
	return nil
}

func (f fakeTables) SetStatus(_ context.Context, id uuid.UUID, status venue.TableStatus) error {
	t, ok := f.s.tables[id]
	if !ok {
		return errFakeNotFound
	}
	f.s.tables[id] = venue.ReconstructTable(
		t.ID(), t.VenueID(), t.Number(), t.Category(), t.HourlyPriceCents(), status,
	)
	return nil
}

type fakeTurnos struct{ s *fakeStore }

func (f fakeTurnos) FindByID(_ context.Context, id uuid.UUID) (*schedule.Turno, error) {
	for _, t := range f.s.turnos {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeTurnos) ListByVenue(_ context.Context, venueID uuid.UUID, activeOnly bool) ([]*schedule.Turno, error) {
	var out []*schedule.Turno
	for _, t := range f.s.turnos {
		if t.VenueID() != venueID {
			continue
		}
		if activeOnly && !t.IsActive() {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f fakeTurnos) ListByVenueAndWeekday(_ context.Context, venueID uuid.UUID, weekday schedule.Weekday, activeOnly bool) ([]*schedule.Turno, error) {
	var out []*schedule.Turno
	for _, t := range f.s.turnos {
		if t.VenueID() != venueID || t.Weekday() != weekday {
			continue
		}
		if activeOnly && !t.IsActive() {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f fakeTurnos) Insert(_ context.Context, t *schedule.Turno) error {
	f.s.turnos = append(f.s.turnos, t)
	return nil
}

func (f fakeTurnos) Update(_ context.Context, t *schedule.Turno) error {
	for i, existing := range f.s.turnos {
		if existing.ID() == t.ID() {
			f.s.turnos[i] = t
			return nil
		}
	}
	return errFakeNotFound
}

func (f fakeTurnos) Delete(_ context.Context, id uuid.UUID) error {
	return f.deleteWhere(func(t *schedule.Turno) bool { return t.ID() == id })
}

func (f fakeTurnos) DeleteByVenue(_ context.Context, venueID uuid.UUID) error {
	return f.deleteWhere(func(t *schedule.Turno) bool { return t.VenueID() == venueID })
}

func (f fakeTurnos) DeleteByVenueAndWeekday(_ context.Context, venueID uuid.UUID, weekday schedule.Weekday) error {
	return f.deleteWhere(func(t *schedule.Turno) bool {
		return t.VenueID() == venueID && t.Weekday() == weekday
	})
}

func (f fakeTurnos) deleteWhere(match func(*schedule.Turno) bool) error {
	kept := f.s.turnos[:0]
	for _, t := range f.s.turnos {
		if !match(t) {
			kept = append(kept, t)
		}
	}
	f.s.turnos = kept
	return nil
}

type fakeBlocks struct{ s *fakeStore }

func (f fakeBlocks) FindByID(_ context.Context, id uuid.UUID) (*venue.Block, error) {
	for _, b := range f.s.blocks {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeBlocks) ListByTableAndDate(_ context.Context, tableID uuid.UUID, date time.Time) ([]*venue.Block, error) {
	var out []*venue.Block
	for _, b := range f.s.blocks {
		if b.TableID() == tableID && b.Date().Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f fakeBlocks) Insert(_ context.Context, b *venue.Block) error {
	f.s.blocks = append(f.s.blocks, b)
	return nil
}

func (f fakeBlocks) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.s.blocks[:0]
	for _, b := range f.s.blocks {
		if b.ID() != id {
			kept = append(kept, b)
		}
	}
	f.s.blocks = kept
	return nil
}

type fakeReservations struct{ s *fakeStore }

func (f fakeReservations) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r, ok := f.s.reservations[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return r, nil
}

func (f fakeReservations) ListLiveByTableAndDate(_ context.Context, tableID uuid.UUID, date time.Time) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, r := range f.s.reservations {
		if r.TableID() == tableID && r.IsLive() && r.Window().Date().Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f fakeReservations) HasLiveOverlap(_ context.Context, tableID uuid.UUID, date time.Time, start, end schedule.TimeOfDay, excludeID *uuid.UUID) (bool, error) {
	for _, r := range f.s.reservations {
		if r.TableID() != tableID || !r.IsLive() || !r.Window().Date().Equal(date) {
			continue
		}
		if excludeID != nil && r.ID() == *excludeID {
			continue
		}
		w := r.Window()
		if schedule.Overlaps(start, end, w.Start(), w.End()) {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeReservations) Insert(_ context.Context, r *reservation.Reservation) error {
	if f.s.reservationInsertErr != nil {
		return f.s.reservationInsertErr
	}
	f.s.reservations[r.ID()] = r
	return nil
}

func (f fakeReservations) Update(_ context.Context, r *reservation.Reservation) error {
	if _, ok := f.s.reservations[r.ID()]; !ok {
		return errFakeNotFound
	}
	f.s.reservations[r.ID()] = r
	return nil
}

type fakePayments struct{ s *fakeStore }

func (f fakePayments) FindByReservationID(_ context.Context, reservationID uuid.UUID) (*reservation.Payment, error) {
	for _, p := range f.s.payments {
		if p.ReservationID() == reservationID {
			return p, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakePayments) FindByID(_ context.Context, id uuid.UUID) (*reservation.Payment, error) {
	p, ok := f.s.payments[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return p, nil
}

func (f fakePayments) Insert(_ context.Context, p *reservation.Payment) error {
	f.s.payments[p.ID()] = p
	return nil
}

func (f fakePayments) Update(_ context.Context, p *reservation.Payment) error {
	if _, ok := f.s.payments[p.ID()]; !ok {
		return errFakeNotFound
	}
	f.s.payments[p.ID()] = p
	return nil
}

// fakeViews assembles view rows from the raw store on demand, close
// enough to the SQL joins for usecase assertions.
type fakeViews struct{ s *fakeStore }

func (f fakeViews) ReceiptByID(_ context.Context, reservationID uuid.UUID) (*shared.ReceiptView, error) {
	r, ok := f.s.reservations[reservationID]
	if !ok {
		return nil, errFakeNotFound
	}
	tb := f.s.tables[r.TableID()]
	vn := f.s.venues[tb.VenueID()]

	var pay *reservation.Payment
	for _, p := range f.s.payments {
		if p.ReservationID() == reservationID {
			pay = p
			break
		}
	}
	if pay == nil {
		return nil, errFakeNotFound
	}

	w := r.Window()
	return &shared.ReceiptView{
		ReservationID:   r.ID(),
		VenueName:       vn.Name(),
		VenueAddress:    vn.Address(),
		TableNumber:     tb.Number(),
		TableCategory:   string(tb.Category()),
		Date:            w.Date(),
		StartsAt:        w.Start().String(),
		EndsAt:          w.End().String(),
		DurationHours:   w.End().Sub(w.Start()).Hours(),
		AmountCents:     r.Estimated().Cents(),
		DiscountPercent: vn.DiscountPercent(),
		Status:          r.Status().String(),
		PaymentApproval: string(pay.Approval()),
		ReceiptURL:      pay.ReceiptURL(),
	}, nil
}

func (f fakeViews) CustomerReservations(_ context.Context, customerID uuid.UUID) ([]*shared.CustomerReservationView, error) {
	var out []*shared.CustomerReservationView
	for _, r := range f.s.reservations {
		if r.CustomerID() != customerID || !r.IsLive() {
			continue
		}
		var paid int64
		for _, p := range f.s.payments {
			if p.ReservationID() == r.ID() {
				paid = p.Amount().Cents()
			}
		}
		w := r.Window()
		out = append(out, &shared.CustomerReservationView{
			ReservationID: r.ID(),
			TableID:       r.TableID(),
			Date:          w.Date(),
			StartsAt:      w.Start().String(),
			EndsAt:        w.End().String(),
			DurationHours: w.End().Sub(w.Start()).Hours(),
			PaidCents:     paid,
			Status:        r.Status().String(),
		})
	}
	return out, nil
}

func (f fakeViews) OwnerRequests(_ context.Context, _ uuid.UUID) ([]*shared.OwnerRequestView, error) {
	return nil, nil
}

func (f fakeViews) PendingRefunds(_ context.Context, _ uuid.UUID) ([]*shared.PendingRefundView, error) {
	return nil, nil
}

type fakeAssetStore struct {
	uploads []string
	deleted []string

	uploadErr error
}

func (f *fakeAssetStore) Upload(_ context.Context, _ string, folder string) (shared.Asset, error) {
	if f.uploadErr != nil {
		return shared.Asset{}, f.uploadErr
	}
	id := fmt.Sprintf("asset-%d", len(f.uploads)+1)
	f.uploads = append(f.uploads, folder)
	return shared.Asset{
		URL:     "https://img.example/" + id + ".png",
		AssetID: id,
	}, nil
}

func (f *fakeAssetStore) Delete(_ context.Context, assetID string) error {
	f.deleted = append(f.deleted, assetID)
	return nil
}
