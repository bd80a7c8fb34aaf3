//go:build unit

package reservation_test

import (
	"testing"

	"billiar/internal/domain/reservation"
	"billiar/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	return reservation.NewReservation(uuid.New(), uuid.New(), window(t, "14:00", "16:00"), 5000)
}

func TestReservationLifecycle(t *testing.T) {
	t.Run("starts pending and live", func(t *testing.T) {
		res := newPendingReservation(t)
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.True(t, res.IsLive())
	})

	t.Run("confirm then finish", func(t *testing.T) {
		res := newPendingReservation(t)
		require.NoError(t, res.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		require.NoError(t, res.Finish())
		assert.Equal(t, reservation.StatusFinished, res.Status())
		assert.False(t, res.IsLive())
	})

	t.Run("terminal states are frozen", func(t *testing.T) {
		res := newPendingReservation(t)
		require.NoError(t, res.Reject())

		assert.ErrorIs(t, res.Confirm(), errs.ErrNotEditable)
		assert.ErrorIs(t, res.Finish(), errs.ErrNotEditable)
		assert.ErrorIs(t, res.Cancel(0), errs.ErrNotCancellable)
	})

	t.Run("cancel freezes the penalty", func(t *testing.T) {
		res := newPendingReservation(t)
		require.NoError(t, res.Cancel(1500))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Equal(t, reservation.Money(1500), res.Penalty())

		assert.ErrorIs(t, res.Cancel(9999), errs.ErrNotCancellable)
		assert.Equal(t, reservation.Money(1500), res.Penalty(), "second cancel must not change the frozen penalty")
	})

	t.Run("move is limited to live reservations", func(t *testing.T) {
		res := newPendingReservation(t)
		w := res.Window()

		newDate := w.Date().AddDate(0, 0, 3)
		require.NoError(t, res.MoveTo(newDate, tod(t, "18:00")))
		assert.Equal(t, newDate, res.Window().Date())
		assert.Equal(t, "20:00", res.Window().End().String(), "duration preserved")

		require.NoError(t, res.Cancel(0))
		assert.ErrorIs(t, res.MoveTo(newDate, tod(t, "19:00")), errs.ErrNotEditable)
	})
}

func TestPaymentApproval(t *testing.T) {
	newPayment := func() *reservation.Payment {
		return reservation.NewPayment(uuid.New(), uuid.New(), 5000, "https://img.example/receipt.png", "receipt-1")
	}

	t.Run("approve is not repeatable", func(t *testing.T) {
		p := newPayment()
		require.NoError(t, p.Approve())
		assert.Equal(t, reservation.PaymentApproved, p.Approval())
		assert.ErrorIs(t, p.Approve(), errs.ErrAlreadyInState)
	})

	t.Run("reject after approve is refused", func(t *testing.T) {
		p := newPayment()
		require.NoError(t, p.Approve())
		assert.ErrorIs(t, p.RejectApproval(), errs.ErrAlreadyInState)
	})

	t.Run("approve after reject is refused", func(t *testing.T) {
		p := newPayment()
		require.NoError(t, p.RejectApproval())
		assert.ErrorIs(t, p.Approve(), errs.ErrAlreadyInState)
	})
}

func TestPaymentRefund(t *testing.T) {
	p := reservation.NewPayment(uuid.New(), uuid.New(), 10000, "https://img.example/receipt.png", "receipt-1")

	p.AttachRefundQR("https://img.example/qr.png", "qr-1")
	assert.Equal(t, "https://img.example/qr.png", p.RefundQRURL())

	require.NoError(t, p.MarkRefunded(7000, "https://img.example/proof.png"))
	assert.Equal(t, reservation.Refunded, p.RefundStatus())
	assert.Equal(t, reservation.Money(7000), p.Refunded())

	err := p.MarkRefunded(7000, "https://img.example/proof2.png")
	assert.ErrorIs(t, err, errs.ErrAlreadyInState)
	assert.Equal(t, "https://img.example/proof.png", p.RefundProofURL(), "refund is recorded exactly once")
}
