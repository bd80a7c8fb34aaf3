package reservation

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
	StatusFinished  Status = "FINISHED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusFinished:
		return true
	default:
		return false
	}
}

// IsLive reports whether the reservation still occupies its table:
// live reservations count against availability and conflict checks.
func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal states admit no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusFinished
}

type PaymentApproval string

const (
	PaymentPending  PaymentApproval = "PENDING"
	PaymentApproved PaymentApproval = "APPROVED"
	PaymentRejected PaymentApproval = "REJECTED"
)

type RefundStatus string

const (
	NotRefunded RefundStatus = "NOT_REFUNDED"
	Refunded    RefundStatus = "REFUNDED"
)
