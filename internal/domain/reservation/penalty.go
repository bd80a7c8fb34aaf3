package reservation

import (
	"math"
	"time"

	"billiar/internal/domain/schedule"
)

// Cancellation penalty ladder. The same computation backs the advisory
// figure shown before cancelling and the authoritative amount frozen at
// cancel time.
const (
	penaltyInProgress = 40
	penaltyUnder15Min = 30
	penaltyUnder30Min = 20
	penaltyUnder60Min = 10
)

// PenaltyPercent derives the cancellation penalty from the proximity of
// now (a civil-zone anchored timestamp, see schedule.CivilNowAnchored)
// to the reservation's scheduled start. From the start onward, including
// any point after the interval ends, the full 40% applies, so only the
// start participates in the ladder.
func PenaltyPercent(now time.Time, date time.Time, start, _ schedule.TimeOfDay) int {
	startAt := schedule.CombineDateTime(date, start)

	if !now.Before(startAt) {
		return penaltyInProgress
	}

	minutesUntilStart := startAt.Sub(now).Minutes()
	switch {
	case minutesUntilStart < 15:
		return penaltyUnder15Min
	case minutesUntilStart < 30:
		return penaltyUnder30Min
	case minutesUntilStart < 60:
		return penaltyUnder60Min
	default:
		return 0
	}
}

// RefundableAmount applies a penalty percentage to the paid amount,
// rounded to the nearest cent and floored at zero.
func RefundableAmount(paid Money, penaltyPercent int) Money {
	refund := math.Round(float64(paid) * float64(100-penaltyPercent) / 100)
	if refund < 0 {
		return 0
	}
	return Money(refund)
}

// PenaltyAmount is the complement withheld by the venue.
func PenaltyAmount(paid Money, penaltyPercent int) Money {
	return paid - RefundableAmount(paid, penaltyPercent)
}
