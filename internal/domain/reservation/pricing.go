package reservation

import "math"

// EstimatedAmount prices a window: hours × hourly price, minus the
// venue-wide discount, rounded to the nearest cent. The result is
// frozen on the reservation; later price or discount changes never
// touch it.
func EstimatedAmount(w Window, hourlyPriceCents int64, discountPercent float64) Money {
	hours := w.Duration().Hours()
	amount := float64(hourlyPriceCents) * hours
	if discountPercent > 0 {
		amount *= 1 - discountPercent/100
	}
	return Money(math.Round(amount))
}
