package schedule

// Half-open interval algebra shared by turnos, blocks, reservations and
// the availability calculator.

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect.
// Back-to-back intervals (aEnd == bStart) never overlap.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Contains reports whether [innerStart,innerEnd) lies entirely within
// [outerStart,outerEnd).
func Contains(outerStart, outerEnd, innerStart, innerEnd TimeOfDay) bool {
	return !innerStart.Before(outerStart) && !outerEnd.Before(innerEnd)
}
