package bootstrap

import (
	"time"

	"billiar/internal/pkg/config"

	"go.uber.org/fx"
)

var BookingModule = fx.Module("booking",
	fx.Provide(
		NewCivilZone,
	),
)

// NewCivilZone loads the venue timezone every civil-time rule runs in.
func NewCivilZone(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Booking.CivilZone)
}
