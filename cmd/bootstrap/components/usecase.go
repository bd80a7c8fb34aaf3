package components

import (
	"time"

	"billiar/internal/pkg/clock"
	"billiar/internal/pkg/config"
	"billiar/internal/usecase"
	"billiar/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		NewAvailabilityUseCase,
		usecase.NewScheduleUseCase,
		usecase.NewReservationUseCase,
		usecase.NewBlockUseCase,
		usecase.NewRefundUseCase,
	),
)

func NewAvailabilityUseCase(uow shared.UnitOfWork, clk clock.Clock, zone *time.Location, cfg config.Config) usecase.AvailabilityUseCase {
	return usecase.NewAvailabilityUseCase(uow, clk, zone, cfg.Booking.ToleranceMinutes)
}
