package components

import (
	"billiar/internal/handler"
	"billiar/internal/handler/api"
	"billiar/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewScheduleHandler,
		api.NewReservationHandler,
		api.NewBlockHandler,
		api.NewRefundHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
