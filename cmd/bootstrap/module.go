package bootstrap

import (
	"billiar/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	BookingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
