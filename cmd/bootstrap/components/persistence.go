package components

import (
	"billiar/internal/infra/asset"
	"billiar/internal/infra/db"
	"billiar/internal/infra/repository"
	"billiar/internal/infra/uow"
	"billiar/internal/pkg/config"
	"billiar/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
		NewAssetStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewAssetStore(cfg config.Config) shared.AssetStore {
	return asset.NewHTTPStore(cfg.Assets)
}
