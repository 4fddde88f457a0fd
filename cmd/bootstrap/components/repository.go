package components

import (
	"parking-monitor/internal/infra/dbquery"
	"parking-monitor/internal/infra/readstore"
	"parking-monitor/internal/infra/uow"
	"parking-monitor/internal/usecase/queries"
	"parking-monitor/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("repository/readstore",
	fx.Provide(
		// Parking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ParkingViewQueries)),
		),
		fx.Annotate(
			readstore.NewParkingReadStore,
			fx.As(new(queries.ParkingReadStore)),
		),
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentViewQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var unitOfWorkModule = fx.Module("repository/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *dbquery.Queries {
	return dbquery.New()
}

func NewDBTX(pool *pgxpool.Pool) dbquery.DBTX {
	return pool
}
