package components

import (
	"bookcase-rental/internal/infra/readstore"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/infra/uow"
	"bookcase-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Command-side reads and repositories are built per transaction inside the unit of work;
// only the query side needs pool-bound read stores here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Occupancy
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OccupancyReadQueries)),
		),
		fx.Annotate(
			readstore.NewOccupancyReadStore,
			fx.As(new(queries.OccupancyReadStore)),
		),
		// Obligation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ObligationReadQueries)),
		),
		fx.Annotate(
			readstore.NewObligationReadStore,
			fx.As(new(queries.ObligationReadStore)),
		),
		// Deposit
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DepositReadQueries)),
		),
		fx.Annotate(
			readstore.NewDepositReadStore,
			fx.As(new(queries.DepositReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
