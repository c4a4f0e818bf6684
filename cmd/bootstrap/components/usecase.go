package components

import (
	"bookcase-rental/internal/pkg/clock"
	"bookcase-rental/internal/pkg/config"
	"bookcase-rental/internal/usecase"
	"bookcase-rental/internal/usecase/commands"
	"bookcase-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

// Occupancy timestamps and the scheduler's month both follow the scheduler's zone.
var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) clock.Clock {
		return clock.NewRealClockIn(cfg.Scheduler.Location())
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSettlementGenerator,
		commands.NewOccupancyUseCase,
		commands.NewReconciliationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOccupancyQueries,
		queries.NewDepositQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
