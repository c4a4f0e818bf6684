package components

import (
	"bookcase-rental/internal/handler"
	"bookcase-rental/internal/handler/api"
	"bookcase-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOccupancyHandler,
		api.NewDepositHandler,
		api.NewReconciliationHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
