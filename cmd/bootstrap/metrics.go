package bootstrap

import (
	"bookcase-rental/internal/infra/metrics"
	"bookcase-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(r *metrics.Registry) commands.ReconciliationRecorder {
			return r
		},
	),
)
