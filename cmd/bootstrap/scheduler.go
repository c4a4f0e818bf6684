package bootstrap

import (
	"context"
	"log/slog"

	"bookcase-rental/internal/infra/scheduler"
	"bookcase-rental/internal/pkg/clock"
	"bookcase-rental/internal/pkg/config"
	"bookcase-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, engine commands.ReconciliationCommands, clk clock.Clock, logger *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		logger.Info("overdue scheduler disabled")
		return nil
	}

	s, err := scheduler.New(cfg.Scheduler, engine, clk)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
