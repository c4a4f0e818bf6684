package scheduler

import (
	"context"
	"log/slog"
	"time"

	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/pkg/clock"
	"bookcase-rental/internal/pkg/config"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const runTimeout = 2 * time.Hour

// Scheduler triggers the monthly overdue reconciliation on a cron spec.
type Scheduler struct {
	cron   *cron.Cron
	engine commands.ReconciliationCommands
	clock  clock.Clock
	loc    *time.Location

	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg config.SchedulerConfig, engine commands.ReconciliationCommands, clk clock.Clock) (*Scheduler, error) {
	loc := cfg.Location()
	logger := slogLogger{}
	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		engine: engine,
		clock:  clk,
		loc:    loc,
		ctx:    ctx,
		cancel: cancel,
	}

	if _, err := s.cron.AddFunc(cfg.Spec, s.tick); err != nil {
		cancel()
		return nil, errs.Wrapf(err, "invalid scheduler spec %q", cfg.Spec)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		slog.Info("scheduler started", "next_run", e.Next.Format(time.RFC3339))
	}
}

// Stop cancels a running job and waits for it to return or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce reconciles the month the clock currently falls in, in the scheduler's zone.
func (s *Scheduler) RunOnce(ctx context.Context) (*commands.ReconciliationReport, error) {
	month := settlement.MonthOf(s.clock.Now().In(s.loc))
	return s.engine.ProcessMonthlyOverdue(ctx, month)
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(s.ctx, runTimeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		slog.Error("scheduled overdue reconciliation failed", "error", err.Error())
	}
}

// slogLogger adapts cron's logger to slog.
type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append([]any{"error", err.Error()}, keysAndValues...)...)
}
