package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/pkg/clock"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

const failureStackLines = 12

// ReconciliationReport summarizes one overdue run.
type ReconciliationReport struct {
	Month           string        `json:"month"`
	OwnersProcessed int           `json:"owners_processed"`
	OwnersFailed    int           `json:"owners_failed"`
	Evictions       int           `json:"evictions"`
	Suspensions     int           `json:"suspensions"`
	Offsets         int           `json:"offsets"`
	OffsetTotal     int64         `json:"offset_total"`
	StartedAt       time.Time     `json:"started_at"`
	Duration        time.Duration `json:"duration"`
}

// ReconciliationRecorder receives run outcomes, typically for metrics.
type ReconciliationRecorder interface {
	RecordRun(report ReconciliationReport)
	RecordOwnerFailure()
}

type NopRecorder struct{}

func (NopRecorder) RecordRun(ReconciliationReport) {}
func (NopRecorder) RecordOwnerFailure()            {}

type ReconciliationCommands interface {
	ProcessMonthlyOverdue(ctx context.Context, current settlement.Month) (*ReconciliationReport, error)
}

type reconciliationUseCaseImpl struct {
	uow         shared.UnitOfWork
	occupancies OccupancyCommands
	clock       clock.Clock
	recorder    ReconciliationRecorder
}

func NewReconciliationUseCase(uow shared.UnitOfWork, occupancies OccupancyCommands, clk clock.Clock, recorder ReconciliationRecorder) ReconciliationCommands {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &reconciliationUseCaseImpl{
		uow:         uow,
		occupancies: occupancies,
		clock:       clk,
		recorder:    recorder,
	}
}

type ownerOutcome struct {
	evictions   int
	suspensions int
	offsets     int
	offsetTotal int64
}

// ProcessMonthlyOverdue settles rent owed for months before current from each owner's deposit.
// Owners are handled one at a time; a failing owner is logged and skipped.
func (uc *reconciliationUseCaseImpl) ProcessMonthlyOverdue(ctx context.Context, current settlement.Month) (*ReconciliationReport, error) {
	if current.IsZero() {
		return nil, errs.Mark(settlement.ErrInvalidMonth, errs.ErrDomainValidation)
	}

	report := &ReconciliationReport{Month: current.String(), StartedAt: uc.clock.Now()}
	defer func() {
		report.Duration = uc.clock.Now().Sub(report.StartedAt)
		uc.recorder.RecordRun(*report)
	}()

	records, err := uc.uow.CommandReads().ActiveOccupancies(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load active occupancies")
	}

	for _, group := range occupancy.GroupByOwner(records) {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		outcome, err := uc.processOwnerIsolated(ctx, group, current)
		report.OwnersProcessed++
		report.Evictions += outcome.evictions
		report.Suspensions += outcome.suspensions
		report.Offsets += outcome.offsets
		report.OffsetTotal += outcome.offsetTotal

		if err != nil {
			report.OwnersFailed++
			uc.recorder.RecordOwnerFailure()
			slog.Error("overdue reconciliation failed for owner",
				"owner_id", group.OwnerID.String(),
				"month", current.String(),
				"error", err.Error(),
				"stack", errs.ExtractStackLines(err, failureStackLines))
		}
	}

	slog.Info("overdue reconciliation finished",
		"month", report.Month,
		"owners", report.OwnersProcessed,
		"failed", report.OwnersFailed,
		"evictions", report.Evictions,
		"suspensions", report.Suspensions,
		"offsets", report.Offsets,
		"offset_total", report.OffsetTotal)
	return report, nil
}

func (uc *reconciliationUseCaseImpl) processOwnerIsolated(ctx context.Context, group occupancy.OwnerGroup, current settlement.Month) (outcome ownerOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.Newf("panic while reconciling owner: %v", r)
		}
	}()
	err = uc.processOwner(ctx, group, current, &outcome)
	return outcome, err
}

func (uc *reconciliationUseCaseImpl) processOwner(ctx context.Context, group occupancy.OwnerGroup, current settlement.Month, outcome *ownerOutcome) error {
	suspended, collectable := occupancy.SplitSuspended(group.Records)

	// suspended last run: evict before collecting anything
	for _, rec := range suspended {
		if _, err := uc.occupancies.Evict(ctx, rec); err != nil {
			return errs.Wrapf(err, "failed to evict occupancy %s", rec.ID())
		}
		outcome.evictions++
		slog.Info("occupancy evicted",
			"owner_id", group.OwnerID.String(),
			"occupancy_id", rec.ID().String(),
			"book_case_id", rec.BookCaseID().String())
	}

	var overdue []*settlement.Obligation
	for _, rec := range collectable {
		obs, err := uc.uow.CommandReads().OverdueObligations(ctx, rec.ID(), current)
		if err != nil {
			return err
		}
		overdue = append(overdue, obs...)
	}
	if len(overdue) == 0 {
		return nil
	}
	settlement.SortOldestFirst(overdue)

	if _, err := uc.uow.CommandReads().DepositByOwner(ctx, group.OwnerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("owner has overdue rent but no deposit",
				"owner_id", group.OwnerID.String(),
				"overdue", len(overdue))
			return nil
		}
		return err
	}

	for _, ob := range overdue {
		step, err := uc.offsetOne(ctx, group.OwnerID, ob.ID(), collectable, current)
		if err != nil {
			return err
		}
		outcome.offsets += step.offsets
		outcome.offsetTotal += step.offsetTotal
		outcome.suspensions += step.suspensions
		if step.stop {
			break
		}
	}
	return nil
}

type offsetStep struct {
	ownerOutcome
	stop bool
}

// offsetOne applies the deposit to one obligation in its own transaction.
func (uc *reconciliationUseCaseImpl) offsetOne(
	ctx context.Context,
	ownerID, obligationID uuid.UUID,
	records []*occupancy.Occupancy,
	current settlement.Month,
) (offsetStep, error) {
	var step offsetStep
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		step = offsetStep{}
		now := uc.clock.Now()

		dep, err := tx.Deposits().LockByOwner(ctx, tx.DB(), ownerID)
		if err != nil {
			return err
		}
		ob, err := tx.Obligations().LockByID(ctx, tx.DB(), obligationID)
		if err != nil {
			return err
		}

		// settled by an earlier run that died before finishing
		if !ob.IsOverdueAt(current) {
			return nil
		}

		if dep.IsExhausted() {
			n, err := uc.suspend(ctx, tx, ownerID, records, current, now)
			if err != nil {
				return err
			}
			step.suspensions = n
			step.stop = true
			return nil
		}

		off, err := dep.OffsetAgainst(ob, now)
		if err != nil {
			return err
		}
		if err := tx.Obligations().SaveDeduction(ctx, tx.DB(), ob); err != nil {
			return err
		}
		if err := tx.Deposits().Save(ctx, tx.DB(), dep); err != nil {
			return err
		}
		if err := tx.DepositOffsets().Create(ctx, tx.DB(), off); err != nil {
			return err
		}

		step.offsets = 1
		step.offsetTotal = off.Amount().Amount()
		return nil
	})
	return step, err
}

type suspensionNotice struct {
	OwnerID      uuid.UUID   `json:"owner_id"`
	Month        string      `json:"month"`
	OccupancyIDs []uuid.UUID `json:"occupancy_ids"`
}

func (uc *reconciliationUseCaseImpl) suspend(
	ctx context.Context,
	tx shared.Tx,
	ownerID uuid.UUID,
	records []*occupancy.Occupancy,
	current settlement.Month,
	now time.Time,
) (int, error) {
	var ids []uuid.UUID
	for _, snapshot := range records {
		if snapshot.IsSuspended() {
			continue
		}
		rec, err := tx.Occupancies().LockByID(ctx, tx.DB(), snapshot.ID())
		if err != nil {
			return 0, err
		}
		if err := rec.Suspend(now); err != nil {
			// released or suspended since the run started
			if errors.Is(err, occupancy.ErrNotActive) || errors.Is(err, occupancy.ErrAlreadySuspended) {
				continue
			}
			return 0, err
		}
		if err := tx.Occupancies().Save(ctx, tx.DB(), rec); err != nil {
			return 0, err
		}
		ids = append(ids, rec.ID())
	}
	if len(ids) == 0 {
		return 0, nil
	}

	payload, err := json.Marshal(suspensionNotice{OwnerID: ownerID, Month: current.String(), OccupancyIDs: ids})
	if err != nil {
		return 0, errs.Wrap(err, "failed to encode suspension notice")
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindSuspension, ownerID.String(), payload, now); err != nil {
		return 0, err
	}

	slog.Warn("deposit exhausted, occupancies suspended",
		"owner_id", ownerID.String(),
		"month", current.String(),
		"suspended", len(ids))
	return len(ids), nil
}
