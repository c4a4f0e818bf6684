package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"bookcase-rental/internal/domain/deposit"
	"bookcase-rental/internal/domain/money"
	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/pkg/clock"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type OccupyRequest struct {
	OwnerID        uuid.UUID
	BookCaseIDs    []uuid.UUID
	ExpirationDate time.Time
	DepositAmount  int64
}

type OccupancyCommands interface {
	Occupy(ctx context.Context, req OccupyRequest) ([]*occupancy.Occupancy, error)
	UnOccupy(ctx context.Context, bookCaseIDs []uuid.UUID) ([]uuid.UUID, error)
	// Evict releases a suspended occupancy and queues an eviction notice in the same transaction.
	Evict(ctx context.Context, rec *occupancy.Occupancy) ([]uuid.UUID, error)
}

type occupancyUseCaseImpl struct {
	uow       shared.UnitOfWork
	generator SettlementGenerator
	clock     clock.Clock
}

func NewOccupancyUseCase(uow shared.UnitOfWork, generator SettlementGenerator, clk clock.Clock) OccupancyCommands {
	return &occupancyUseCaseImpl{
		uow:       uow,
		generator: generator,
		clock:     clk,
	}
}

func (uc *occupancyUseCaseImpl) Occupy(ctx context.Context, req OccupyRequest) ([]*occupancy.Occupancy, error) {
	if len(req.BookCaseIDs) == 0 {
		return nil, errs.ErrEmptyRequest
	}
	depositAmount, err := money.New(req.DepositAmount)
	if err != nil || !depositAmount.IsPositive() {
		return nil, errs.ErrInvalidDepositAmount
	}
	if err := rejectDuplicates(req.BookCaseIDs); err != nil {
		return nil, err
	}

	var created []*occupancy.Occupancy
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = make([]*occupancy.Occupancy, 0, len(req.BookCaseIDs))
		now := uc.clock.Now()

		for _, bookCaseID := range req.BookCaseIDs {
			rec, derr := uc.occupyOne(ctx, tx, req.OwnerID, bookCaseID, req.ExpirationDate, now)
			if derr != nil {
				return derr
			}
			created = append(created, rec)
		}

		return holdDeposit(ctx, tx, req.OwnerID, depositAmount)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("book cases occupied",
		"owner_id", req.OwnerID.String(),
		"count", len(created),
		"deposit_amount", depositAmount.Amount())
	return created, nil
}

func (uc *occupancyUseCaseImpl) occupyOne(
	ctx context.Context,
	tx shared.Tx,
	ownerID, bookCaseID uuid.UUID,
	expiration, now time.Time,
) (*occupancy.Occupancy, error) {
	bookCase, err := tx.Reads().BookCaseByID(ctx, bookCaseID)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrBookCaseNotFound)
	}

	_, err = tx.Reads().ActiveOccupancyByBookCase(ctx, bookCaseID)
	switch {
	case err == nil:
		return nil, errs.Mark(errs.Newf("book case %s is already occupied", bookCaseID), errs.ErrAlreadyOccupied)
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	rec, err := occupancy.NewOccupancy(bookCaseID, ownerID, now, expiration)
	if err != nil {
		if errors.Is(err, occupancy.ErrExpirationInPast) {
			return nil, errs.Mark(err, errs.ErrInvalidOccupancyPeriod)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := tx.Occupancies().Create(ctx, tx.DB(), rec); err != nil {
		// lost the race on the active-occupancy unique index
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrAlreadyOccupied)
		}
		return nil, err
	}

	if _, err := uc.generator.Generate(ctx, tx, rec.ID(), ownerID, rec.OccupiedAt(), rec.ExpirationDate(), bookCase.MonthlyPrice); err != nil {
		return nil, err
	}
	return rec, nil
}

// holdDeposit opens the owner's deposit or tops up the existing one.
func holdDeposit(ctx context.Context, tx shared.Tx, ownerID uuid.UUID, amount money.Money) error {
	d, err := tx.Deposits().LockByOwner(ctx, tx.DB(), ownerID)
	switch {
	case err == nil:
	case infra.IsKind(err, infra.KindNotFound):
		fresh, derr := deposit.NewDeposit(ownerID, amount)
		if derr != nil {
			return errs.Mark(derr, errs.ErrInvalidDepositAmount)
		}
		created, derr := tx.Deposits().Create(ctx, tx.DB(), fresh)
		if derr != nil || created {
			return derr
		}
		// a concurrent occupy inserted the row first
		if d, err = tx.Deposits().LockByOwner(ctx, tx.DB(), ownerID); err != nil {
			return err
		}
	default:
		return err
	}

	if err := d.TopUp(amount); err != nil {
		return errs.Mark(err, errs.ErrInvalidDepositAmount)
	}
	return tx.Deposits().Save(ctx, tx.DB(), d)
}

func (uc *occupancyUseCaseImpl) UnOccupy(ctx context.Context, bookCaseIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(bookCaseIDs) == 0 {
		return nil, errs.ErrEmptyRequest
	}

	var itemIDs []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, derr := uc.unOccupyInTx(ctx, tx, bookCaseIDs)
		itemIDs = ids
		return derr
	})
	if err != nil {
		return nil, err
	}

	slog.Info("book cases released", "book_cases", len(bookCaseIDs), "items_pending_retrieval", len(itemIDs))
	return itemIDs, nil
}

func (uc *occupancyUseCaseImpl) Evict(ctx context.Context, rec *occupancy.Occupancy) ([]uuid.UUID, error) {
	var itemIDs []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, derr := uc.unOccupyInTx(ctx, tx, []uuid.UUID{rec.BookCaseID()})
		if derr != nil {
			return derr
		}
		itemIDs = ids

		payload, derr := json.Marshal(evictionNotice{
			OwnerID:     rec.OwnerID(),
			OccupancyID: rec.ID(),
			BookCaseID:  rec.BookCaseID(),
			ItemIDs:     ids,
		})
		if derr != nil {
			return errs.Wrap(derr, "failed to encode eviction notice")
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindEviction, rec.OwnerID().String(), payload, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return itemIDs, nil
}

type evictionNotice struct {
	OwnerID     uuid.UUID   `json:"owner_id"`
	OccupancyID uuid.UUID   `json:"occupancy_id"`
	BookCaseID  uuid.UUID   `json:"book_case_id"`
	ItemIDs     []uuid.UUID `json:"item_ids"`
}

// unOccupyInTx validates every book case before writing anything.
// Deposits are locked before occupancies, the same order reconciliation takes them.
func (uc *occupancyUseCaseImpl) unOccupyInTx(ctx context.Context, tx shared.Tx, bookCaseIDs []uuid.UUID) ([]uuid.UUID, error) {
	ids := dedupe(bookCaseIDs)
	actives := make([]*occupancy.Occupancy, 0, len(ids))
	var owners []uuid.UUID
	seenOwner := make(map[uuid.UUID]struct{})

	for _, id := range ids {
		if _, err := tx.Reads().BookCaseByID(ctx, id); err != nil {
			return nil, mapNotFound(err, errs.ErrBookCaseNotFound)
		}

		active, err := tx.Reads().ActiveOccupancyByBookCase(ctx, id)
		if err != nil {
			return nil, mapNotFound(err, errs.ErrNotOccupied)
		}

		unsettled, err := tx.Reads().HasUnsettledSales(ctx, id)
		if err != nil {
			return nil, err
		}
		if unsettled {
			return nil, errs.Mark(errs.Newf("book case %s has unsettled sales", id), errs.ErrUnsettledSalesExist)
		}

		actives = append(actives, active)
		if _, ok := seenOwner[active.OwnerID()]; !ok {
			seenOwner[active.OwnerID()] = struct{}{}
			owners = append(owners, active.OwnerID())
		}
	}

	deposits := make(map[uuid.UUID]*deposit.Deposit, len(owners))
	for _, ownerID := range owners {
		d, err := tx.Deposits().LockByOwner(ctx, tx.DB(), ownerID)
		switch {
		case err == nil:
			deposits[ownerID] = d
		case !infra.IsKind(err, infra.KindNotFound):
			return nil, err
		}
	}

	now := uc.clock.Now()
	for _, active := range actives {
		if err := vacate(ctx, tx, active.ID(), now); err != nil {
			return nil, err
		}
	}

	itemIDs, err := tx.Items().MarkPendingRetrieval(ctx, tx.DB(), ids)
	if err != nil {
		return nil, err
	}

	for _, ownerID := range owners {
		d, ok := deposits[ownerID]
		if !ok {
			continue
		}
		remaining, err := tx.Reads().CountActiveOccupancies(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if remaining > 0 {
			continue
		}
		if err := d.MarkReturned(); err != nil {
			if errors.Is(err, deposit.ErrAlreadyReturned) {
				continue
			}
			return nil, err
		}
		if err := tx.Deposits().Save(ctx, tx.DB(), d); err != nil {
			return nil, err
		}
		slog.Info("deposit returned", "owner_id", ownerID.String(), "remaining", d.Remaining().Amount())
	}

	return itemIDs, nil
}

func vacate(ctx context.Context, tx shared.Tx, occupancyID uuid.UUID, at time.Time) error {
	rec, err := tx.Occupancies().LockByID(ctx, tx.DB(), occupancyID)
	if err != nil {
		return err
	}
	if err := rec.Vacate(at); err != nil {
		// a concurrent release won between validation and lock
		if errors.Is(err, occupancy.ErrNotActive) {
			return errs.Mark(errs.Newf("book case %s is no longer occupied", rec.BookCaseID()), errs.ErrNotOccupied)
		}
		return err
	}
	return tx.Occupancies().Save(ctx, tx.DB(), rec)
}

func mapNotFound(err error, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, target)
	}
	return err
}

func rejectDuplicates(ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return errs.Mark(errs.Newf("book case %s requested twice", id), errs.ErrAlreadyOccupied)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
