package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"bookcase-rental/internal/domain/deposit"
	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/infra/readstore"
	"bookcase-rental/internal/infra/repository"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted; the row locks taken by repositories serialize conflicting writers
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	occupancyRepo    shared.OccupancyRepository
	obligationRepo   shared.ObligationRepository
	depositRepo      shared.DepositRepository
	offsetRepo       shared.DepositOffsetRepository
	itemRepo         shared.ItemRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Occupancies() shared.OccupancyRepository {
	if t.occupancyRepo == nil {
		t.occupancyRepo = repository.NewOccupancyRepository(t.uow.q)
	}
	return t.occupancyRepo
}

func (t *pgTx) Obligations() shared.ObligationRepository {
	if t.obligationRepo == nil {
		t.obligationRepo = repository.NewObligationRepository(t.uow.q)
	}
	return t.obligationRepo
}

func (t *pgTx) Deposits() shared.DepositRepository {
	if t.depositRepo == nil {
		t.depositRepo = repository.NewDepositRepository(t.uow.q)
	}
	return t.depositRepo
}

func (t *pgTx) DepositOffsets() shared.DepositOffsetRepository {
	if t.offsetRepo == nil {
		t.offsetRepo = repository.NewDepositOffsetRepository(t.uow.q)
	}
	return t.offsetRepo
}

func (t *pgTx) Items() shared.ItemRepository {
	if t.itemRepo == nil {
		t.itemRepo = repository.NewItemRepository(t.uow.q)
	}
	return t.itemRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	bookCaseStore   *readstore.BookCaseReadStore
	occupancyStore  *readstore.OccupancyReadStore
	obligationStore *readstore.ObligationReadStore
	depositStore    *readstore.DepositReadStore
}

func (r *commandReads) bookCases() *readstore.BookCaseReadStore {
	if r.bookCaseStore == nil {
		r.bookCaseStore = readstore.NewBookCaseReadStore(r.uow.q, r.dbtx)
	}
	return r.bookCaseStore
}

func (r *commandReads) occupancies() *readstore.OccupancyReadStore {
	if r.occupancyStore == nil {
		r.occupancyStore = readstore.NewOccupancyReadStore(r.uow.q, r.dbtx)
	}
	return r.occupancyStore
}

func (r *commandReads) obligations() *readstore.ObligationReadStore {
	if r.obligationStore == nil {
		r.obligationStore = readstore.NewObligationReadStore(r.uow.q, r.dbtx)
	}
	return r.obligationStore
}

func (r *commandReads) deposits() *readstore.DepositReadStore {
	if r.depositStore == nil {
		r.depositStore = readstore.NewDepositReadStore(r.uow.q, r.dbtx)
	}
	return r.depositStore
}

func (r *commandReads) BookCaseByID(ctx context.Context, id uuid.UUID) (*shared.BookCaseSnapshot, error) {
	return r.bookCases().FindByID(ctx, id)
}

func (r *commandReads) HasUnsettledSales(ctx context.Context, bookCaseID uuid.UUID) (bool, error) {
	return r.bookCases().HasUnsettledSales(ctx, bookCaseID)
}

func (r *commandReads) ActiveOccupancyByBookCase(ctx context.Context, bookCaseID uuid.UUID) (*occupancy.Occupancy, error) {
	return r.occupancies().FindActiveByBookCase(ctx, bookCaseID)
}

func (r *commandReads) ActiveOccupancies(ctx context.Context) ([]*occupancy.Occupancy, error) {
	return r.occupancies().ListActive(ctx)
}

func (r *commandReads) CountActiveOccupancies(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return r.occupancies().CountActiveByOwner(ctx, ownerID)
}

func (r *commandReads) OverdueObligations(ctx context.Context, occupancyID uuid.UUID, before settlement.Month) ([]*settlement.Obligation, error) {
	return r.obligations().ListOverdue(ctx, occupancyID, before)
}

func (r *commandReads) DepositByOwner(ctx context.Context, ownerID uuid.UUID) (*deposit.Deposit, error) {
	return r.deposits().FindByOwner(ctx, ownerID)
}
