package shared

import (
	"context"
	"time"

	"bookcase-rental/internal/domain/deposit"
	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/internal/domain/settlement"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Occupancies() OccupancyRepository
	Obligations() ObligationRepository
	Deposits() DepositRepository
	DepositOffsets() DepositOffsetRepository
	Items() ItemRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups commands need before deciding what to write.
// Inside a Tx they see the transaction's own writes.
type CommandReads interface {
	BookCaseByID(ctx context.Context, id uuid.UUID) (*BookCaseSnapshot, error)
	HasUnsettledSales(ctx context.Context, bookCaseID uuid.UUID) (bool, error)
	ActiveOccupancyByBookCase(ctx context.Context, bookCaseID uuid.UUID) (*occupancy.Occupancy, error)
	ActiveOccupancies(ctx context.Context) ([]*occupancy.Occupancy, error)
	CountActiveOccupancies(ctx context.Context, ownerID uuid.UUID) (int64, error)
	OverdueObligations(ctx context.Context, occupancyID uuid.UUID, before settlement.Month) ([]*settlement.Obligation, error)
	DepositByOwner(ctx context.Context, ownerID uuid.UUID) (*deposit.Deposit, error)
}

type OccupancyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rec *occupancy.Occupancy) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*occupancy.Occupancy, error)
	// Save persists the suspend and vacate transitions of a locked record.
	Save(ctx context.Context, tx sqlc.DBTX, rec *occupancy.Occupancy) error
}

type ObligationRepository interface {
	// Create reports affected rows so callers can detect a silent insert failure.
	Create(ctx context.Context, tx sqlc.DBTX, ob *settlement.Obligation) (int64, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*settlement.Obligation, error)
	SaveDeduction(ctx context.Context, tx sqlc.DBTX, ob *settlement.Obligation) error
}

type DepositRepository interface {
	// Create reports false when the owner already has a deposit.
	Create(ctx context.Context, tx sqlc.DBTX, d *deposit.Deposit) (bool, error)
	LockByOwner(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID) (*deposit.Deposit, error)
	Save(ctx context.Context, tx sqlc.DBTX, d *deposit.Deposit) error
}

type DepositOffsetRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, off *deposit.Offset) error
}

type ItemRepository interface {
	MarkPendingRetrieval(ctx context.Context, tx sqlc.DBTX, bookCaseIDs []uuid.UUID) ([]uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
