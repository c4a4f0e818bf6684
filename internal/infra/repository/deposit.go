package repository

import (
	"context"

	"bookcase-rental/internal/domain/deposit"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/infra/repository/converter"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DepositWriteQueries interface {
	CreateDeposit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDepositParams) (int64, error)
	GetDepositByOwnerForUpdate(ctx context.Context, db sqlc.DBTX, bookOwnerID uuid.UUID) (sqlc.Deposits, error)
	UpdateDeposit(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDepositParams) (int64, error)
}

type DepositRepository struct {
	queries DepositWriteQueries
}

func NewDepositRepository(queries DepositWriteQueries) *DepositRepository {
	return &DepositRepository{queries: queries}
}

// Create inserts d unless the owner already has a deposit; false means a concurrent insert won.
func (r *DepositRepository) Create(ctx context.Context, tx sqlc.DBTX, d *deposit.Deposit) (bool, error) {
	rows, err := r.queries.CreateDeposit(ctx, tx, converter.DepositToCreateParams(d))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create deposit", err)
	}
	switch rows {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errs.Mark(errs.Newf("deposit insert affected %d rows", rows), errs.ErrPersistenceIntegrity)
	}
}

func (r *DepositRepository) LockByOwner(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID) (*deposit.Deposit, error) {
	row, err := r.queries.GetDepositByOwnerForUpdate(ctx, tx, ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deposit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock deposit", err)
	}
	return converter.DepositFromRow(row)
}

// Save writes back a deposit previously read with LockByOwner.
func (r *DepositRepository) Save(ctx context.Context, tx sqlc.DBTX, d *deposit.Deposit) error {
	rows, err := r.queries.UpdateDeposit(ctx, tx, converter.DepositToUpdateParams(d))
	if err != nil {
		return infra.WrapRepoErr("failed to update deposit", err)
	}
	if rows != 1 {
		return errs.Mark(errs.Newf("deposit update affected %d rows", rows), errs.ErrPersistenceIntegrity)
	}
	return nil
}
