package repository

import (
	"context"

	"bookcase-rental/internal/domain/deposit"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/infra/repository/converter"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/errs"
)

type DepositOffsetWriteQueries interface {
	CreateDepositOffset(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDepositOffsetParams) (int64, error)
}

type DepositOffsetRepository struct {
	queries DepositOffsetWriteQueries
}

func NewDepositOffsetRepository(queries DepositOffsetWriteQueries) *DepositOffsetRepository {
	return &DepositOffsetRepository{queries: queries}
}

func (r *DepositOffsetRepository) Create(ctx context.Context, tx sqlc.DBTX, off *deposit.Offset) error {
	rows, err := r.queries.CreateDepositOffset(ctx, tx, converter.OffsetToCreateParams(off))
	if err != nil {
		return infra.WrapRepoErr("failed to create deposit offset", err)
	}
	if rows != 1 {
		return errs.Mark(errs.Newf("deposit offset insert affected %d rows", rows), errs.ErrPersistenceIntegrity)
	}
	return nil
}
