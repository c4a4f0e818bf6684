package repository

import (
	"context"

	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/infra/repository/converter"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ObligationWriteQueries interface {
	CreateRentalObligation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRentalObligationParams) (int64, error)
	GetRentalObligationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RentalObligations, error)
	UpdateRentalObligationDeduction(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRentalObligationDeductionParams) (int64, error)
}

type ObligationRepository struct {
	queries ObligationWriteQueries
}

func NewObligationRepository(queries ObligationWriteQueries) *ObligationRepository {
	return &ObligationRepository{queries: queries}
}

func (r *ObligationRepository) Create(ctx context.Context, tx sqlc.DBTX, ob *settlement.Obligation) (int64, error) {
	rows, err := r.queries.CreateRentalObligation(ctx, tx, converter.ObligationToCreateParams(ob))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create rental obligation", err)
	}
	return rows, nil
}

// LockByID reads the obligation with FOR UPDATE.
func (r *ObligationRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*settlement.Obligation, error) {
	row, err := r.queries.GetRentalObligationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental obligation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock rental obligation", err)
	}
	return converter.ObligationFromRow(row)
}

func (r *ObligationRepository) SaveDeduction(ctx context.Context, tx sqlc.DBTX, ob *settlement.Obligation) error {
	rows, err := r.queries.UpdateRentalObligationDeduction(ctx, tx, converter.ObligationToDeductionParams(ob))
	if err != nil {
		return infra.WrapRepoErr("failed to update rental obligation", err)
	}
	if rows != 1 {
		return errs.Mark(errs.Newf("rental obligation update affected %d rows", rows), errs.ErrPersistenceIntegrity)
	}
	return nil
}
