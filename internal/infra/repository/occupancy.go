package repository

import (
	"context"

	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/infra/repository/converter"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OccupancyWriteQueries interface {
	CreateOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOccupancyParams) (int64, error)
	GetOccupancyForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Occupancies, error)
	UpdateOccupancyState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOccupancyStateParams) (int64, error)
}

type OccupancyRepository struct {
	queries OccupancyWriteQueries
}

func NewOccupancyRepository(queries OccupancyWriteQueries) *OccupancyRepository {
	return &OccupancyRepository{queries: queries}
}

func (r *OccupancyRepository) Create(ctx context.Context, tx sqlc.DBTX, rec *occupancy.Occupancy) error {
	rows, err := r.queries.CreateOccupancy(ctx, tx, converter.OccupancyToCreateParams(rec))
	if err != nil {
		return infra.WrapRepoErr("failed to create occupancy", err)
	}
	if rows != 1 {
		return errs.Mark(errs.Newf("occupancy insert affected %d rows", rows), errs.ErrPersistenceIntegrity)
	}
	return nil
}

// LockByID reads the occupancy with FOR UPDATE.
func (r *OccupancyRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*occupancy.Occupancy, error) {
	row, err := r.queries.GetOccupancyForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("occupancy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock occupancy", err)
	}
	return converter.OccupancyFromRow(row), nil
}

// Save writes back the vacate and suspend timestamps of a locked occupancy.
func (r *OccupancyRepository) Save(ctx context.Context, tx sqlc.DBTX, rec *occupancy.Occupancy) error {
	rows, err := r.queries.UpdateOccupancyState(ctx, tx, converter.OccupancyToStateParams(rec))
	if err != nil {
		return infra.WrapRepoErr("failed to update occupancy", err)
	}
	if rows != 1 {
		return errs.Mark(errs.Newf("occupancy update affected %d rows", rows), errs.ErrPersistenceIntegrity)
	}
	return nil
}
