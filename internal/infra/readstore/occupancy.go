package readstore

import (
	"context"

	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/infra/repository/converter"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OccupancyReadQueries interface {
	GetOccupancyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Occupancies, error)
	GetActiveOccupancyByBookCase(ctx context.Context, db sqlc.DBTX, bookCaseID uuid.UUID) (sqlc.Occupancies, error)
	ListActiveOccupancies(ctx context.Context, db sqlc.DBTX) ([]sqlc.Occupancies, error)
	ListActiveOccupanciesByOwner(ctx context.Context, db sqlc.DBTX, bookOwnerID uuid.UUID) ([]sqlc.Occupancies, error)
	CountActiveOccupanciesByOwner(ctx context.Context, db sqlc.DBTX, bookOwnerID uuid.UUID) (int64, error)
}

type OccupancyReadStore struct {
	queries OccupancyReadQueries
	db      sqlc.DBTX
}

func NewOccupancyReadStore(queries OccupancyReadQueries, db sqlc.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OccupancyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*occupancy.Occupancy, error) {
	row, err := r.queries.GetOccupancyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("occupancy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find occupancy by ID", err)
	}
	return converter.OccupancyFromRow(row), nil
}

func (r *OccupancyReadStore) FindActiveByBookCase(ctx context.Context, bookCaseID uuid.UUID) (*occupancy.Occupancy, error) {
	row, err := r.queries.GetActiveOccupancyByBookCase(ctx, r.db, bookCaseID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active occupancy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active occupancy", err)
	}
	return converter.OccupancyFromRow(row), nil
}

// ListActive returns every active occupancy ordered by occupied_at, then id.
func (r *OccupancyReadStore) ListActive(ctx context.Context) ([]*occupancy.Occupancy, error) {
	rows, err := r.queries.ListActiveOccupancies(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active occupancies", err)
	}
	return converter.OccupanciesFromRows(rows), nil
}

func (r *OccupancyReadStore) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*occupancy.Occupancy, error) {
	rows, err := r.queries.ListActiveOccupanciesByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active occupancies by owner", err)
	}
	return converter.OccupanciesFromRows(rows), nil
}

func (r *OccupancyReadStore) CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	n, err := r.queries.CountActiveOccupanciesByOwner(ctx, r.db, ownerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active occupancies", err)
	}
	return n, nil
}
