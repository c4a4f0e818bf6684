package readstore

import (
	"context"

	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/infra/repository/converter"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ObligationReadQueries interface {
	ListObligationsByOccupancy(ctx context.Context, db sqlc.DBTX, occupancyID uuid.UUID) ([]sqlc.RentalObligations, error)
	ListOverdueObligationsByOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverdueObligationsByOccupancyParams) ([]sqlc.RentalObligations, error)
}

type ObligationReadStore struct {
	queries ObligationReadQueries
	db      sqlc.DBTX
}

func NewObligationReadStore(queries ObligationReadQueries, db sqlc.DBTX) *ObligationReadStore {
	return &ObligationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ObligationReadStore) ListByOccupancy(ctx context.Context, occupancyID uuid.UUID) ([]*settlement.Obligation, error) {
	rows, err := r.queries.ListObligationsByOccupancy(ctx, r.db, occupancyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rental obligations", err)
	}
	return converter.ObligationsFromRows(rows)
}

// ListOverdue returns UNPAID obligations whose target month is strictly before the given month.
func (r *ObligationReadStore) ListOverdue(ctx context.Context, occupancyID uuid.UUID, before settlement.Month) ([]*settlement.Obligation, error) {
	rows, err := r.queries.ListOverdueObligationsByOccupancy(ctx, r.db, sqlc.ListOverdueObligationsByOccupancyParams{
		OccupancyID: occupancyID,
		BeforeMonth: pgconv.DateToPgtype(before.FirstDay()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue rental obligations", err)
	}
	return converter.ObligationsFromRows(rows)
}
