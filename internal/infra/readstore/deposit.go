package readstore

import (
	"context"

	"bookcase-rental/internal/domain/deposit"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/infra/repository/converter"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DepositReadQueries interface {
	GetDepositByOwner(ctx context.Context, db sqlc.DBTX, bookOwnerID uuid.UUID) (sqlc.Deposits, error)
	ListDepositOffsetsByDeposit(ctx context.Context, db sqlc.DBTX, depositID uuid.UUID) ([]sqlc.DepositOffsets, error)
}

type DepositReadStore struct {
	queries DepositReadQueries
	db      sqlc.DBTX
}

func NewDepositReadStore(queries DepositReadQueries, db sqlc.DBTX) *DepositReadStore {
	return &DepositReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DepositReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*deposit.Deposit, error) {
	row, err := r.queries.GetDepositByOwner(ctx, r.db, ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deposit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deposit by owner", err)
	}
	return converter.DepositFromRow(row)
}

func (r *DepositReadStore) ListOffsets(ctx context.Context, depositID uuid.UUID) ([]*deposit.Offset, error) {
	rows, err := r.queries.ListDepositOffsetsByDeposit(ctx, r.db, depositID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deposit offsets", err)
	}

	out := make([]*deposit.Offset, 0, len(rows))
	for _, row := range rows {
		off, err := converter.OffsetFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, off)
	}
	return out, nil
}
