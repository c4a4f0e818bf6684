package repository

import (
	"context"

	"bookcase-rental/internal/infra"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ItemWriteQueries interface {
	MarkItemsPendingRetrieval(ctx context.Context, db sqlc.DBTX, bookCaseIds []uuid.UUID) ([]uuid.UUID, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
}

func NewItemRepository(queries ItemWriteQueries) *ItemRepository {
	return &ItemRepository{queries: queries}
}

// MarkPendingRetrieval moves AVAILABLE items of the given book cases to PENDING_RETRIEVAL.
func (r *ItemRepository) MarkPendingRetrieval(ctx context.Context, tx sqlc.DBTX, bookCaseIDs []uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.MarkItemsPendingRetrieval(ctx, tx, bookCaseIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to mark items pending retrieval", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}
