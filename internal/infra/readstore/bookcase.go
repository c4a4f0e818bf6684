package readstore

import (
	"context"

	"bookcase-rental/internal/domain/money"
	"bookcase-rental/internal/infra"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/pkg/pgconv"
	"bookcase-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookCaseReadQueries interface {
	GetBookCaseWithPrice(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookCaseWithPriceRow, error)
	ExistsUnsettledSaleByBookCase(ctx context.Context, db sqlc.DBTX, bookCaseID uuid.UUID) (bool, error)
}

type BookCaseReadStore struct {
	queries BookCaseReadQueries
	db      sqlc.DBTX
}

func NewBookCaseReadStore(queries BookCaseReadQueries, db sqlc.DBTX) *BookCaseReadStore {
	return &BookCaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookCaseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.BookCaseSnapshot, error) {
	row, err := r.queries.GetBookCaseWithPrice(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book case not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book case by ID", err)
	}

	price, err := money.New(row.MonthlyPrice)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "book case %s has invalid monthly price", row.ID), errs.ErrPersistenceIntegrity)
	}

	return &shared.BookCaseSnapshot{
		ID:           row.ID,
		TypeID:       row.BookCaseTypeID,
		Name:         row.Name,
		MonthlyPrice: price,
	}, nil
}

// HasUnsettledSales reports whether any item in the book case has a sale awaiting settlement.
func (r *BookCaseReadStore) HasUnsettledSales(ctx context.Context, bookCaseID uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsUnsettledSaleByBookCase(ctx, r.db, bookCaseID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check unsettled sales", err)
	}
	return exists, nil
}
