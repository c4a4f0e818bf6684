package queries

import (
	"context"

	"bookcase-rental/internal/domain/deposit"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type DepositReadStore interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*deposit.Deposit, error)
	ListOffsets(ctx context.Context, depositID uuid.UUID) ([]*deposit.Offset, error)
}

type DepositQueries interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*DepositView, error)
}

type depositQueriesImpl struct {
	store DepositReadStore
}

func NewDepositQueries(store DepositReadStore) DepositQueries {
	return &depositQueriesImpl{store: store}
}

func (q *depositQueriesImpl) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*DepositView, error) {
	dep, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDepositNotFound)
		}
		return nil, err
	}

	offsets, err := q.store.ListOffsets(ctx, dep.ID())
	if err != nil {
		return nil, err
	}

	view := &DepositView{
		ID:        dep.ID(),
		OwnerID:   dep.OwnerID(),
		Amount:    dep.Amount().Amount(),
		Remaining: dep.Remaining().Amount(),
		Status:    dep.Status().String(),
		Offsets:   make([]*DepositOffsetView, len(offsets)),
	}
	for i, off := range offsets {
		view.Offsets[i] = &DepositOffsetView{
			ID:           off.ID(),
			ObligationID: off.ObligationID(),
			Amount:       off.Amount().Amount(),
			CreatedAt:    off.CreatedAt(),
		}
	}
	return view, nil
}
