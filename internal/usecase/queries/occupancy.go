package queries

import (
	"context"

	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/infra"
	"bookcase-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type OccupancyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*occupancy.Occupancy, error)
	FindActiveByBookCase(ctx context.Context, bookCaseID uuid.UUID) (*occupancy.Occupancy, error)
}

type ObligationReadStore interface {
	ListByOccupancy(ctx context.Context, occupancyID uuid.UUID) ([]*settlement.Obligation, error)
}

type OccupancyQueries interface {
	// IsOccupied is true while an active record exists, suspended or not.
	IsOccupied(ctx context.Context, bookCaseID uuid.UUID) (bool, error)
	GetActiveOccupancy(ctx context.Context, bookCaseID uuid.UUID) (*OccupancyView, error)
	ListObligations(ctx context.Context, occupancyID uuid.UUID) ([]*ObligationView, error)
}

type occupancyQueriesImpl struct {
	occupancies OccupancyReadStore
	obligations ObligationReadStore
}

func NewOccupancyQueries(occupancies OccupancyReadStore, obligations ObligationReadStore) OccupancyQueries {
	return &occupancyQueriesImpl{
		occupancies: occupancies,
		obligations: obligations,
	}
}

func (q *occupancyQueriesImpl) IsOccupied(ctx context.Context, bookCaseID uuid.UUID) (bool, error) {
	_, err := q.occupancies.FindActiveByBookCase(ctx, bookCaseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (q *occupancyQueriesImpl) GetActiveOccupancy(ctx context.Context, bookCaseID uuid.UUID) (*OccupancyView, error) {
	rec, err := q.occupancies.FindActiveByBookCase(ctx, bookCaseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOccupancyNotFound)
		}
		return nil, err
	}
	return toOccupancyView(rec), nil
}

func (q *occupancyQueriesImpl) ListObligations(ctx context.Context, occupancyID uuid.UUID) ([]*ObligationView, error) {
	if _, err := q.occupancies.FindByID(ctx, occupancyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOccupancyNotFound)
		}
		return nil, err
	}

	obs, err := q.obligations.ListByOccupancy(ctx, occupancyID)
	if err != nil {
		return nil, err
	}

	views := make([]*ObligationView, len(obs))
	for i, ob := range obs {
		views[i] = toObligationView(ob)
	}
	return views, nil
}

func toOccupancyView(rec *occupancy.Occupancy) *OccupancyView {
	return &OccupancyView{
		ID:             rec.ID(),
		BookCaseID:     rec.BookCaseID(),
		OwnerID:        rec.OwnerID(),
		OccupiedAt:     rec.OccupiedAt(),
		UnOccupiedAt:   rec.UnOccupiedAt(),
		SuspendedAt:    rec.SuspendedAt(),
		ExpirationDate: rec.ExpirationDate(),
	}
}

func toObligationView(ob *settlement.Obligation) *ObligationView {
	return &ObligationView{
		ID:          ob.ID(),
		OccupancyID: ob.OccupancyID(),
		OwnerID:     ob.OwnerID(),
		TargetMonth: ob.TargetMonth().String(),
		Amount:      ob.Amount().Amount(),
		Deducted:    ob.Deducted().Amount(),
		Remaining:   ob.Remaining().Amount(),
		Status:      ob.Status().String(),
		PaidAt:      ob.PaidAt(),
	}
}
