//go:build unit || e2e

package builder

import (
	"time"

	"bookcase-rental/internal/domain/money"
	"bookcase-rental/internal/domain/settlement"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/pgconv"
	"bookcase-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type ObligationBuilder struct {
	ID          uuid.UUID
	OccupancyID uuid.UUID
	OwnerID     uuid.UUID
	TargetMonth settlement.Month
	Amount      int64
	Deducted    int64
	PaidAt      *time.Time
}

func NewObligationBuilder() *ObligationBuilder {
	m, _ := settlement.NewMonth(2024, time.June)
	return &ObligationBuilder{
		ID:          uuid.New(),
		OccupancyID: uuid.New(),
		OwnerID:     uuid.New(),
		TargetMonth: m,
		Amount:      30000,
	}
}

func (b *ObligationBuilder) With(mutate func(*ObligationBuilder)) *ObligationBuilder {
	mutate(b)
	return b
}

func (b *ObligationBuilder) status() settlement.Status {
	if b.Amount == b.Deducted {
		return settlement.StatusPaid
	}
	return settlement.StatusUnpaid
}

// Build methods
func (b *ObligationBuilder) BuildDomain() *settlement.Obligation {
	return settlement.ReconstructObligation(
		b.ID, b.OccupancyID, b.OwnerID, b.TargetMonth,
		money.MustNew(b.Amount), money.MustNew(b.Deducted), money.MustNew(b.Amount-b.Deducted),
		b.status(), b.PaidAt,
	)
}

func (b *ObligationBuilder) BuildInfra() sqlc.RentalObligations {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	return sqlc.RentalObligations{
		ID:              b.ID,
		OccupancyID:     b.OccupancyID,
		BookOwnerID:     b.OwnerID,
		TargetMonth:     pgconv.DateToPgtype(b.TargetMonth.FirstDay()),
		Amount:          b.Amount,
		DeductedAmount:  b.Deducted,
		RemainingAmount: b.Amount - b.Deducted,
		Status:          b.status().String(),
		PaidAt:          pgconv.TimePtrToPgtype(b.PaidAt),
		CreatedAt:       pgconv.TimeToPgtype(now),
		UpdatedAt:       pgconv.TimeToPgtype(now),
	}
}

func (b *ObligationBuilder) BuildView() *queries.ObligationView {
	return &queries.ObligationView{
		ID:          b.ID,
		OccupancyID: b.OccupancyID,
		OwnerID:     b.OwnerID,
		TargetMonth: b.TargetMonth.String(),
		Amount:      b.Amount,
		Deducted:    b.Deducted,
		Remaining:   b.Amount - b.Deducted,
		Status:      b.status().String(),
		PaidAt:      b.PaidAt,
	}
}

// Fluent builder methods
func (b *ObligationBuilder) WithMonth(year int, month time.Month) *ObligationBuilder {
	b.TargetMonth, _ = settlement.NewMonth(year, month)
	return b
}

func (b *ObligationBuilder) WithAmount(amount int64) *ObligationBuilder {
	b.Amount = amount
	return b
}

func (b *ObligationBuilder) WithDeducted(deducted int64) *ObligationBuilder {
	b.Deducted = deducted
	return b
}

func (b *ObligationBuilder) WithOccupancyID(id uuid.UUID) *ObligationBuilder {
	b.OccupancyID = id
	return b
}

func (b *ObligationBuilder) AsPaid(at time.Time) *ObligationBuilder {
	b.Deducted = b.Amount
	b.PaidAt = &at
	return b
}
