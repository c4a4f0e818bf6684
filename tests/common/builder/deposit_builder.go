//go:build unit || e2e

package builder

import (
	"time"

	"bookcase-rental/internal/domain/deposit"
	"bookcase-rental/internal/domain/money"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/pgconv"
	"bookcase-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type DepositBuilder struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Amount    int64
	Remaining int64
	Status    deposit.Status
}

func NewDepositBuilder() *DepositBuilder {
	return &DepositBuilder{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Amount:    50000,
		Remaining: 50000,
		Status:    deposit.StatusHeld,
	}
}

func (b *DepositBuilder) With(mutate func(*DepositBuilder)) *DepositBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *DepositBuilder) BuildDomain() (*deposit.Deposit, error) {
	return deposit.ReconstructDeposit(b.ID, b.OwnerID, money.MustNew(b.Amount), money.MustNew(b.Remaining), b.Status)
}

func (b *DepositBuilder) BuildInfra() sqlc.Deposits {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	return sqlc.Deposits{
		ID:              b.ID,
		BookOwnerID:     b.OwnerID,
		Amount:          b.Amount,
		RemainingAmount: b.Remaining,
		Status:          b.Status.String(),
		CreatedAt:       pgconv.TimeToPgtype(now),
		UpdatedAt:       pgconv.TimeToPgtype(now),
	}
}

func (b *DepositBuilder) BuildView(offsets ...*queries.DepositOffsetView) *queries.DepositView {
	if offsets == nil {
		offsets = []*queries.DepositOffsetView{}
	}
	return &queries.DepositView{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Amount:    b.Amount,
		Remaining: b.Remaining,
		Status:    b.Status.String(),
		Offsets:   offsets,
	}
}

// Fluent builder methods
func (b *DepositBuilder) WithOwnerID(ownerID uuid.UUID) *DepositBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *DepositBuilder) WithBalance(amount, remaining int64) *DepositBuilder {
	b.Amount = amount
	b.Remaining = remaining
	return b
}

func (b *DepositBuilder) AsDepleted() *DepositBuilder {
	b.Remaining = 0
	b.Status = deposit.StatusDepleted
	return b
}

func (b *DepositBuilder) AsReturned() *DepositBuilder {
	b.Status = deposit.StatusReturned
	return b
}
