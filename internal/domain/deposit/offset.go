package deposit

import (
	"time"

	"bookcase-rental/internal/domain/money"

	"github.com/google/uuid"
)

// Offset records deposit money applied to one rental obligation. Never updated or deleted.
type Offset struct {
	id           uuid.UUID
	depositID    uuid.UUID
	obligationID uuid.UUID
	amount       money.Money
	createdAt    time.Time
}

func NewOffset(depositID, obligationID uuid.UUID, amount money.Money, createdAt time.Time) *Offset {
	return &Offset{
		id:           uuid.New(),
		depositID:    depositID,
		obligationID: obligationID,
		amount:       amount,
		createdAt:    createdAt,
	}
}

func ReconstructOffset(id, depositID, obligationID uuid.UUID, amount money.Money, createdAt time.Time) *Offset {
	return &Offset{
		id:           id,
		depositID:    depositID,
		obligationID: obligationID,
		amount:       amount,
		createdAt:    createdAt,
	}
}

func (o *Offset) ID() uuid.UUID           { return o.id }
func (o *Offset) DepositID() uuid.UUID    { return o.depositID }
func (o *Offset) ObligationID() uuid.UUID { return o.obligationID }
func (o *Offset) Amount() money.Money     { return o.amount }
func (o *Offset) CreatedAt() time.Time    { return o.createdAt }
