package settlement

import (
	"errors"
	"time"

	"bookcase-rental/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrObligationSettled = errors.New("rental obligation already paid")
	ErrOverDeduction     = errors.New("deduction exceeds remaining amount")
	ErrInvalidDeduction  = errors.New("deduction must be positive")
)

// Obligation is one month of rent for one occupancy.
// amount = deducted + remaining, and PAID iff remaining is zero.
type Obligation struct {
	id          uuid.UUID
	occupancyID uuid.UUID
	ownerID     uuid.UUID
	targetMonth Month
	amount      money.Money
	deducted    money.Money
	remaining   money.Money
	status      Status
	paidAt      *time.Time
}

// NewObligation starts UNPAID. A zero amount, such as a first month prorated down to
// nothing, is created PAID so that PAID iff remaining is zero holds from the start.
func NewObligation(occupancyID, ownerID uuid.UUID, targetMonth Month, amount money.Money) *Obligation {
	ob := &Obligation{
		id:          uuid.New(),
		occupancyID: occupancyID,
		ownerID:     ownerID,
		targetMonth: targetMonth,
		amount:      amount,
		deducted:    money.Zero(),
		remaining:   amount,
		status:      StatusUnpaid,
	}
	if amount.IsZero() {
		ob.status = StatusPaid
	}
	return ob
}

func ReconstructObligation(
	id, occupancyID, ownerID uuid.UUID,
	targetMonth Month,
	amount, deducted, remaining money.Money,
	status Status,
	paidAt *time.Time,
) *Obligation {
	return &Obligation{
		id:          id,
		occupancyID: occupancyID,
		ownerID:     ownerID,
		targetMonth: targetMonth,
		amount:      amount,
		deducted:    deducted,
		remaining:   remaining,
		status:      status,
		paidAt:      paidAt,
	}
}

// Deduct moves part of the remaining balance into the deducted column.
func (o *Obligation) Deduct(offset money.Money, at time.Time) error {
	if o.IsPaid() {
		return ErrObligationSettled
	}
	if !offset.IsPositive() {
		return ErrInvalidDeduction
	}
	remaining, err := o.remaining.Sub(offset)
	if err != nil {
		return ErrOverDeduction
	}

	o.remaining = remaining
	o.deducted = o.deducted.Add(offset)
	if o.remaining.IsZero() {
		o.status = StatusPaid
		paidAt := at
		o.paidAt = &paidAt
	}
	return nil
}

func (o *Obligation) IsPaid() bool {
	return o.status == StatusPaid
}

func (o *Obligation) IsOverdueAt(current Month) bool {
	return !o.IsPaid() && o.targetMonth.Before(current)
}

func (o *Obligation) ID() uuid.UUID          { return o.id }
func (o *Obligation) OccupancyID() uuid.UUID { return o.occupancyID }
func (o *Obligation) OwnerID() uuid.UUID     { return o.ownerID }
func (o *Obligation) TargetMonth() Month     { return o.targetMonth }
func (o *Obligation) Amount() money.Money    { return o.amount }
func (o *Obligation) Deducted() money.Money  { return o.deducted }
func (o *Obligation) Remaining() money.Money { return o.remaining }
func (o *Obligation) Status() Status         { return o.status }
func (o *Obligation) PaidAt() *time.Time     { return o.paidAt }
