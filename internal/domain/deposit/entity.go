package deposit

import (
	"errors"
	"time"

	"bookcase-rental/internal/domain/money"
	"bookcase-rental/internal/domain/settlement"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("deposit amount must be positive")
	ErrExhausted       = errors.New("deposit has no remaining balance")
	ErrBalanceCorrupt  = errors.New("deposit remaining exceeds total amount")
	ErrAlreadyReturned = errors.New("deposit already returned")
)

// Deposit is the single refundable balance of one owner.
// amount is everything ever held; 0 <= remaining <= amount.
type Deposit struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	amount    money.Money
	remaining money.Money
	status    Status
}

func NewDeposit(ownerID uuid.UUID, amount money.Money) (*Deposit, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Deposit{
		id:        uuid.New(),
		ownerID:   ownerID,
		amount:    amount,
		remaining: amount,
		status:    StatusHeld,
	}, nil
}

func ReconstructDeposit(id, ownerID uuid.UUID, amount, remaining money.Money, status Status) (*Deposit, error) {
	if amount.LessThan(remaining) {
		return nil, ErrBalanceCorrupt
	}
	return &Deposit{
		id:        id,
		ownerID:   ownerID,
		amount:    amount,
		remaining: remaining,
		status:    status,
	}, nil
}

// TopUp adds to both totals. A returned or depleted deposit is held again once it has funds.
func (d *Deposit) TopUp(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	d.amount = d.amount.Add(amount)
	d.remaining = d.remaining.Add(amount)
	d.status = StatusHeld
	return nil
}

// IsExhausted reports whether nothing is left to offset against rent.
func (d *Deposit) IsExhausted() bool {
	return !d.remaining.IsPositive()
}

// OffsetAgainst applies min(remaining deposit, remaining rent) to ob and returns the audit row.
func (d *Deposit) OffsetAgainst(ob *settlement.Obligation, at time.Time) (*Offset, error) {
	if d.IsExhausted() {
		return nil, ErrExhausted
	}
	if ob.IsPaid() {
		return nil, settlement.ErrObligationSettled
	}

	applied := d.remaining.Min(ob.Remaining())
	if err := ob.Deduct(applied, at); err != nil {
		return nil, err
	}

	remaining, err := d.remaining.Sub(applied)
	if err != nil {
		return nil, err
	}
	d.remaining = remaining
	if d.remaining.IsZero() {
		d.status = StatusDepleted
	} else {
		d.status = StatusHeld
	}

	return NewOffset(d.id, ob.ID(), applied, at), nil
}

func (d *Deposit) MarkReturned() error {
	if d.status == StatusReturned {
		return ErrAlreadyReturned
	}
	d.status = StatusReturned
	return nil
}

func (d *Deposit) ID() uuid.UUID          { return d.id }
func (d *Deposit) OwnerID() uuid.UUID     { return d.ownerID }
func (d *Deposit) Amount() money.Money    { return d.amount }
func (d *Deposit) Remaining() money.Money { return d.remaining }
func (d *Deposit) Status() Status         { return d.status }
