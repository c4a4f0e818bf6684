package occupancy

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExpirationInPast = errors.New("expiration date is before occupancy start")
	ErrNotActive        = errors.New("occupancy is not active")
	ErrAlreadySuspended = errors.New("occupancy is already suspended")
)

// Occupancy assigns a book case to an owner. Only unOccupiedAt and suspendedAt change after creation.
type Occupancy struct {
	id             uuid.UUID
	bookCaseID     uuid.UUID
	ownerID        uuid.UUID
	occupiedAt     time.Time
	unOccupiedAt   *time.Time
	suspendedAt    *time.Time
	expirationDate time.Time
}

func NewOccupancy(bookCaseID, ownerID uuid.UUID, occupiedAt, expirationDate time.Time) (*Occupancy, error) {
	if dateOf(expirationDate).Before(dateOf(occupiedAt)) {
		return nil, ErrExpirationInPast
	}

	return &Occupancy{
		id:             uuid.New(),
		bookCaseID:     bookCaseID,
		ownerID:        ownerID,
		occupiedAt:     occupiedAt,
		expirationDate: dateOf(expirationDate),
	}, nil
}

func ReconstructOccupancy(
	id, bookCaseID, ownerID uuid.UUID,
	occupiedAt time.Time,
	unOccupiedAt, suspendedAt *time.Time,
	expirationDate time.Time,
) *Occupancy {
	return &Occupancy{
		id:             id,
		bookCaseID:     bookCaseID,
		ownerID:        ownerID,
		occupiedAt:     occupiedAt,
		unOccupiedAt:   unOccupiedAt,
		suspendedAt:    suspendedAt,
		expirationDate: expirationDate,
	}
}

// IsActive ignores suspension: a suspended occupancy still holds the book case.
func (o *Occupancy) IsActive() bool {
	return o.unOccupiedAt == nil
}

func (o *Occupancy) IsSuspended() bool {
	return o.suspendedAt != nil
}

func (o *Occupancy) Suspend(at time.Time) error {
	if !o.IsActive() {
		return ErrNotActive
	}
	if o.IsSuspended() {
		return ErrAlreadySuspended
	}
	o.suspendedAt = &at
	return nil
}

func (o *Occupancy) Vacate(at time.Time) error {
	if !o.IsActive() {
		return ErrNotActive
	}
	o.unOccupiedAt = &at
	return nil
}

func (o *Occupancy) ID() uuid.UUID            { return o.id }
func (o *Occupancy) BookCaseID() uuid.UUID    { return o.bookCaseID }
func (o *Occupancy) OwnerID() uuid.UUID       { return o.ownerID }
func (o *Occupancy) OccupiedAt() time.Time    { return o.occupiedAt }
func (o *Occupancy) UnOccupiedAt() *time.Time { return o.unOccupiedAt }
func (o *Occupancy) SuspendedAt() *time.Time  { return o.suspendedAt }
func (o *Occupancy) ExpirationDate() time.Time {
	return o.expirationDate
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
