package queries

import (
	"time"

	"github.com/google/uuid"
)

// OccupancyView represents read-optimized occupancy data
type OccupancyView struct {
	ID             uuid.UUID  `json:"id"`
	BookCaseID     uuid.UUID  `json:"book_case_id"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	OccupiedAt     time.Time  `json:"occupied_at"`
	UnOccupiedAt   *time.Time `json:"un_occupied_at,omitempty"`
	SuspendedAt    *time.Time `json:"suspended_at,omitempty"`
	ExpirationDate time.Time  `json:"expiration_date"`
}

type ObligationView struct {
	ID          uuid.UUID  `json:"id"`
	OccupancyID uuid.UUID  `json:"occupancy_id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	TargetMonth string     `json:"target_month"`
	Amount      int64      `json:"amount"`
	Deducted    int64      `json:"deducted"`
	Remaining   int64      `json:"remaining"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

type DepositOffsetView struct {
	ID           uuid.UUID `json:"id"`
	ObligationID uuid.UUID `json:"obligation_id"`
	Amount       int64     `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

type DepositView struct {
	ID        uuid.UUID            `json:"id"`
	OwnerID   uuid.UUID            `json:"owner_id"`
	Amount    int64                `json:"amount"`
	Remaining int64                `json:"remaining"`
	Status    string               `json:"status"`
	Offsets   []*DepositOffsetView `json:"offsets"`
}
