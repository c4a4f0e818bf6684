package shared

import (
	"bookcase-rental/internal/domain/money"

	"github.com/google/uuid"
)

// BookCaseSnapshot joins a book case with its type's monthly price.
type BookCaseSnapshot struct {
	ID           uuid.UUID
	TypeID       uuid.UUID
	Name         string
	MonthlyPrice money.Money
}

// Notification kinds written to the outbox.
const (
	NotificationKindSuspension = "occupancy.suspended"
	NotificationKindEviction   = "occupancy.evicted"
)
