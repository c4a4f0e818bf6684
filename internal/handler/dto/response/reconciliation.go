package response

import (
	"bookcase-rental/internal/usecase/commands"
)

type ReconciliationResponse struct {
	Month           string `json:"month"`
	OwnersProcessed int    `json:"ownersProcessed"`
	OwnersFailed    int    `json:"ownersFailed"`
	Evictions       int    `json:"evictions"`
	Suspensions     int    `json:"suspensions"`
	Offsets         int    `json:"offsets"`
	OffsetTotal     int64  `json:"offsetTotal"`
	StartedAt       int64  `json:"startedAt"`
	DurationMillis  int64  `json:"durationMillis"`
}

func FromReconciliationReport(r *commands.ReconciliationReport) *ReconciliationResponse {
	return &ReconciliationResponse{
		Month:           r.Month,
		OwnersProcessed: r.OwnersProcessed,
		OwnersFailed:    r.OwnersFailed,
		Evictions:       r.Evictions,
		Suspensions:     r.Suspensions,
		Offsets:         r.Offsets,
		OffsetTotal:     r.OffsetTotal,
		StartedAt:       r.StartedAt.Unix(),
		DurationMillis:  r.Duration.Milliseconds(),
	}
}
