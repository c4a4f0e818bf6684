package response

import (
	"bookcase-rental/internal/usecase/queries"
)

type DepositOffsetResponse struct {
	ID           string `json:"id"`
	ObligationID string `json:"obligationId"`
	Amount       int64  `json:"amount"`
	CreatedAt    int64  `json:"createdAt"`
}

type DepositResponse struct {
	ID        string                   `json:"id"`
	OwnerID   string                   `json:"ownerId"`
	Amount    int64                    `json:"amount"`
	Remaining int64                    `json:"remainingAmount"`
	Status    string                   `json:"status"`
	Offsets   []*DepositOffsetResponse `json:"offsets"`
}

func FromDepositView(v *queries.DepositView) *DepositResponse {
	offsets := make([]*DepositOffsetResponse, len(v.Offsets))
	for i, o := range v.Offsets {
		offsets[i] = &DepositOffsetResponse{
			ID:           o.ID.String(),
			ObligationID: o.ObligationID.String(),
			Amount:       o.Amount,
			CreatedAt:    o.CreatedAt.Unix(),
		}
	}
	return &DepositResponse{
		ID:        v.ID.String(),
		OwnerID:   v.OwnerID.String(),
		Amount:    v.Amount,
		Remaining: v.Remaining,
		Status:    v.Status,
		Offsets:   offsets,
	}
}
