package response

import (
	"time"

	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type OccupancyResponse struct {
	ID             string `json:"id"`
	BookCaseID     string `json:"bookCaseId"`
	OwnerID        string `json:"ownerId"`
	OccupiedAt     int64  `json:"occupiedAt"`
	SuspendedAt    *int64 `json:"suspendedAt,omitempty"`
	ExpirationDate string `json:"expirationDate"`
}

func FromOccupancy(o *occupancy.Occupancy) *OccupancyResponse {
	return &OccupancyResponse{
		ID:             o.ID().String(),
		BookCaseID:     o.BookCaseID().String(),
		OwnerID:        o.OwnerID().String(),
		OccupiedAt:     o.OccupiedAt().Unix(),
		SuspendedAt:    unixPtr(o.SuspendedAt()),
		ExpirationDate: o.ExpirationDate().Format(dateLayout),
	}
}

func FromOccupancies(records []*occupancy.Occupancy) []*OccupancyResponse {
	res := make([]*OccupancyResponse, len(records))
	for i, r := range records {
		res[i] = FromOccupancy(r)
	}
	return res
}

func FromOccupancyView(v *queries.OccupancyView) *OccupancyResponse {
	return &OccupancyResponse{
		ID:             v.ID.String(),
		BookCaseID:     v.BookCaseID.String(),
		OwnerID:        v.OwnerID.String(),
		OccupiedAt:     v.OccupiedAt.Unix(),
		SuspendedAt:    unixPtr(v.SuspendedAt),
		ExpirationDate: v.ExpirationDate.Format(dateLayout),
	}
}

type BookCaseOccupancyResponse struct {
	Occupied  bool               `json:"occupied"`
	Occupancy *OccupancyResponse `json:"occupancy,omitempty"`
}

type ReleaseResponse struct {
	ItemIDs []string `json:"itemIds"`
}

func FromReleasedItems(ids []uuid.UUID) *ReleaseResponse {
	res := &ReleaseResponse{ItemIDs: make([]string, len(ids))}
	for i, id := range ids {
		res.ItemIDs[i] = id.String()
	}
	return res
}

type ObligationResponse struct {
	ID          string `json:"id"`
	OccupancyID string `json:"occupancyId"`
	TargetMonth string `json:"targetMonth"`
	Amount      int64  `json:"amount"`
	Deducted    int64  `json:"deductedAmount"`
	Remaining   int64  `json:"remainingAmount"`
	Status      string `json:"status"`
	PaidAt      *int64 `json:"paidAt,omitempty"`
}

func FromObligationViews(items []*queries.ObligationView) []*ObligationResponse {
	res := make([]*ObligationResponse, len(items))
	for i, v := range items {
		res[i] = &ObligationResponse{
			ID:          v.ID.String(),
			OccupancyID: v.OccupancyID.String(),
			TargetMonth: v.TargetMonth,
			Amount:      v.Amount,
			Deducted:    v.Deducted,
			Remaining:   v.Remaining,
			Status:      v.Status,
			PaidAt:      unixPtr(v.PaidAt),
		}
	}
	return res
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}
