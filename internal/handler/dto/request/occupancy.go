package request

import (
	"time"

	"bookcase-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type OccupyRequest struct {
	OwnerID        uuid.UUID   `json:"ownerId" binding:"required"`
	BookCaseIDs    []uuid.UUID `json:"bookCaseIds" binding:"required,min=1,dive,required"`
	ExpirationDate string      `json:"expirationDate" binding:"required,datetime=2006-01-02"`
	DepositAmount  int64       `json:"depositAmount" binding:"required,gt=0"`
}

func (r OccupyRequest) ToCommand() (commands.OccupyRequest, error) {
	expiration, err := time.Parse(dateLayout, r.ExpirationDate)
	if err != nil {
		return commands.OccupyRequest{}, err
	}
	return commands.OccupyRequest{
		OwnerID:        r.OwnerID,
		BookCaseIDs:    r.BookCaseIDs,
		ExpirationDate: expiration,
		DepositAmount:  r.DepositAmount,
	}, nil
}

type ReleaseRequest struct {
	BookCaseIDs []uuid.UUID `json:"bookCaseIds" binding:"required,min=1,dive,required"`
}
