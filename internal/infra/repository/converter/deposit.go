package converter

import (
	"fmt"

	"bookcase-rental/internal/domain/deposit"
	"bookcase-rental/internal/domain/money"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/pgconv"
)

func DepositFromRow(row sqlc.Deposits) (*deposit.Deposit, error) {
	amount, err := money.New(row.Amount)
	if err != nil {
		return nil, corrupt("deposit", row.ID.String(), err)
	}
	remaining, err := money.New(row.RemainingAmount)
	if err != nil {
		return nil, corrupt("deposit", row.ID.String(), err)
	}
	status := deposit.Status(row.Status)
	if !status.IsValid() {
		return nil, corrupt("deposit", row.ID.String(), fmt.Errorf("unknown status %q", row.Status))
	}

	d, err := deposit.ReconstructDeposit(row.ID, row.BookOwnerID, amount, remaining, status)
	if err != nil {
		return nil, corrupt("deposit", row.ID.String(), err)
	}
	return d, nil
}

func OffsetToCreateParams(off *deposit.Offset) sqlc.CreateDepositOffsetParams {
	return sqlc.CreateDepositOffsetParams{
		ID:                 off.ID(),
		DepositID:          off.DepositID(),
		RentalObligationID: off.ObligationID(),
		OffsetAmount:       off.Amount().Amount(),
		CreatedAt:          pgconv.TimeToPgtype(off.CreatedAt()),
	}
}

func OffsetFromRow(row sqlc.DepositOffsets) (*deposit.Offset, error) {
	amount, err := money.New(row.OffsetAmount)
	if err != nil {
		return nil, corrupt("deposit offset", row.ID.String(), err)
	}
	return deposit.ReconstructOffset(row.ID, row.DepositID, row.RentalObligationID, amount, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func DepositToCreateParams(d *deposit.Deposit) sqlc.CreateDepositParams {
	return sqlc.CreateDepositParams{
		ID:              d.ID(),
		BookOwnerID:     d.OwnerID(),
		Amount:          d.Amount().Amount(),
		RemainingAmount: d.Remaining().Amount(),
		Status:          d.Status().String(),
	}
}

func DepositToUpdateParams(d *deposit.Deposit) sqlc.UpdateDepositParams {
	return sqlc.UpdateDepositParams{
		ID:              d.ID(),
		Amount:          d.Amount().Amount(),
		RemainingAmount: d.Remaining().Amount(),
		Status:          d.Status().String(),
	}
}
