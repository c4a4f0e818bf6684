package converter

import (
	"fmt"

	"bookcase-rental/internal/domain/money"
	"bookcase-rental/internal/domain/settlement"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/pkg/pgconv"
)

func ObligationToCreateParams(ob *settlement.Obligation) sqlc.CreateRentalObligationParams {
	return sqlc.CreateRentalObligationParams{
		ID:              ob.ID(),
		OccupancyID:     ob.OccupancyID(),
		BookOwnerID:     ob.OwnerID(),
		TargetMonth:     pgconv.DateToPgtype(ob.TargetMonth().FirstDay()),
		Amount:          ob.Amount().Amount(),
		DeductedAmount:  ob.Deducted().Amount(),
		RemainingAmount: ob.Remaining().Amount(),
		Status:          ob.Status().String(),
	}
}

func ObligationToDeductionParams(ob *settlement.Obligation) sqlc.UpdateRentalObligationDeductionParams {
	return sqlc.UpdateRentalObligationDeductionParams{
		ID:              ob.ID(),
		DeductedAmount:  ob.Deducted().Amount(),
		RemainingAmount: ob.Remaining().Amount(),
		Status:          ob.Status().String(),
		PaidAt:          pgconv.TimePtrToPgtype(ob.PaidAt()),
	}
}

func ObligationFromRow(row sqlc.RentalObligations) (*settlement.Obligation, error) {
	amount, err := money.New(row.Amount)
	if err != nil {
		return nil, corrupt("rental obligation", row.ID.String(), err)
	}
	deducted, err := money.New(row.DeductedAmount)
	if err != nil {
		return nil, corrupt("rental obligation", row.ID.String(), err)
	}
	remaining, err := money.New(row.RemainingAmount)
	if err != nil {
		return nil, corrupt("rental obligation", row.ID.String(), err)
	}
	status := settlement.Status(row.Status)
	if !status.IsValid() {
		return nil, corrupt("rental obligation", row.ID.String(), fmt.Errorf("unknown status %q", row.Status))
	}

	return settlement.ReconstructObligation(
		row.ID,
		row.OccupancyID,
		row.BookOwnerID,
		settlement.MonthOf(pgconv.DateFromPgtype(row.TargetMonth)),
		amount, deducted, remaining,
		status,
		pgconv.TimePtrFromPgtype(row.PaidAt),
	), nil
}

func ObligationsFromRows(rows []sqlc.RentalObligations) ([]*settlement.Obligation, error) {
	out := make([]*settlement.Obligation, 0, len(rows))
	for _, row := range rows {
		ob, err := ObligationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, ob)
	}
	return out, nil
}

func corrupt(entity, id string, err error) error {
	return errs.Mark(errs.Wrapf(err, "%s %s holds invalid data", entity, id), errs.ErrPersistenceIntegrity)
}
