package commands

import (
	"context"
	"time"

	"bookcase-rental/internal/domain/money"
	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// SettlementGenerator writes the monthly rent schedule of a new occupancy.
type SettlementGenerator interface {
	Generate(ctx context.Context, tx shared.Tx, occupancyID, ownerID uuid.UUID, start, expiration time.Time, monthlyPrice money.Money) ([]*settlement.Obligation, error)
}

type rentalSettlementGenerator struct{}

func NewSettlementGenerator() SettlementGenerator {
	return &rentalSettlementGenerator{}
}

// Generate must run inside the caller's transaction; any failure aborts it.
func (g *rentalSettlementGenerator) Generate(
	ctx context.Context,
	tx shared.Tx,
	occupancyID, ownerID uuid.UUID,
	start, expiration time.Time,
	monthlyPrice money.Money,
) ([]*settlement.Obligation, error) {
	schedule, err := settlement.BuildSchedule(occupancyID, ownerID, start, expiration, monthlyPrice)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOccupancyPeriod)
	}

	for _, ob := range schedule {
		rows, err := tx.Obligations().Create(ctx, tx.DB(), ob)
		if err != nil {
			return nil, err
		}
		if rows != 1 {
			return nil, errs.Mark(
				errs.Newf("rental obligation insert for %s affected %d rows", ob.TargetMonth(), rows),
				errs.ErrPersistenceIntegrity,
			)
		}
	}
	return schedule, nil
}
