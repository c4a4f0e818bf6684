//go:build unit || e2e

package builder

import (
	"time"

	domoccupancy "bookcase-rental/internal/domain/occupancy"
	reqdto "bookcase-rental/internal/handler/dto/request"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/pgconv"
	"bookcase-rental/internal/usecase/commands"
	"bookcase-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type OccupancyBuilder struct {
	ID             uuid.UUID
	BookCaseIDs    []uuid.UUID
	OwnerID        uuid.UUID
	OccupiedAt     time.Time
	UnOccupiedAt   *time.Time
	SuspendedAt    *time.Time
	ExpirationDate time.Time
	DepositAmount  int64
}

func NewOccupancyBuilder() *OccupancyBuilder {
	occupiedAt := time.Date(2024, time.June, 11, 10, 0, 0, 0, time.UTC)
	return &OccupancyBuilder{
		ID:             uuid.New(),
		BookCaseIDs:    []uuid.UUID{uuid.New()},
		OwnerID:        uuid.New(),
		OccupiedAt:     occupiedAt,
		ExpirationDate: time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC),
		DepositAmount:  50000,
	}
}

func (b *OccupancyBuilder) With(mutate func(*OccupancyBuilder)) *OccupancyBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OccupancyBuilder) BuildDomain() (*domoccupancy.Occupancy, error) {
	return domoccupancy.NewOccupancy(b.BookCaseIDs[0], b.OwnerID, b.OccupiedAt, b.ExpirationDate)
}

func (b *OccupancyBuilder) BuildReconstructed() *domoccupancy.Occupancy {
	return domoccupancy.ReconstructOccupancy(b.ID, b.BookCaseIDs[0], b.OwnerID, b.OccupiedAt, b.UnOccupiedAt, b.SuspendedAt, b.ExpirationDate)
}

func (b *OccupancyBuilder) BuildInfra() sqlc.Occupancies {
	return sqlc.Occupancies{
		ID:             b.ID,
		BookCaseID:     b.BookCaseIDs[0],
		BookOwnerID:    b.OwnerID,
		OccupiedAt:     pgconv.TimeToPgtype(b.OccupiedAt),
		UnOccupiedAt:   pgconv.TimePtrToPgtype(b.UnOccupiedAt),
		SuspendedAt:    pgconv.TimePtrToPgtype(b.SuspendedAt),
		ExpirationDate: pgconv.DateToPgtype(b.ExpirationDate),
		CreatedAt:      pgconv.TimeToPgtype(b.OccupiedAt),
	}
}

func (b *OccupancyBuilder) BuildCommand() commands.OccupyRequest {
	return commands.OccupyRequest{
		OwnerID:        b.OwnerID,
		BookCaseIDs:    b.BookCaseIDs,
		ExpirationDate: b.ExpirationDate,
		DepositAmount:  b.DepositAmount,
	}
}

func (b *OccupancyBuilder) BuildRequestDTO() reqdto.OccupyRequest {
	return reqdto.OccupyRequest{
		OwnerID:        b.OwnerID,
		BookCaseIDs:    b.BookCaseIDs,
		ExpirationDate: b.ExpirationDate.Format("2006-01-02"),
		DepositAmount:  b.DepositAmount,
	}
}

func (b *OccupancyBuilder) BuildView() *queries.OccupancyView {
	return &queries.OccupancyView{
		ID:             b.ID,
		BookCaseID:     b.BookCaseIDs[0],
		OwnerID:        b.OwnerID,
		OccupiedAt:     b.OccupiedAt,
		UnOccupiedAt:   b.UnOccupiedAt,
		SuspendedAt:    b.SuspendedAt,
		ExpirationDate: b.ExpirationDate,
	}
}

// Fluent builder methods
func (b *OccupancyBuilder) WithOwnerID(ownerID uuid.UUID) *OccupancyBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *OccupancyBuilder) WithBookCaseIDs(ids ...uuid.UUID) *OccupancyBuilder {
	b.BookCaseIDs = ids
	return b
}

func (b *OccupancyBuilder) WithOccupiedAt(t time.Time) *OccupancyBuilder {
	b.OccupiedAt = t
	return b
}

func (b *OccupancyBuilder) WithExpirationDate(t time.Time) *OccupancyBuilder {
	b.ExpirationDate = t
	return b
}

func (b *OccupancyBuilder) WithDepositAmount(amount int64) *OccupancyBuilder {
	b.DepositAmount = amount
	return b
}

func (b *OccupancyBuilder) AsSuspended(at time.Time) *OccupancyBuilder {
	b.SuspendedAt = &at
	return b
}

func (b *OccupancyBuilder) AsVacated(at time.Time) *OccupancyBuilder {
	b.UnOccupiedAt = &at
	return b
}
