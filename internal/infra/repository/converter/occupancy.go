package converter

import (
	"bookcase-rental/internal/domain/occupancy"
	sqlc "bookcase-rental/internal/infra/sqlc/generated"
	"bookcase-rental/internal/pkg/pgconv"
)

func OccupancyToCreateParams(rec *occupancy.Occupancy) sqlc.CreateOccupancyParams {
	return sqlc.CreateOccupancyParams{
		ID:             rec.ID(),
		BookCaseID:     rec.BookCaseID(),
		BookOwnerID:    rec.OwnerID(),
		OccupiedAt:     pgconv.TimeToPgtype(rec.OccupiedAt()),
		ExpirationDate: pgconv.DateToPgtype(rec.ExpirationDate()),
	}
}

// OccupancyToStateParams carries the only columns that change after creation.
func OccupancyToStateParams(rec *occupancy.Occupancy) sqlc.UpdateOccupancyStateParams {
	return sqlc.UpdateOccupancyStateParams{
		ID:           rec.ID(),
		UnOccupiedAt: pgconv.TimePtrToPgtype(rec.UnOccupiedAt()),
		SuspendedAt:  pgconv.TimePtrToPgtype(rec.SuspendedAt()),
	}
}

func OccupancyFromRow(row sqlc.Occupancies) *occupancy.Occupancy {
	return occupancy.ReconstructOccupancy(
		row.ID,
		row.BookCaseID,
		row.BookOwnerID,
		pgconv.TimeFromPgtype(row.OccupiedAt),
		pgconv.TimePtrFromPgtype(row.UnOccupiedAt),
		pgconv.TimePtrFromPgtype(row.SuspendedAt),
		pgconv.DateFromPgtype(row.ExpirationDate),
	)
}

func OccupanciesFromRows(rows []sqlc.Occupancies) []*occupancy.Occupancy {
	out := make([]*occupancy.Occupancy, len(rows))
	for i, row := range rows {
		out[i] = OccupancyFromRow(row)
	}
	return out
}
