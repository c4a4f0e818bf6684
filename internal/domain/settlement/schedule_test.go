//go:build unit

package settlement_test

import (
	"testing"
	"time"

	"bookcase-rental/internal/domain/money"
	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFirstMonthAmount(t *testing.T) {
	cases := []struct {
		name  string
		price int64
		start time.Time
		want  int64
	}{
		{name: "first of month is not prorated", price: 50000, start: day(2024, time.June, 1), want: 50000},
		{name: "day 11 of a 30 day month", price: 50000, start: day(2024, time.June, 11), want: 33333},
		{name: "last day of a 31 day month", price: 31000, start: day(2024, time.July, 31), want: 1000},
		{name: "leap february", price: 29000, start: day(2024, time.February, 15), want: 15000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := settlement.FirstMonthAmount(money.MustNew(tc.price), tc.start)
			assert.Equal(t, tc.want, got.Amount())
		})
	}
}

func TestBuildSchedule(t *testing.T) {
	occupancyID, ownerID := uuid.New(), uuid.New()

	t.Run("success: one obligation per month, only the first prorated", func(t *testing.T) {
		schedule, err := settlement.BuildSchedule(occupancyID, ownerID,
			time.Date(2024, time.June, 11, 10, 0, 0, 0, time.UTC), day(2024, time.August, 31), money.MustNew(50000))
		require.NoError(t, err)
		require.Len(t, schedule, 3)

		wantMonths := []string{"2024-06", "2024-07", "2024-08"}
		wantAmounts := []int64{33333, 50000, 50000}
		for i, ob := range schedule {
			assert.Equal(t, wantMonths[i], ob.TargetMonth().String())
			assert.Equal(t, wantAmounts[i], ob.Amount().Amount())
			assert.Equal(t, wantAmounts[i], ob.Remaining().Amount())
			assert.True(t, ob.Deducted().IsZero())
			assert.Equal(t, settlement.StatusUnpaid, ob.Status())
			assert.Equal(t, occupancyID, ob.OccupancyID())
			assert.Equal(t, ownerID, ob.OwnerID())
		}
	})

	t.Run("success: start and expiration in the same month", func(t *testing.T) {
		schedule, err := settlement.BuildSchedule(occupancyID, ownerID, day(2024, time.June, 11), day(2024, time.June, 20), money.MustNew(50000))
		require.NoError(t, err)
		require.Len(t, schedule, 1)
		assert.Equal(t, int64(33333), schedule[0].Amount().Amount())
	})

	t.Run("success: first month prorated to zero is recorded paid", func(t *testing.T) {
		schedule, err := settlement.BuildSchedule(occupancyID, ownerID, day(2024, time.January, 31), day(2024, time.March, 15), money.MustNew(30))
		require.NoError(t, err)
		require.Len(t, schedule, 3)

		first := schedule[0]
		assert.Equal(t, "2024-01", first.TargetMonth().String())
		assert.True(t, first.Amount().IsZero())
		assert.True(t, first.Remaining().IsZero())
		assert.Equal(t, settlement.StatusPaid, first.Status())
		assert.Nil(t, first.PaidAt())
		assert.False(t, first.IsOverdueAt(settlement.MonthOf(day(2024, time.February, 1))))

		for _, ob := range schedule[1:] {
			assert.Equal(t, int64(30), ob.Remaining().Amount())
			assert.Equal(t, settlement.StatusUnpaid, ob.Status())
		}
	})

	t.Run("success: crosses the year", func(t *testing.T) {
		schedule, err := settlement.BuildSchedule(occupancyID, ownerID, day(2024, time.December, 1), day(2025, time.February, 1), money.MustNew(10000))
		require.NoError(t, err)
		require.Len(t, schedule, 3)
		assert.Equal(t, "2025-02", schedule[2].TargetMonth().String())
	})

	t.Run("error: expiration month before start month", func(t *testing.T) {
		_, err := settlement.BuildSchedule(occupancyID, ownerID, day(2024, time.June, 11), day(2024, time.May, 31), money.MustNew(50000))
		require.ErrorIs(t, err, settlement.ErrExpirationBeforeStart)
	})
}

func TestSortOldestFirst(t *testing.T) {
	mar := builder.NewObligationBuilder().WithMonth(2024, time.March).BuildDomain()
	janA := builder.NewObligationBuilder().WithMonth(2024, time.January).BuildDomain()
	feb := builder.NewObligationBuilder().WithMonth(2024, time.February).BuildDomain()
	janB := builder.NewObligationBuilder().WithMonth(2024, time.January).BuildDomain()

	obs := []*settlement.Obligation{mar, janA, feb, janB}
	settlement.SortOldestFirst(obs)

	assert.Equal(t, []*settlement.Obligation{janA, janB, feb, mar}, obs)
}
