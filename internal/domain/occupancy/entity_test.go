//go:build unit

package occupancy_test

import (
	"testing"
	"time"

	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(occupancy.Occupancy{}),
}

type testCase struct {
	name   string
	mutate func(*builder.OccupancyBuilder)
	errIs  error
}

func TestOccupancy(t *testing.T) {
	t.Run("success: new occupancy is active and not suspended", func(t *testing.T) {
		b := builder.NewOccupancyBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		expected := b.BuildReconstructed()
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Occupancy mismatch (-want +got):\n%s", diff)
		}
		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsSuspended())
		assert.Equal(t, b.OwnerID, actual.OwnerID())
		assert.Equal(t, time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC), actual.ExpirationDate())
	})

	t.Run("period validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "success: expires the same day",
				mutate: func(b *builder.OccupancyBuilder) { b.WithExpirationDate(b.OccupiedAt) },
			},
			{
				name: "success: expiration date with a clock part earlier than start",
				mutate: func(b *builder.OccupancyBuilder) {
					b.WithExpirationDate(time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC))
				},
			},
			{
				name: "error: expires the day before",
				mutate: func(b *builder.OccupancyBuilder) {
					b.WithExpirationDate(time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC))
				},
				errIs: occupancy.ErrExpirationInPast,
			},
		})
	})
}

func TestOccupancy_Transitions(t *testing.T) {
	now := time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC)

	t.Run("success: suspend then vacate", func(t *testing.T) {
		rec := builder.NewOccupancyBuilder().BuildReconstructed()

		require.NoError(t, rec.Suspend(now))
		require.NotNil(t, rec.SuspendedAt())
		assert.True(t, rec.IsActive())

		require.NoError(t, rec.Vacate(now))
		assert.False(t, rec.IsActive())
		assert.Equal(t, now, *rec.UnOccupiedAt())
	})

	t.Run("error: suspend twice", func(t *testing.T) {
		rec := builder.NewOccupancyBuilder().AsSuspended(now).BuildReconstructed()
		require.ErrorIs(t, rec.Suspend(now), occupancy.ErrAlreadySuspended)
	})

	t.Run("error: vacated record cannot change", func(t *testing.T) {
		rec := builder.NewOccupancyBuilder().AsVacated(now).BuildReconstructed()
		require.ErrorIs(t, rec.Suspend(now), occupancy.ErrNotActive)
		require.ErrorIs(t, rec.Vacate(now), occupancy.ErrNotActive)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewOccupancyBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
