//go:build unit

package occupancy_test

import (
	"testing"
	"time"

	"bookcase-rental/internal/domain/occupancy"
	"bookcase-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByOwner(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	a1 := builder.NewOccupancyBuilder().WithOwnerID(alice).BuildReconstructed()
	b1 := builder.NewOccupancyBuilder().WithOwnerID(bob).BuildReconstructed()
	a2 := builder.NewOccupancyBuilder().WithOwnerID(alice).BuildReconstructed()

	groups := occupancy.GroupByOwner([]*occupancy.Occupancy{a1, b1, a2})

	require.Len(t, groups, 2)
	assert.Equal(t, alice, groups[0].OwnerID)
	assert.Equal(t, []*occupancy.Occupancy{a1, a2}, groups[0].Records)
	assert.Equal(t, bob, groups[1].OwnerID)
	assert.Equal(t, []*occupancy.Occupancy{b1}, groups[1].Records)

	assert.Empty(t, occupancy.GroupByOwner(nil))
}

func TestSplitSuspended(t *testing.T) {
	now := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	active := builder.NewOccupancyBuilder().BuildReconstructed()
	suspended := builder.NewOccupancyBuilder().AsSuspended(now).BuildReconstructed()

	gotSuspended, gotCollectable := occupancy.SplitSuspended([]*occupancy.Occupancy{active, suspended})

	assert.Equal(t, []*occupancy.Occupancy{suspended}, gotSuspended)
	assert.Equal(t, []*occupancy.Occupancy{active}, gotCollectable)
}
