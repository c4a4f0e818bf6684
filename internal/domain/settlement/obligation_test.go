//go:build unit

package settlement_test

import (
	"testing"
	"time"

	"bookcase-rental/internal/domain/money"
	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObligation_Deduct(t *testing.T) {
	at := time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC)

	t.Run("success: partial deduction stays unpaid", func(t *testing.T) {
		ob := builder.NewObligationBuilder().WithAmount(30000).BuildDomain()

		require.NoError(t, ob.Deduct(money.MustNew(10000), at))

		assert.Equal(t, int64(10000), ob.Deducted().Amount())
		assert.Equal(t, int64(20000), ob.Remaining().Amount())
		assert.Equal(t, settlement.StatusUnpaid, ob.Status())
		assert.Nil(t, ob.PaidAt())
	})

	t.Run("success: full deduction marks paid", func(t *testing.T) {
		ob := builder.NewObligationBuilder().WithAmount(30000).WithDeducted(10000).BuildDomain()

		require.NoError(t, ob.Deduct(money.MustNew(20000), at))

		assert.True(t, ob.IsPaid())
		assert.True(t, ob.Remaining().IsZero())
		require.NotNil(t, ob.PaidAt())
		assert.Equal(t, at, *ob.PaidAt())
	})

	cases := []struct {
		name   string
		ob     *settlement.Obligation
		offset int64
		errIs  error
	}{
		{name: "error: already paid", ob: builder.NewObligationBuilder().AsPaid(at).BuildDomain(), offset: 1, errIs: settlement.ErrObligationSettled},
		{name: "error: zero deduction", ob: builder.NewObligationBuilder().BuildDomain(), offset: 0, errIs: settlement.ErrInvalidDeduction},
		{name: "error: more than remaining", ob: builder.NewObligationBuilder().WithAmount(100).BuildDomain(), offset: 101, errIs: settlement.ErrOverDeduction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := *tc.ob
			err := tc.ob.Deduct(money.MustNew(tc.offset), at)
			require.ErrorIs(t, err, tc.errIs)
			assert.Equal(t, before, *tc.ob)
		})
	}
}

func TestObligation_IsOverdueAt(t *testing.T) {
	jul, _ := settlement.NewMonth(2024, time.July)
	paidAt := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, builder.NewObligationBuilder().WithMonth(2024, time.June).BuildDomain().IsOverdueAt(jul))
	assert.False(t, builder.NewObligationBuilder().WithMonth(2024, time.July).BuildDomain().IsOverdueAt(jul))
	assert.False(t, builder.NewObligationBuilder().WithMonth(2024, time.June).AsPaid(paidAt).BuildDomain().IsOverdueAt(jul))
}
