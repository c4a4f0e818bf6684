//go:build unit

package money_test

import (
	"testing"

	"bookcase-rental/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("success: zero and positive amounts", func(t *testing.T) {
		zero, err := money.New(0)
		require.NoError(t, err)
		assert.True(t, zero.IsZero())
		assert.False(t, zero.IsPositive())

		m, err := money.New(1500)
		require.NoError(t, err)
		assert.Equal(t, int64(1500), m.Amount())
		assert.Equal(t, "1500", m.String())
	})

	t.Run("error: negative amount", func(t *testing.T) {
		_, err := money.New(-1)
		require.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("sub never goes below zero", func(t *testing.T) {
		left, err := money.MustNew(100).Sub(money.MustNew(100))
		require.NoError(t, err)
		assert.True(t, left.IsZero())

		_, err = money.MustNew(100).Sub(money.MustNew(101))
		require.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("min picks the smaller amount", func(t *testing.T) {
		assert.Equal(t, int64(30), money.MustNew(30).Min(money.MustNew(40)).Amount())
		assert.Equal(t, int64(30), money.MustNew(40).Min(money.MustNew(30)).Amount())
	})
}

func TestMoney_Prorate(t *testing.T) {
	cases := []struct {
		name        string
		amount      int64
		numerator   int64
		denominator int64
		want        int64
	}{
		{name: "whole month", amount: 50000, numerator: 30, denominator: 30, want: 50000},
		{name: "floors the fraction", amount: 50000, numerator: 20, denominator: 30, want: 33333},
		{name: "single day of 31", amount: 31000, numerator: 1, denominator: 31, want: 1000},
		{name: "uneven single day", amount: 10000, numerator: 1, denominator: 31, want: 322},
		{name: "zero numerator", amount: 50000, numerator: 0, denominator: 30, want: 0},
		{name: "zero denominator", amount: 50000, numerator: 10, denominator: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := money.MustNew(tc.amount).Prorate(tc.numerator, tc.denominator)
			assert.Equal(t, tc.want, got.Amount())
		})
	}
}
