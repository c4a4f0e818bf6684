package money

import (
	"errors"
	"strconv"
)

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money is an amount in minor currency units. Arithmetic is integer-only.
type Money struct {
	amount int64
}

func New(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

// MustNew is for constants and tests.
func MustNew(amount int64) Money {
	m, err := New(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero() Money {
	return Money{}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub fails instead of going below zero.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: m.amount - other.amount}, nil
}

func (m Money) Min(other Money) Money {
	if other.amount < m.amount {
		return other
	}
	return m
}

func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// Prorate returns floor(m × numerator / denominator) using integer division.
func (m Money) Prorate(numerator, denominator int64) Money {
	if denominator <= 0 || numerator <= 0 {
		return Money{}
	}
	return Money{amount: m.amount * numerator / denominator}
}

func (m Money) String() string {
	return strconv.FormatInt(m.amount, 10)
}
