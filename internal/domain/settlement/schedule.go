package settlement

import (
	"errors"
	"slices"
	"time"

	"bookcase-rental/internal/domain/money"

	"github.com/google/uuid"
)

var ErrExpirationBeforeStart = errors.New("expiration date is before start date")

// FirstMonthAmount prorates by the days left in start's month, start day included.
func FirstMonthAmount(monthlyPrice money.Money, start time.Time) money.Money {
	totalDays := int64(MonthOf(start).Days())
	remainingDays := totalDays - int64(start.Day()-1)
	return monthlyPrice.Prorate(remainingDays, totalDays)
}

// BuildSchedule returns one obligation per calendar month from start's month
// through expiration's month inclusive. Only the first month is prorated; if that
// rounds down to zero the month is recorded already PAID.
func BuildSchedule(occupancyID, ownerID uuid.UUID, start, expiration time.Time, monthlyPrice money.Money) ([]*Obligation, error) {
	first := MonthOf(start)
	last := MonthOf(expiration)
	if last.Before(first) {
		return nil, ErrExpirationBeforeStart
	}

	var schedule []*Obligation
	for m := first; !m.After(last); m = m.Next() {
		amount := monthlyPrice
		if m == first {
			amount = FirstMonthAmount(monthlyPrice, start)
		}
		schedule = append(schedule, NewObligation(occupancyID, ownerID, m, amount))
	}
	return schedule, nil
}

// SortOldestFirst orders obligations by target month; ties keep their input order.
func SortOldestFirst(obligations []*Obligation) {
	slices.SortStableFunc(obligations, func(a, b *Obligation) int {
		return a.targetMonth.Compare(b.targetMonth)
	})
}
