package settlement

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidMonth = errors.New("invalid month")

const monthLayout = "2006-01"

// Month is a calendar month key, e.g. 2025-03.
type Month struct {
	year  int
	month time.Month
}

func NewMonth(year int, month time.Month) (Month, error) {
	if year < 1 || month < time.January || month > time.December {
		return Month{}, ErrInvalidMonth
	}
	return Month{year: year, month: month}, nil
}

func MonthOf(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return MonthOf(t), nil
}

func (m Month) Year() int          { return m.year }
func (m Month) Month() time.Month  { return m.month }
func (m Month) IsZero() bool       { return m.year == 0 }
func (m Month) String() string     { return m.FirstDay().Format(monthLayout) }
func (m Month) Equal(o Month) bool { return m == o }

// FirstDay is midnight UTC of the 1st; DATE columns store it as-is.
func (m Month) FirstDay() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Days() int {
	return m.FirstDay().AddDate(0, 1, -1).Day()
}

func (m Month) Next() Month {
	return MonthOf(m.FirstDay().AddDate(0, 1, 0))
}

func (m Month) Before(o Month) bool {
	return m.Compare(o) < 0
}

func (m Month) After(o Month) bool {
	return m.Compare(o) > 0
}

func (m Month) Compare(o Month) int {
	switch {
	case m.year != o.year:
		if m.year < o.year {
			return -1
		}
		return 1
	case m.month != o.month:
		if m.month < o.month {
			return -1
		}
		return 1
	default:
		return 0
	}
}
