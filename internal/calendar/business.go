package calendar

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rickar/cal/v2"
)

// NewBusinessCalendar returns a business calendar (Monday to Friday) with every
// Colombian holiday registered. Each holiday uses the same rule as the table.
func NewBusinessCalendar() *cal.BusinessCalendar {
	bc := cal.NewBusinessCalendar()
	for _, def := range table {
		bc.AddHoliday(calHoliday(def))
	}
	return bc
}

func calHoliday(def Definition) *cal.Holiday {
	rule := def.Rule
	return &cal.Holiday{
		Name:      def.Name,
		Type:      cal.ObservancePublic,
		StartYear: MinYear,
		Func: func(_ *cal.Holiday, year int) time.Time {
			return rule.Date(year)
		},
	}
}

var defaultBusinessCalendar = sync.OnceValue(NewBusinessCalendar)

// IsBusinessDay reports whether date is a weekday that is not a holiday.
func IsBusinessDay(date time.Time) (bool, error) {
	date, err := ValidateDate(date)
	if err != nil {
		return false, err
	}
	return defaultBusinessCalendar().IsWorkday(CivilDate(date)), nil
}

// NextBusinessDay returns the first business day strictly after date.
func NextBusinessDay(date time.Time) (time.Time, error) {
	return AddBusinessDays(date, 1)
}

// AddBusinessDays moves date by n business days. With n == 0 the date itself is
// returned if it is a business day, otherwise the next one.
func AddBusinessDays(date time.Time, n int) (time.Time, error) {
	date, err := ValidateDate(date)
	if err != nil {
		return time.Time{}, err
	}

	bc := defaultBusinessCalendar()
	current := CivilDate(date)
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}

	if n == 0 {
		for !bc.IsWorkday(current) {
			current = AddDays(current, 1)
		}
		return current, nil
	}

	for n > 0 {
		current = AddDays(current, step)
		if current.Year() < MinYear {
			return time.Time{}, fmt.Errorf("%w: business day before %d", ErrInvalidArgument, MinYear)
		}
		if bc.IsWorkday(current) {
			n--
		}
	}
	return current, nil
}

// Chronological returns a copy of resolved sorted by date. Entries on the same
// date keep their table order.
func Chronological(resolved []Resolved) []Resolved {
	sorted := slices.Clone(resolved)
	slices.SortStableFunc(sorted, func(a, b Resolved) int {
		return a.Date.Compare(b.Date)
	})
	return sorted
}
