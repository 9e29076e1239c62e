package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

// RuleKind identifies how a holiday is placed in a given year.
type RuleKind int

// The numeric values are part of the public output ("type" field).
const (
	KindFixed      RuleKind = 1 // same calendar date every year
	KindNextMonday RuleKind = 2 // moved to the Monday on or after its date
	KindEaster     RuleKind = 3 // fixed offset from Easter Sunday
)

// String returns a short label for the kind.
func (k RuleKind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindNextMonday:
		return "next_monday"
	case KindEaster:
		return "easter"
	default:
		return fmt.Sprintf("RuleKind(%d)", int(k))
	}
}

// Rule places a holiday on a concrete date for a year.
// The set of rules is closed: FixedDate, NextMonday and EasterOffset.
type Rule interface {
	Kind() RuleKind
	Date(year int) time.Time

	rule()
}

// FixedDate is observed on Month/Day every year.
type FixedDate struct {
	Month time.Month
	Day   int
}

func (FixedDate) Kind() RuleKind { return KindFixed }

func (r FixedDate) Date(year int) time.Time {
	return ParseISODate(year, r.Month, r.Day)
}

func (FixedDate) rule() {}

// NextMonday is observed on the Monday on or after Month/Day.
type NextMonday struct {
	Month time.Month
	Day   int
}

func (NextMonday) Kind() RuleKind { return KindNextMonday }

func (r NextMonday) Date(year int) time.Time {
	return NextDayOfWeek(ParseISODate(year, r.Month, r.Day), time.Monday)
}

func (NextMonday) rule() {}

// EasterOffset is observed Days after Easter Sunday (negative means before).
type EasterOffset struct {
	Days int
}

func (EasterOffset) Kind() RuleKind { return KindEaster }

func (r EasterOffset) Date(year int) time.Time {
	return AddDays(CalculateEaster(year), r.Days)
}

func (EasterOffset) rule() {}

// Definition is an entry of the holiday table.
type Definition struct {
	Name string
	Rule Rule
}

// table is ordered by rule kind, not by date. That order is the output order.
var table = [...]Definition{
	{"Año Nuevo", FixedDate{time.January, 1}},
	{"Día del Trabajo", FixedDate{time.May, 1}},
	{"Grito de la Independencia", FixedDate{time.July, 20}},
	{"Batalla de Boyacá", FixedDate{time.August, 7}},
	{"Inmaculada Concepción", FixedDate{time.December, 8}},
	{"Navidad", FixedDate{time.December, 25}},
	{"Reyes Magos", NextMonday{time.January, 6}},
	{"San José", NextMonday{time.March, 19}},
	{"San Pedro y San Pablo", NextMonday{time.June, 29}},
	{"Asunción de la Virgen", NextMonday{time.August, 15}},
	{"Día de la Raza", NextMonday{time.October, 12}},
	{"Todos los Santos", NextMonday{time.November, 1}},
	{"Independencia de Cartagena", NextMonday{time.November, 11}},
	{"Jueves Santo", EasterOffset{-3}},
	{"Viernes Santo", EasterOffset{-2}},
	{"Ascensión de Jesús", EasterOffset{43}},
	{"Corpus Christi", EasterOffset{64}},
	{"Sagrado Corazón de Jesús", EasterOffset{71}},
}

// Definitions returns a copy of the holiday table in table order.
func Definitions() []Definition {
	defs := make([]Definition, len(table))
	copy(defs, table[:])
	return defs
}

// Resolved is a holiday placed on a concrete date.
type Resolved struct {
	Date time.Time
	Kind RuleKind
	Name string
}

// MarshalJSON renders the date as YYYY-MM-DD.
func (r Resolved) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date string   `json:"date"`
		Type RuleKind `json:"type"`
		Name string   `json:"name"`
	}{FormatDate(r.Date), r.Kind, r.Name})
}

// ResolveYear returns one Resolved per table entry for year, in table order.
func ResolveYear(year int) ([]Resolved, error) {
	if _, err := ValidateYear(year); err != nil {
		return nil, err
	}
	return resolveYear(year), nil
}

func resolveYear(year int) []Resolved {
	resolved := make([]Resolved, 0, len(table))
	for _, def := range table {
		resolved = append(resolved, Resolved{
			Date: def.Rule.Date(year),
			Kind: def.Rule.Kind(),
			Name: def.Name,
		})
	}
	return resolved
}

// HolidayName returns the name of the holiday on date, or "" if it is not one.
// Only the civil date of date is considered. When two entries fall on the same
// day the first one in table order wins.
func HolidayName(date time.Time) (string, error) {
	date, err := ValidateDate(date)
	if err != nil {
		return "", err
	}
	if def, ok := lookup(date); ok {
		return def.Name, nil
	}
	return "", nil
}

func lookup(date time.Time) (Definition, bool) {
	year := date.Year()
	for _, def := range table {
		if IsSameCalendarDay(date, def.Rule.Date(year)) {
			return def, true
		}
	}
	return Definition{}, false
}
