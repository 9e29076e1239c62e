package calendar

import (
	"time"
)

// Holiday is the public view of a resolved holiday.
type Holiday struct {
	Date string   `json:"date"` // ISO 8601 with offset, e.g. 2010-01-01T00:00:00.000-05:00
	Type RuleKind `json:"type"` // 1=fixed, 2=next Monday, 3=Easter relative
	Name string   `json:"name"`
}

// GetHoliday returns the Spanish name of the holiday on date, or "" when date
// is a regular day. The offset is validated but the date's own calendar
// fields are used without conversion.
func GetHoliday(date time.Time, offset string) (string, error) {
	if _, err := ParseOffset(offset); err != nil {
		return "", err
	}
	return HolidayName(date)
}

// GetHolidayToday is GetHoliday for the current date in the offset's zone.
func GetHolidayToday(offset string) (string, error) {
	loc, err := ParseOffset(offset)
	if err != nil {
		return "", err
	}
	return HolidayName(Today(loc))
}

// GetAllHolidays returns the 18 holidays of year in table order (not
// chronological). Dates are rendered with ISOString and offset.
func GetAllHolidays(year int, offset string) ([]Holiday, error) {
	if _, err := ParseOffset(offset); err != nil {
		return nil, err
	}
	resolved, err := ResolveYear(year)
	if err != nil {
		return nil, err
	}
	return ToHolidays(resolved, offset), nil
}

// GetAllHolidaysThisYear is GetAllHolidays for the current year in the offset's zone.
func GetAllHolidaysThisYear(offset string) ([]Holiday, error) {
	loc, err := ParseOffset(offset)
	if err != nil {
		return nil, err
	}
	return GetAllHolidays(Today(loc).Year(), offset)
}

// ToHolidays renders resolved holidays for output, keeping their order.
func ToHolidays(resolved []Resolved, offset string) []Holiday {
	holidays := make([]Holiday, len(resolved))
	for i, r := range resolved {
		holidays[i] = Holiday{
			Date: ISOString(r.Date, offset),
			Type: r.Kind,
			Name: r.Name,
		}
	}
	return holidays
}
