package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DefaultOffset is the fixed UTC offset for Colombia (America/Bogota has no DST).
const DefaultOffset = "-05:00"

// DateLayout is the layout used for plain calendar dates in URLs and CLI args.
const DateLayout = "2006-01-02"

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// ParseOffset validates an offset of the form ±hh:mm and returns a fixed zone for it.
func ParseOffset(offset string) (*time.Location, error) {
	matches := offsetPattern.FindStringSubmatch(offset)
	if matches == nil {
		return nil, fmt.Errorf("%w: offset %q must look like -05:00", ErrInvalidArgument, offset)
	}

	hours, _ := strconv.Atoi(matches[2])
	minutes, _ := strconv.Atoi(matches[3])
	if hours > 14 || minutes > 59 {
		return nil, fmt.Errorf("%w: offset %q out of range", ErrInvalidArgument, offset)
	}

	seconds := hours*3600 + minutes*60
	if matches[1] == "-" {
		seconds = -seconds
	}
	return time.FixedZone("UTC"+offset, seconds), nil
}

// ISOString formats the civil date of date as YYYY-MM-DDT00:00:00.000 followed by
// offset. The year, month and day are taken as-is; no zone conversion happens.
func ISOString(date time.Time, offset string) string {
	year, month, day := date.Date()
	return fmt.Sprintf("%04d-%02d-%02dT00:00:00.000%s", year, int(month), day, offset)
}

// ParseISODate builds a calendar date anchored at UTC midnight, so Year, Month
// and Day always report the inputs regardless of the host's local zone.
func ParseISODate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns date moved n calendar days (n may be negative).
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// IsSameCalendarDay reports whether a and b share month and day of month.
//
// The year is not compared: callers must only pass dates from the same year.
func IsSameCalendarDay(a, b time.Time) bool {
	_, am, ad := a.Date()
	_, bm, bd := b.Date()
	return am == bm && ad == bd
}

// NextDayOfWeek returns the first date on or after date that falls on target.
// A date already on target is returned unchanged.
func NextDayOfWeek(date time.Time, target time.Weekday) time.Time {
	return AddDays(date, (7+int(target)-int(date.Weekday()))%7)
}

// ParseDateString parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDateString(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must use YYYY-MM-DD", ErrInvalidArgument, s)
	}
	return t, nil
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// CivilDate drops the time of day and zone from t, keeping its calendar date.
func CivilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return ParseISODate(year, month, day)
}

// Today returns the current calendar date as seen in loc.
func Today(loc *time.Location) time.Time {
	return CivilDate(time.Now().In(loc))
}
