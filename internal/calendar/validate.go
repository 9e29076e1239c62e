package calendar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// MinYear is the first year the current rules apply. Ley 51 de 1983 moved
// most holidays to the following Monday, so only years after 1983 are valid.
const MinYear = 1984

// ErrInvalidArgument is returned for non-date inputs and years before MinYear.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidateYear coerces value to an integer year and checks it is after 1983.
// Integer kinds, integral floats and base-10 strings are accepted.
func ValidateYear(value any) (int, error) {
	year, ok := coerceYear(value)
	if !ok {
		return 0, fmt.Errorf("%w: year %v is not an integer", ErrInvalidArgument, value)
	}
	if year < MinYear {
		return 0, fmt.Errorf("%w: year %d should be an integer > 1983", ErrInvalidArgument, year)
	}
	return year, nil
}

func coerceYear(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return clampInt64(v)
	case uint:
		return clampUint64(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return clampUint64(uint64(v))
	case uint64:
		return clampUint64(v)
	case float32:
		return coerceFloat(float64(v))
	case float64:
		return coerceFloat(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func clampInt64(v int64) (int, bool) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, false
	}
	return int(v), true
}

func clampUint64(v uint64) (int, bool) {
	if v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

func coerceFloat(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	return clampInt64(int64(v))
}

// ValidateDate checks that value is a calendar date (time.Time or a non-nil
// *time.Time) whose year passes ValidateYear. Strings and numeric timestamps
// are rejected rather than parsed.
func ValidateDate(value any) (time.Time, error) {
	var date time.Time
	switch v := value.(type) {
	case time.Time:
		date = v
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil date", ErrInvalidArgument)
		}
		date = *v
	default:
		return time.Time{}, fmt.Errorf("%w: %T is not a date", ErrInvalidArgument, value)
	}

	if date.IsZero() {
		return time.Time{}, fmt.Errorf("%w: zero date", ErrInvalidArgument)
	}
	if _, err := ValidateYear(date.Year()); err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %w", err)
	}
	return date, nil
}
