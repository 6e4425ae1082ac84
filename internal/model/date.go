package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the Go layout for MMDDYYYY.
const DateLayout = "01022006"

// ErrInvalidDate is returned when an order date does not match MMDDYYYY.
var ErrInvalidDate = errors.New("invalid order date")

// NormalizeDate strips slash separators, turning "07/06/2020" into "07062020".
func NormalizeDate(s string) string {
	return strings.ReplaceAll(s, "/", "")
}

// ParseOrderDate parses s as MMDDYYYY after slashes are stripped.
// The result is midnight UTC of that calendar day.
func ParseOrderDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, NormalizeDate(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatOrderDate renders t as MMDDYYYY.
func FormatOrderDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsFutureDate reports whether the calendar day of date is strictly after
// the calendar day of now. now is read in its own location.
func IsFutureDate(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.After(today)
}
