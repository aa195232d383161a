// Package calendar does date arithmetic on calendar days.
//
// Booking dates travel as "YYYY-MM-DD" strings. They are compared as civil day numbers,
// never as instants, so the offset of the location a value was parsed in cannot move a
// stay boundary by a day.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"atoll/shared/constant"
	"atoll/shared/timezone"
)

const secondsPerDay = 24 * 60 * 60

var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a "YYYY-MM-DD" string as local midnight in the application timezone.
func ParseDate(value string) (time.Time, error) {
	date, err := timezone.Parse(constant.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return date, nil
}

// FormatDate renders the calendar components of t, whatever its location.
func FormatDate(t time.Time) string {
	return t.Format(constant.DateLayout)
}

// DayNumber returns the number of days between 1970-01-01 and the calendar date of t.
func DayNumber(t time.Time) int64 {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// DaysInMonth lists every day of the month at local midnight, in order.
func DaysInMonth(year int, month time.Month) []time.Time {
	first := timezone.Date(year, month, 1)
	days := make([]time.Time, 0, 31)

	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}

func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// IsDateInRange reports whether the calendar date of day lies within [start, end], both ends included.
// Unparseable bounds never match.
func IsDateInRange(day time.Time, start, end string) bool {
	from, err := ParseDate(start)
	if err != nil {
		return false
	}

	to, err := ParseDate(end)
	if err != nil {
		return false
	}

	n := DayNumber(day)

	return DayNumber(from) <= n && n <= DayNumber(to)
}

// Overlaps reports whether two inclusive date ranges share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	as, aOK := dayOf(aStart)
	ae, aeOK := dayOf(aEnd)
	bs, bOK := dayOf(bStart)
	be, beOK := dayOf(bEnd)

	if !aOK || !aeOK || !bOK || !beOK {
		return false
	}

	return as <= be && bs <= ae
}

// Nights is ceil((end - start) / 1 day). Calendar dates make the division exact.
func Nights(start, end string) (int, error) {
	from, err := ParseDate(start)
	if err != nil {
		return 0, err
	}

	to, err := ParseDate(end)
	if err != nil {
		return 0, err
	}

	return int(DayNumber(to) - DayNumber(from)), nil
}

// AddDays returns date shifted by n calendar days.
func AddDays(date string, n int) (string, error) {
	parsed, err := ParseDate(date)
	if err != nil {
		return constant.Empty, err
	}

	return FormatDate(parsed.AddDate(0, 0, n)), nil
}

func Weekday(date string) (time.Weekday, error) {
	parsed, err := ParseDate(date)
	if err != nil {
		return time.Sunday, err
	}

	return parsed.Weekday(), nil
}

// Compare orders two date strings by calendar day. Unparseable values sort after valid ones.
func Compare(a, b string) int {
	an, aOK := dayOf(a)
	bn, bOK := dayOf(b)

	switch {
	case !aOK && !bOK:
		return 0
	case !aOK:
		return 1
	case !bOK:
		return -1
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(value string) (int, time.Month, error) {
	parsed, err := time.Parse(constant.MonthLayout, value)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q", ErrInvalidDate, value)
	}

	return parsed.Year(), parsed.Month(), nil
}

// Today returns today's date string in the application timezone.
func Today() string {
	return FormatDate(timezone.Today())
}

func IsWeekend(day time.Time) bool {
	return day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
}

func dayOf(date string) (int64, bool) {
	parsed, err := ParseDate(date)
	if err != nil {
		return 0, false
	}

	return DayNumber(parsed), true
}
