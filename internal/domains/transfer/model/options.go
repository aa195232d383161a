package model

import (
	"slices"
	"time"

	"atoll/shared/calendar"
)

const (
	DefaultDeparture = "10:45"
	DefaultReturn    = "07:00"
)

var (
	fridayDepartures  = []string{"09:45", "16:00"}
	weekdayDepartures = []string{"10:45", "16:00"}
	returns           = []string{"07:00", "14:00"}
)

// DepartureOptions are the speedboat departures on date. An unparseable date gets the regular schedule.
func DepartureOptions(date string) []string {
	if weekday, err := calendar.Weekday(date); err == nil && weekday == time.Friday {
		return slices.Clone(fridayDepartures)
	}

	return slices.Clone(weekdayDepartures)
}

func ReturnOptions() []string {
	return slices.Clone(returns)
}

// CorrectTime keeps selected when it is one of options and otherwise falls back to the first option.
func CorrectTime(selected string, options []string) (string, bool) {
	if len(options) == 0 || slices.Contains(options, selected) {
		return selected, false
	}

	return options[0], true
}
