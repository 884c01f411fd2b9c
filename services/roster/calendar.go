package roster

import (
	"fmt"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func parseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q is not in YYYY-MM-DD form", s)
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

func dateKey(d time.Time) string {
	return d.Format(dateLayout)
}

// at combines a calendar date with an HH:MM clock string.
func at(d time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, d.Location()), nil
}

// nextWorkingDay advances one day, then keeps going while the landing day is
// the non-working day.
func (r Rules) nextWorkingDay(d time.Time) time.Time {
	d = d.AddDate(0, 0, 1)
	for d.Weekday() == r.NonWorkingDay {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// normalizeStartDate moves a start date falling on the non-working day
// forward to the first working day.
func (r Rules) normalizeStartDate(d time.Time) time.Time {
	for d.Weekday() == r.NonWorkingDay {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// weekdayOnOrAfter returns the first occurrence of wd on or after d.
func weekdayOnOrAfter(d time.Time, wd time.Weekday) time.Time {
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// weekdayAfter returns the first occurrence of wd strictly after d.
func weekdayAfter(d time.Time, wd time.Weekday) time.Time {
	return weekdayOnOrAfter(d.AddDate(0, 0, 1), wd)
}
