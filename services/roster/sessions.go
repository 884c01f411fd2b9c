package roster

import (
	"time"

	"pgroster/models"
)

// registerStarters creates one cursor per unique starter name, in
// first-appearance order. A duplicate name folds into the first record's
// cursor rather than getting independent scheduling state.
func (b *buildState) registerStarters(starters []models.Starter) {
	for _, st := range starters {
		if _, exists := b.cursors[st.Name]; exists {
			continue
		}
		start, _ := parseDate(st.StartDate)
		cur := &starterCursor{
			starter:   st,
			blackout:  make(map[string]struct{}, len(st.BlackoutDates)),
			start:     b.rules.normalizeStartDate(start),
			perOutlet: make(map[string]int),
		}
		for _, bd := range st.BlackoutDates {
			cur.blackout[bd] = struct{}{}
		}
		b.order = append(b.order, st.Name)
		b.cursors[st.Name] = cur
	}
}

// sessionDates computes the calendar dates for the mandatory sessions of a
// cohort: the first session lands on/after the normalized start date, each
// later one on the next occurrence of its weekday strictly after the
// session before it.
func sessionDates(start time.Time, days []time.Weekday) []time.Time {
	dates := make([]time.Time, len(days))
	for i, wd := range days {
		if i == 0 {
			dates[i] = weekdayOnOrAfter(start, wd)
		} else {
			dates[i] = weekdayAfter(dates[i-1], wd)
		}
	}
	return dates
}

// placeSessions schedules the mandatory sessions for every starter.
// Co-starting cohorts share session dates, computed once per distinct
// normalized start date. No collision checks run here; sessions are
// compulsory and are placed over blackouts and used slots alike.
func (b *buildState) placeSessions(days []time.Weekday) {
	cohorts := make(map[string][]time.Time)

	for _, name := range b.order {
		cur := b.cursors[name]
		key := dateKey(cur.start)
		dates, ok := cohorts[key]
		if !ok {
			dates = sessionDates(cur.start, days)
			cohorts[key] = dates
		}

		for i, session := range b.rules.Sessions {
			if i >= len(dates) {
				break
			}
			start, err := at(dates[i], session.StartTime)
			if err != nil {
				continue
			}
			b.place(cur, session.Name, dates[i], start, session.Duration, true)
		}

		// General allocation may begin on the first working day after the
		// final session.
		cur.cursor = b.rules.nextWorkingDay(dates[len(dates)-1])
	}
}
