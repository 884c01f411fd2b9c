package roster

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"pgroster/models"
)

// starterCursor is the transient scheduling state for one starter. Cursors
// are keyed by starter name, so duplicate names deliberately alias the same
// state (the output joins rows back to starters by name).
type starterCursor struct {
	starter  models.Starter
	blackout map[string]struct{}
	start    time.Time // normalized start date

	cursor        time.Time // next date the allocator may consider
	placed        int       // rows placed so far, mandatory sessions included
	perOutlet     map[string]int
	currentOutlet string
	remaining     int // shifts left in the current outlet block
	lastEnd       time.Time
	shiftDates    []time.Time // non-session dates, for the trailing-window rule
	done          bool
}

// buildState holds everything one build invocation mutates. Nothing in it
// survives the invocation.
type buildState struct {
	rules  Rules
	rng    *rand.Rand // nil unless shuffle was requested
	target int

	quotas  []models.QuotaSpec
	order   []string // unique starter names, first-appearance order
	cursors map[string]*starterCursor

	usedSlots map[string]struct{} // date|outlet
	rows      []models.ScheduleRow
	conflicts models.ConflictCounters
}

func newBuildState(rules Rules, rng *rand.Rand, quotas []models.QuotaSpec, target int) *buildState {
	return &buildState{
		rules:     rules,
		rng:       rng,
		target:    target,
		quotas:    quotas,
		cursors:   make(map[string]*starterCursor),
		usedSlots: make(map[string]struct{}),
	}
}

func slotKey(d time.Time, outlet string) string {
	return dateKey(d) + "|" + outlet
}

func (b *buildState) slotUsed(d time.Time, outlet string) bool {
	_, used := b.usedSlots[slotKey(d, outlet)]
	return used
}

// place emits one row and updates all per-starter and global bookkeeping.
// Mandatory sessions bypass the used-slot set so co-starting cohorts can
// share a session date.
func (b *buildState) place(cur *starterCursor, outlet string, d, start time.Time, dur time.Duration, mandatory bool) {
	end := start.Add(dur)
	cur.placed++
	row := models.ScheduleRow{
		Starter:   cur.starter.Name,
		StaffID:   cur.starter.StaffID,
		Date:      dateKey(d),
		StartTime: start.Format("15:04"),
		EndTime:   end.Format("15:04"),
		Outlet:    outlet,
		Sequence:  cur.placed,
		Mandatory: mandatory,
	}
	row.Display = fmt.Sprintf("%s %s-%s %s", row.Date, row.StartTime, row.EndTime, outlet)
	b.rows = append(b.rows, row)

	if !mandatory {
		b.usedSlots[slotKey(d, outlet)] = struct{}{}
		cur.perOutlet[outlet]++
		cur.shiftDates = append(cur.shiftDates, d)
	}
	if end.After(cur.lastEnd) {
		cur.lastEnd = end
	}
}

// startTimeFor picks the outlet's start time for the starter's next shift:
// a cyclic index over the outlet's time list, restricted to times at or
// before the daily cutoff.
func (b *buildState) startTimeFor(o *OutletConfig, rotation int) string {
	cutoff := b.rules.CutoffHour * 60
	var times []string
	for _, clock := range o.StartTimes {
		if clockMinutes(clock) <= cutoff {
			times = append(times, clock)
		}
	}
	if len(times) == 0 {
		times = o.StartTimes
	}
	return times[rotation%len(times)]
}

func clockMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// windowBlocked reports whether the starter already has the maximum number
// of working shifts inside the trailing window ending on d.
func (b *buildState) windowBlocked(cur *starterCursor, d time.Time) bool {
	from := d.AddDate(0, 0, -(b.rules.WindowDays - 1))
	n := 0
	for _, sd := range cur.shiftDates {
		if !sd.Before(from) && !sd.After(d) {
			n++
		}
	}
	return n >= b.rules.WindowMaxShifts
}

// restBlocked reports whether starting at the given time would violate the
// minimum rest gap since the starter's latest scheduled end.
func (b *buildState) restBlocked(cur *starterCursor, start time.Time) bool {
	if cur.lastEnd.IsZero() {
		return false
	}
	return start.Sub(cur.lastEnd) < b.rules.RestGap
}

// shiftBlocked is the full per-day constraint check the allocator advances
// the cursor against.
func (b *buildState) shiftBlocked(cur *starterCursor, o *OutletConfig, d time.Time, clock string) bool {
	if _, blackout := cur.blackout[dateKey(d)]; blackout {
		return true
	}
	if b.slotUsed(d, o.Name) {
		return true
	}
	if !b.rules.Available(o, d.Weekday()) {
		return true
	}
	if b.windowBlocked(cur, d) {
		return true
	}
	start, err := at(d, clock)
	if err != nil {
		return true
	}
	return b.restBlocked(cur, start)
}
