package models

// ScheduleRow is one emitted shift or mandatory session.
type ScheduleRow struct {
	Starter   string `json:"starter"`
	StaffID   string `json:"staffId,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Outlet    string `json:"outlet"`
	Sequence  int    `json:"sequence"`
	Mandatory bool   `json:"mandatory"`
	Display   string `json:"display"`
}

// ConflictCounters tallies the constraint-exhaustion conditions hit during
// one build. None of these are fatal; the build still returns a best-effort
// schedule.
type ConflictCounters struct {
	OutletConflicts  int  `json:"outletConflicts"`
	DateConflicts    int  `json:"dateConflicts"`
	FallbackStarters int  `json:"fallbackStarters"`
	ComplexSchedule  bool `json:"complexSchedule"`
}

// Any reports whether any conflict was recorded.
func (c ConflictCounters) Any() bool {
	return c.OutletConflicts > 0 || c.DateConflicts > 0 || c.FallbackStarters > 0 || c.ComplexSchedule
}

// RosterStats echoes the effective build parameters back to the caller.
type RosterStats struct {
	Starters   int `json:"starters"`
	MinShifts  int `json:"minShifts"`
	WelcomeDay int `json:"welcomeDay"`
	OnboardDay int `json:"onboardDay"`
	ElevateDay int `json:"elevateDay"`
}

// RosterResult is the full output of one roster build.
type RosterResult struct {
	RunID     string           `json:"runId"`
	Rows      []ScheduleRow    `json:"rows"`
	Conflicts ConflictCounters `json:"conflicts"`
	Summary   string           `json:"summary"`
	Stats     RosterStats      `json:"stats"`
}
