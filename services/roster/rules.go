package roster

import (
	"time"

	"pgroster/config"
)

// Outlet labels. The order of DefaultRules().Outlets is the quota-map
// insertion order the primary loop walks candidates in.
const (
	OutletSouthFloor = "South Floor"
	OutletSouthBar   = "South Bar"
	OutletOasisFood  = "Oasis Food"
	OutletOasisBar   = "Oasis Bar"
	OutletNorthFloor = "North Floor"
	OutletDining     = "Dining"
)

// Mandatory session labels.
const (
	SessionWelcomeDay      = "Welcome Day"
	SessionOnboarding      = "Onboarding"
	SessionElevateTraining = "Elevate Training"
)

// OutletConfig describes one service outlet. A nil Weekdays slice means the
// outlet operates every day except the non-working day. StartTimes are HH:MM
// strings indexed cyclically when shifts are placed.
type OutletConfig struct {
	Name         string
	Weekdays     []time.Weekday
	StartTimes   []string
	DefaultQuota int
	MinQuota     int
}

// SessionConfig describes one mandatory onboarding session.
type SessionConfig struct {
	Name      string
	StartTime string
	Duration  time.Duration
}

// Rules is the immutable configuration a builder runs against. It is passed
// in at construction so tests can run alternate rule sets.
type Rules struct {
	NonWorkingDay time.Weekday
	Outlets       []OutletConfig
	Sessions      []SessionConfig
	FallbackOrder []string

	ShiftDuration   time.Duration
	RestGap         time.Duration
	WindowDays      int
	WindowMaxShifts int
	CutoffHour      int

	MaxRounds             int
	ComplexRoundThreshold int
	MaxDateRetries        int
	MaxFallbackSteps      int
}

// DefaultRules builds the production rule set, pulling the tunable bounds
// and cutoff from the loaded configuration.
func DefaultRules() Rules {
	cfg := config.AppConfig
	cutoff := cfg.ShiftCutoffHour
	if cutoff == 0 {
		cutoff = 19
	}
	maxRounds := cfg.MaxRounds
	if maxRounds == 0 {
		maxRounds = 5000
	}
	maxRetries := cfg.MaxDateRetries
	if maxRetries == 0 {
		maxRetries = 100
	}
	maxFallback := cfg.MaxFallbackSteps
	if maxFallback == 0 {
		maxFallback = 5000
	}

	return Rules{
		NonWorkingDay: time.Monday,
		Outlets: []OutletConfig{
			{Name: OutletSouthFloor, StartTimes: []string{"09:00", "12:00", "17:00"}, DefaultQuota: 2},
			{Name: OutletSouthBar, StartTimes: []string{"11:00", "17:00", "19:00"}, DefaultQuota: 1},
			{Name: OutletOasisFood, StartTimes: []string{"10:00", "15:00"}, DefaultQuota: 1},
			{Name: OutletOasisBar, StartTimes: []string{"12:00", "18:00"}, DefaultQuota: 1},
			{Name: OutletNorthFloor, StartTimes: []string{"09:00", "13:00", "17:00"}, DefaultQuota: 0},
			{Name: OutletDining, Weekdays: []time.Weekday{time.Friday, time.Saturday}, StartTimes: []string{"16:00", "18:00"}, DefaultQuota: 0},
		},
		Sessions: []SessionConfig{
			{Name: SessionWelcomeDay, StartTime: "09:00", Duration: 5 * time.Hour},
			{Name: SessionOnboarding, StartTime: "09:30", Duration: 5 * time.Hour},
			{Name: SessionElevateTraining, StartTime: "10:00", Duration: 5 * time.Hour},
		},
		FallbackOrder: []string{
			OutletSouthFloor, OutletSouthBar, OutletOasisFood,
			OutletOasisBar, OutletNorthFloor, OutletDining,
		},

		ShiftDuration:   8 * time.Hour,
		RestGap:         12 * time.Hour,
		WindowDays:      10,
		WindowMaxShifts: 8,
		CutoffHour:      cutoff,

		MaxRounds:             maxRounds,
		ComplexRoundThreshold: 4000,
		MaxDateRetries:        maxRetries,
		MaxFallbackSteps:      maxFallback,
	}
}

// Outlet returns the configured outlet by name, or nil.
func (r Rules) Outlet(name string) *OutletConfig {
	for i := range r.Outlets {
		if r.Outlets[i].Name == name {
			return &r.Outlets[i]
		}
	}
	return nil
}

// Available reports whether the outlet operates on the given weekday. The
// non-working day is never available.
func (r Rules) Available(o *OutletConfig, day time.Weekday) bool {
	if day == r.NonWorkingDay {
		return false
	}
	if len(o.Weekdays) == 0 {
		return true
	}
	for _, wd := range o.Weekdays {
		if wd == day {
			return true
		}
	}
	return false
}
