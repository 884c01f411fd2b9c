package models

import (
	"encoding/json"
)

// RosterRequestInput is the request body for a roster build. Weekday fields
// are pointers so the handler can fall back to configured defaults when a
// field is absent rather than treating it as Sunday.
type RosterRequestInput struct {
	Starters   []Starter     `json:"starters"`
	Blocks     QuotaSpecList `json:"blocks"`
	WelcomeDay *int          `json:"welcomeDay"`
	OnboardDay *int          `json:"onboardDay"`
	ElevateDay *int          `json:"elevateDay"`
	Shuffle    bool          `json:"shuffle"`
	MinShifts  *int          `json:"minShifts"`
}

// QuotaSpecList accepts both historical quota shapes the browser tool sends:
// a list of objects ({"outlet"|"name", "count"|"shifts"|"value"}) or a plain
// outlet-to-count map. The core only ever sees normalized QuotaSpec values;
// this adapter keeps the shape-sniffing at the boundary.
type QuotaSpecList []QuotaSpec

func (q *QuotaSpecList) UnmarshalJSON(data []byte) error {
	*q = nil

	var asList []map[string]json.RawMessage
	if err := json.Unmarshal(data, &asList); err == nil {
		for _, entry := range asList {
			outlet := firstString(entry, "outlet", "name")
			if outlet == "" {
				continue
			}
			*q = append(*q, QuotaSpec{
				Outlet: outlet,
				Count:  firstCount(entry, "count", "shifts", "value"),
			})
		}
		return nil
	}

	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &asMap); err != nil {
		return err
	}
	for outlet, raw := range asMap {
		*q = append(*q, QuotaSpec{Outlet: outlet, Count: parseCount(raw)})
	}
	return nil
}

func firstString(entry map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		raw, ok := entry[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return ""
}

func firstCount(entry map[string]json.RawMessage, keys ...string) int {
	for _, key := range keys {
		if raw, ok := entry[key]; ok {
			return parseCount(raw)
		}
	}
	return -1
}

// parseCount returns -1 for malformed numbers; the builder floors negative
// counts to the configured per-outlet minimum, so malformed input degrades
// to the minimum rather than aborting the build.
func parseCount(raw json.RawMessage) int {
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return -1
		}
		if err := json.Unmarshal([]byte(s), &n); err != nil {
			return -1
		}
	}
	return int(n)
}
