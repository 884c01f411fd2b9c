package roster

import (
	"fmt"
	"sort"
	"strings"

	"pgroster/models"
)

// finalize stable-sorts the rows by (starter, date, start time) and builds
// the human-readable summary. Conflict details are only appended when at
// least one counter is non-zero.
func (b *buildState) finalize() ([]models.ScheduleRow, string) {
	sort.SliceStable(b.rows, func(i, j int) bool {
		ri, rj := b.rows[i], b.rows[j]
		if ri.Starter != rj.Starter {
			return ri.Starter < rj.Starter
		}
		if ri.Date != rj.Date {
			return ri.Date < rj.Date
		}
		return ri.StartTime < rj.StartTime
	})

	summary := fmt.Sprintf("%d shifts for %d starter(s)", len(b.rows), len(b.order))
	if b.conflicts.Any() {
		var parts []string
		if n := b.conflicts.OutletConflicts; n > 0 {
			parts = append(parts, fmt.Sprintf("%d outlet conflict(s)", n))
		}
		if n := b.conflicts.DateConflicts; n > 0 {
			parts = append(parts, fmt.Sprintf("%d scheduling conflict(s)", n))
		}
		if n := b.conflicts.FallbackStarters; n > 0 {
			parts = append(parts, fmt.Sprintf("%d starter(s) needed fallback shifts", n))
		}
		if b.conflicts.ComplexSchedule {
			parts = append(parts, "complex scheduling")
		}
		summary += " (" + strings.Join(parts, ", ") + ")"
	}

	return b.rows, summary
}
