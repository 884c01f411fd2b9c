package roster

// fallback fills remaining slots for every starter still short of the
// target after the primary loop. It walks forward one working day at a
// time, scanning the fixed outlet preference order for the first outlet
// that satisfies every constraint. Hard-stopped by the step ceiling.
func (b *buildState) fallback() {
	for _, name := range b.order {
		cur := b.cursors[name]
		if cur.placed >= b.target {
			continue
		}
		b.conflicts.FallbackStarters++

		d := cur.cursor
		for steps := 0; steps < b.rules.MaxFallbackSteps && cur.placed < b.target; steps++ {
			// Blackout days are skipped outright, without spending a
			// preference scan.
			if _, blackout := cur.blackout[dateKey(d)]; blackout {
				d = b.rules.nextWorkingDay(d)
				continue
			}

			for _, outletName := range b.rules.FallbackOrder {
				o := b.rules.Outlet(outletName)
				if o == nil {
					continue
				}
				clock := b.startTimeFor(o, cur.placed)
				if b.shiftBlocked(cur, o, d, clock) {
					continue
				}
				start, err := at(d, clock)
				if err != nil {
					continue
				}
				b.place(cur, o.Name, d, start, b.rules.ShiftDuration, false)
				break
			}

			d = b.rules.nextWorkingDay(d)
		}
		cur.cursor = d
	}
}
