package roster

import "pgroster/models"

// allocate runs the primary allocation loop: synchronized rounds over all
// starters, at most one placement per starter per round, until everyone is
// done, a round makes no progress, or the round ceiling is hit. Iteration
// ceilings stand in for cancellation; the loop must self-terminate.
func (b *buildState) allocate() {
	for round := 0; round < b.rules.MaxRounds; round++ {
		if round >= b.rules.ComplexRoundThreshold {
			b.conflicts.ComplexSchedule = true
		}

		progress := false
		for _, name := range b.order {
			cur := b.cursors[name]
			if cur.done {
				continue
			}
			if cur.placed >= b.target {
				cur.done = true
				continue
			}
			if cur.remaining <= 0 && !b.selectOutlet(cur) {
				// No outlet has quota left for this starter; any shortfall
				// is picked up by the fallback pass.
				cur.done = true
				continue
			}
			b.placeNextShift(cur)
			progress = true
		}
		if !progress {
			break
		}
	}
}

// selectOutlet starts a new outlet block for the starter. Candidates are
// outlets whose per-starter placed count is still below quota; the first one
// whose slot is free and whose weekday rule passes on the cursor date wins.
// If none qualifies the first candidate is taken anyway and an outlet
// conflict is recorded — the cursor advance deals with the clash.
func (b *buildState) selectOutlet(cur *starterCursor) bool {
	var candidates []models.QuotaSpec
	for _, q := range b.quotas {
		if cur.perOutlet[q.Outlet] < q.Count {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	if b.rng != nil {
		b.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	chosen := -1
	for i, cand := range candidates {
		o := b.rules.Outlet(cand.Outlet)
		if o == nil {
			continue
		}
		if !b.slotUsed(cur.cursor, cand.Outlet) && b.rules.Available(o, cur.cursor.Weekday()) {
			chosen = i
			break
		}
	}
	if chosen < 0 {
		b.conflicts.OutletConflicts++
		if b.rng != nil {
			b.rng.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})
		}
		chosen = 0
	}

	pick := candidates[chosen]
	cur.currentOutlet = pick.Outlet
	cur.remaining = pick.Count - cur.perOutlet[pick.Outlet]
	return true
}

// placeNextShift advances the starter's cursor one working day at a time
// until every constraint passes, then emits one shift at the resolved date.
// The advance is capped: if the date is still blocked when the cap runs out
// the shift is placed anyway, accepting a constraint violation over looping
// forever.
func (b *buildState) placeNextShift(cur *starterCursor) {
	o := b.rules.Outlet(cur.currentOutlet)
	if o == nil {
		cur.remaining = 0
		return
	}
	clock := b.startTimeFor(o, cur.placed)

	d := cur.cursor
	moved := false
	for i := 0; i < b.rules.MaxDateRetries; i++ {
		if !b.shiftBlocked(cur, o, d, clock) {
			break
		}
		d = b.rules.nextWorkingDay(d)
		moved = true
	}
	if moved {
		b.conflicts.DateConflicts++
	}

	start, err := at(d, clock)
	if err != nil {
		cur.remaining = 0
		return
	}
	b.place(cur, o.Name, d, start, b.rules.ShiftDuration, false)
	cur.remaining--
	cur.cursor = b.rules.nextWorkingDay(d)
}
