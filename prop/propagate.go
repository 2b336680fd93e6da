package prop

// Propagate is usually the hot spot of a CDCL solver. The trail doubles as
// a BFS queue: each pending literal's negation is looked up in the watch
// index, and every clause found there either turns out satisfied (cheaply,
// through its blocking literal), finds a replacement literal to watch,
// forces a new assignment, or is the conflict.
//
// Binary clauses are handled without touching clause storage at all: the
// watch record's blocking literal is the whole remaining clause. For long
// clauses the search for a replacement watch resumes from a per-clause
// cached position and wraps around once, which amortizes the cost of
// rescanning long already-false prefixes over many propagation rounds.
//
// Propagate returns true if it reached a fixpoint with no contradiction,
// false if a conflict clause was found. The conflict is then available
// through Conflict, and the engine performs no further assignments until
// it is cleared.
func (e *Engine) Propagate() bool {
	if e.conflict != nil {
		panic("propagation with a conflict pending")
	}
	// Updating the counters inside the loop is costly, so the delta is
	// added once propagation ran to completion.
	before := e.propagated

	for e.conflict == nil && e.propagated < len(e.trail) {
		// The literal that just became false is the one whose watch
		// list must be scanned.
		lit := e.trail[e.propagated].Negation()
		e.propagated++
		ws := e.watchesOf(lit)

		// In-place compaction: i reads, j writes, j <= i.
		i, j := 0, 0
		for i < len(ws) {
			w := ws[i]
			ws[j] = w
			i++
			j++

			if b := e.assigns[w.blocker]; b > 0 {
				continue // clause already satisfied through the blocker
			} else if w.size == 2 {
				// Binary fast path: the clause itself is never read, the
				// blocking literal is the only other literal it has.
				if b < 0 {
					e.conflict = w.clause
					break
				}
				e.assign(w.blocker, w.clause)
			} else {
				c := w.clause
				if c.Garbage() {
					continue
				}
				lits := c.lits

				// Canonicalize so that the falsified watch sits in slot 1.
				if lits[0] == lit {
					lits[0], lits[1] = lits[1], lits[0]
				}
				u := e.assigns[lits[0]]
				if u > 0 {
					// Satisfied: just refresh the blocking literal so the
					// next visit skips even earlier.
					ws[j-1].blocker = lits[0]
					continue
				}

				// Look for a true or unassigned replacement among the
				// non-watched literals.
				size := len(lits)
				k := 2
				v := int8(-1)
				if c.hasPos() {
					// Resume from the saved position to the end, then wrap
					// around from the first non-watched literal up to it.
					k = int(c.pos)
					for k < size && e.assigns[lits[k]] < 0 {
						k++
					}
					if k < size {
						v = e.assigns[lits[k]]
					} else {
						mid := int(c.pos)
						k = 2
						for k < mid && e.assigns[lits[k]] < 0 {
							k++
						}
						if k < mid {
							v = e.assigns[lits[k]]
						}
					}
					c.pos = int32(k) // always save the position
				} else {
					for k < size && e.assigns[lits[k]] < 0 {
						k++
					}
					if k < size {
						v = e.assigns[lits[k]]
					}
				}

				if v > 0 {
					ws[j-1].blocker = lits[k] // satisfied, just replace the blocker
				} else if v == 0 {
					// Replacement found: move the watch from lit to it.
					lits[1], lits[k] = lits[k], lits[1]
					e.watchLiteral(lits[1], lit, c, w.size)
					j-- // drop the record from lit's list
				} else if u == 0 {
					// No replacement and the other watch is unassigned:
					// the clause is unit.
					e.assign(lits[0], c)
				} else {
					e.conflict = c
					break
				}
			}
		}
		// Copy through whatever the break left untouched, then shrink.
		for i < len(ws) {
			ws[j] = ws[i]
			i++
			j++
		}
		e.watches[lit] = ws[:j]
	}

	delta := int64(e.propagated - before)
	if e.simplifying {
		e.Stats.NbProbePropagations += delta
	} else {
		e.Stats.NbPropagations += delta
	}
	if e.conflict != nil {
		if !e.simplifying {
			e.Stats.NbConflicts++
		}
		return false
	}
	return true
}
