package prop

import "fmt"

// AssignRoot records l as a root-level fact: a permanent simplification
// fact usable by external preprocessing.
// It must only be called at decision level 0, on an unassigned variable.
func (e *Engine) AssignRoot(l Lit) {
	if len(e.trailLim) != 0 {
		panic(fmt.Sprintf("root assignment of %d above decision level 0", l.Int()))
	}
	if e.eliminated[l.Var()] {
		panic(fmt.Sprintf("root assignment of eliminated variable %d", l.Var()+1))
	}
	e.assign(l, nil)
}

// AssignDecision records l as a decision.
// It must only be called at a decision level > 0, and only once the
// pending-propagation queue is fully drained: decisions are never made
// while forced consequences remain unapplied.
func (e *Engine) AssignDecision(l Lit) {
	if len(e.trailLim) == 0 {
		panic(fmt.Sprintf("decision %d at root level", l.Int()))
	}
	if e.propagated != len(e.trail) {
		panic(fmt.Sprintf("decision %d while %d propagations are pending", l.Int(), len(e.trail)-e.propagated))
	}
	e.assign(l, nil)
}

// AssignForced records that l is forced by the given reason clause. It is
// used both by Propagate itself and by external conflict-driven learning,
// when asserting a learned clause's unit consequence.
func (e *Engine) AssignForced(l Lit, reason *Clause) {
	if reason == nil {
		panic(fmt.Sprintf("forced assignment of %d without a reason", l.Int()))
	}
	e.assign(l, reason)
}

// assign is the single mutation all assignment operations share.
// It records level, trail position and reason for the variable, writes the
// tri-state value for both polarities, saves the phase (outside of
// simplifying mode), stamps the fixed-facts timestamp and appends l to the
// trail. This is the hottest write path of the whole solver: Propagate
// calls it for every derived literal.
func (e *Engine) assign(l Lit, reason *Clause) {
	v := l.Var()
	if e.assigns[l] != 0 {
		panic(fmt.Sprintf("assignment of already-assigned literal %d", l.Int()))
	}
	if e.eliminated[v] && reason != nil {
		panic(fmt.Sprintf("forced assignment of eliminated variable %d", v+1))
	}
	e.levels[v] = decLevel(len(e.trailLim))
	e.trailPos[v] = int32(len(e.trail))
	e.reason[v] = reason
	if len(e.trailLim) == 0 {
		e.Stats.NbFixed++
	}
	e.assigns[l] = 1
	e.assigns[l.Negation()] = -1
	if !e.simplifying { // phase saving during search
		e.polarity[v] = l.IsPositive()
	}
	e.fixedAt[l] = e.Stats.NbFixed
	e.trail = append(e.trail, l)

	// Propagation will scan the negation's watch list next, so give the
	// caller a chance to prefetch it.
	if e.postAssign != nil {
		neg := l.Negation()
		e.postAssign(neg, e.watches[neg])
	}
}

// Backtrack undoes every assignment made at a level greater than lvl and
// reopens lvl as the current level. The trail is truncated, not scanned
// element by element beyond the cut, and the propagation cursor is rewound
// with it. Saved phases survive backtracking.
func (e *Engine) Backtrack(lvl int) {
	if lvl >= len(e.trailLim) {
		return
	}
	bound := e.trailLim[lvl]
	for i := len(e.trail) - 1; i >= bound; i-- {
		l := e.trail[i]
		v := l.Var()
		e.assigns[l] = 0
		e.assigns[l.Negation()] = 0
		e.reason[v] = nil
	}
	e.trail = e.trail[:bound]
	if e.propagated > bound {
		e.propagated = bound
	}
	e.trailLim = e.trailLim[:lvl]
}
