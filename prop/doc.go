/*
Package prop implements the unit propagation core of a CDCL SAT solver:
the assignment store, the two-watched-literal index and the propagation
engine that, given a partial assignment, derives all forced assignments
and detects conflicts.

The package deliberately stops there. Decision heuristics, conflict
analysis and clause learning, clause database reduction and restarts are
the caller's business: the engine hands them the trail, the per-variable
reason and level information, and the conflict clause when propagation
halts on one.

A typical interaction looks like this:

    e := prop.New(nbVars)
    for _, c := range clauses {
        e.Attach(c)
    }
    for _, u := range units {
        e.AssignRoot(u)
    }
    if !e.Propagate() {
        // Conflict at level 0: the problem is unsatisfiable.
        confl := e.Conflict()
        ...
    }

During search, the caller opens a decision level, assigns a decision
literal and propagates again:

    e.NewLevel()
    e.AssignDecision(lit)
    if !e.Propagate() {
        // Analyze e.Conflict(), learn a clause, then backtrack,
        // clear the conflict and assert the learned unit:
        e.Backtrack(btLevel)
        e.ClearConflict()
        e.AssignForced(asserting, learned)
    }

The engine is strictly single-threaded: Propagate runs to fixpoint or to
conflict atomically with respect to all other solver state.
*/
package prop
