package prop

// A Watcher references a clause from the watch list of one of its two
// watched literals. blocker is another lit of the same clause, cached so
// that a satisfied clause can be skipped without touching the clause at
// all. size distinguishes the binary fast path, for which the clause is
// never dereferenced during propagation.
type Watcher struct {
	blocker Lit
	clause  *Clause
	size    int32
}

// Clause returns the clause the watch record points at.
func (w Watcher) Clause() *Clause {
	return w.clause
}

// watchLiteral appends a watch record for l referencing c, with the given
// blocking literal. It is called on initial clause insertion and whenever
// propagation moves a watch to a new literal.
func (e *Engine) watchLiteral(l, blocker Lit, c *Clause, size int32) {
	e.watches[l] = append(e.watches[l], Watcher{blocker: blocker, clause: c, size: size})
}

// watchesOf returns the watch list of l. The propagation engine scans and
// compacts it in place, so no one else may hold a reference into it across
// a propagation pass.
func (e *Engine) watchesOf(l Lit) []Watcher {
	return e.watches[l]
}

// Attach registers the clause's first two literals as its watched pair.
// For binary clauses the pair is permanent: both records stay in their
// endpoint literals' lists for the clause's lifetime and are never swapped.
// Unit clauses go through AssignRoot instead.
func (e *Engine) Attach(c *Clause) {
	if c.Len() < 2 {
		panic("cannot attach a clause of size < 2")
	}
	size := int32(c.Len())
	e.watchLiteral(c.First(), c.Second(), c, size)
	e.watchLiteral(c.Second(), c.First(), c, size)
}
