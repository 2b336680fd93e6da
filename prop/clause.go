package prop

import "fmt"

// A Clause is an ordered list of Lit, together with the per-clause state the
// propagation engine maintains: a garbage flag and, for long clauses, a cached
// scan position used when looking for a replacement watch.
type Clause struct {
	lits []Lit
	// pos caches where the last search for a replacement watch stopped,
	// so that repeated visits do not rescan an already-false prefix.
	// Only meaningful for clauses long enough to track it (see hasPos).
	pos int32
	// flags' leftmost bit is the garbage flag; the rest is reserved.
	flags uint32
}

const garbageMask uint32 = 1 << 31

// Clauses of size 3 do not track a scan position: the only non-watched
// literal is found as fast by a plain scan from index 2.
const minPosLen = 4

// NewClause returns a clause whose lits are given as an argument.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits, pos: 2}
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// First returns the first lit from the clause.
func (c *Clause) First() Lit {
	return c.lits[0]
}

// Second returns the second lit from the clause.
func (c *Clause) Second() Lit {
	return c.lits[1]
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Set sets the ith literal of the clause.
func (c *Clause) Set(i int, l Lit) {
	c.lits[i] = l
}

// MarkGarbage flags the clause for future reclamation by the clause database.
// The propagation engine skips garbage clauses but never collects them.
func (c *Clause) MarkGarbage() {
	c.flags |= garbageMask
}

// Garbage returns true iff c was marked for reclamation.
func (c *Clause) Garbage() bool {
	return c.flags&garbageMask == garbageMask
}

// hasPos returns true iff the clause is long enough to track a scan position.
func (c *Clause) hasPos() bool {
	return len(c.lits) >= minPosLen
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return fmt.Sprintf("%s0", res)
}
