package prop

// Stats are counters about the propagation process.
// They are provided for information purpose only and never influence
// control flow.
type Stats struct {
	NbFixed             int64 // How many root-level facts were assigned
	NbPropagations      int64 // How many lits were propagated during search
	NbProbePropagations int64 // How many lits were propagated while simplifying
	NbConflicts         int64 // How many conflicts were found during search
}

// Options configure an Engine at construction time.
type Options struct {
	// PostAssign, if non-nil, is invoked right after each assignment with the
	// negation of the assigned literal and that negation's current watch list.
	// It is a pure performance hint (typically a memory prefetch on the list
	// about to be scanned): the engine behaves identically with or without it,
	// and the hook must not mutate the slice it receives.
	PostAssign func(next Lit, ws []Watcher)
}

// An Engine owns the assignment state of a solver and derives all forced
// assignments by unit propagation. It is the main data structure.
type Engine struct {
	nbVars      int
	assigns     []int8      // Tri-state value indexed by Lit; assigns[l] == -assigns[l.Negation()]
	levels      []decLevel  // For each var, the level it was assigned at
	trailPos    []int32     // For each var, its position in the trail
	reason      []*Clause   // For each var, the clause that forced it, or nil for decisions and root facts
	polarity    []bool      // Last saved phase for each var
	eliminated  []bool      // Vars permanently removed by external preprocessing
	fixedAt     []int64     // For each lit, value of Stats.NbFixed when it was assigned
	watches     [][]Watcher // For each lit, the watch records of the clauses watching it
	trail       []Lit       // Current assignment stack, in chronological order
	trailLim    []int       // Trail length at the start of each decision level
	propagated  int         // How many trail lits have been propagated so far
	conflict    *Clause     // Conflict found by the last propagation, if any
	simplifying bool
	postAssign  func(next Lit, ws []Watcher)
	Stats       Stats // Statistics about the propagation process.
}

// New makes an engine for the given number of variables.
// All per-variable and per-literal storage is sized once, here.
func New(nbVars int) *Engine {
	return NewWithOptions(nbVars, Options{})
}

// NewWithOptions makes an engine for the given number of variables,
// configured with the given options.
func NewWithOptions(nbVars int, opts Options) *Engine {
	return &Engine{
		nbVars:     nbVars,
		assigns:    make([]int8, nbVars*2),
		levels:     make([]decLevel, nbVars),
		trailPos:   make([]int32, nbVars),
		reason:     make([]*Clause, nbVars),
		polarity:   make([]bool, nbVars),
		eliminated: make([]bool, nbVars),
		fixedAt:    make([]int64, nbVars*2),
		watches:    make([][]Watcher, nbVars*2),
		trail:      make([]Lit, 0, nbVars),
		postAssign: opts.PostAssign,
	}
}

// NbVars returns the number of variables the engine was sized for.
func (e *Engine) NbVars() int {
	return e.nbVars
}

// Value returns whether l is made true (Sat) or false (Unsat) by the
// current assignment, or Indet if its variable is unassigned.
func (e *Engine) Value(l Lit) Status {
	switch v := e.assigns[l]; {
	case v > 0:
		return Sat
	case v < 0:
		return Unsat
	default:
		return Indet
	}
}

// Level returns the decision level v was assigned at.
// Only meaningful while v is assigned.
func (e *Engine) Level(v Var) int {
	return int(e.levels[v])
}

// Reason returns the clause that forced v's assignment, or nil if v was
// a decision or a root-level fact. Only meaningful while v is assigned.
func (e *Engine) Reason(v Var) *Clause {
	return e.reason[v]
}

// TrailPos returns the index in the trail at which v's literal appears.
// Only meaningful while v is assigned.
func (e *Engine) TrailPos(v Var) int {
	return int(e.trailPos[v])
}

// Trail returns the current assignment stack, in chronological order.
// The caller must not mutate it.
func (e *Engine) Trail() []Lit {
	return e.trail
}

// Polarity returns the last phase saved for v, for use by decision heuristics.
func (e *Engine) Polarity(v Var) bool {
	return e.polarity[v]
}

// FixedAt returns the value the fixed-facts counter had when l was assigned.
// Comparing it against Stats.NbFixed tells whether anything became fixed
// since, without rescanning the trail.
func (e *Engine) FixedAt(l Lit) int64 {
	return e.fixedAt[l]
}

// CurrentLevel returns the current decision level. Level 0 is the root level.
func (e *Engine) CurrentLevel() int {
	return len(e.trailLim)
}

// NewLevel opens a new decision level and returns it.
func (e *Engine) NewLevel() int {
	e.trailLim = append(e.trailLim, len(e.trail))
	return len(e.trailLim)
}

// Conflict returns the conflict clause found by the last propagation,
// or nil if there is none pending.
func (e *Engine) Conflict() *Clause {
	return e.conflict
}

// ClearConflict drops the pending conflict, once external analysis has
// dealt with it. The next Propagate call resumes from wherever the
// propagation cursor now points.
func (e *Engine) ClearConflict() {
	e.conflict = nil
}

// SetSimplifying switches the engine in or out of simplifying mode.
// While simplifying, phase saving is suppressed and propagations are
// counted separately.
func (e *Engine) SetSimplifying(simplifying bool) {
	e.simplifying = simplifying
}

// Simplifying returns true iff the engine is in simplifying mode.
func (e *Engine) Simplifying() bool {
	return e.simplifying
}

// MarkEliminated marks v as permanently eliminated by external
// preprocessing. Assigning an eliminated variable afterwards is a caller bug.
func (e *Engine) MarkEliminated(v Var) {
	e.eliminated[v] = true
}
