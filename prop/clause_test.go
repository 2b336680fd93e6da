package prop

import "testing"

func TestClauseGarbage(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(-2), IntToLit(3)})
	if c.Garbage() {
		t.Errorf("fresh clause should not be garbage")
	}
	c.MarkGarbage()
	if !c.Garbage() {
		t.Errorf("clause should be garbage after MarkGarbage")
	}
}

func TestClauseHasPos(t *testing.T) {
	short := NewClause([]Lit{IntToLit(1), IntToLit(2), IntToLit(3)})
	if short.hasPos() {
		t.Errorf("a clause of size 3 should not track a scan position")
	}
	long := NewClause([]Lit{IntToLit(1), IntToLit(2), IntToLit(3), IntToLit(4)})
	if !long.hasPos() {
		t.Errorf("a clause of size 4 should track a scan position")
	}
	if long.pos != 2 {
		t.Errorf("expected initial scan position 2, got %d", long.pos)
	}
}

func TestClauseCNF(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(-2), IntToLit(3)})
	if cnf := c.CNF(); cnf != "1 -2 3 0" {
		t.Errorf("expected CNF %q, got %q", "1 -2 3 0", cnf)
	}
}
