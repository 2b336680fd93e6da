package prop

import (
	"strings"
	"testing"
)

func TestParseCNF(t *testing.T) {
	cnf := `c a small problem
p cnf 4 4
1 2 3 0
-1 -2 0
4 0
-3 0
`
	pb, err := ParseCNF(strings.NewReader(cnf))
	if err != nil {
		t.Fatalf("could not parse problem: %v", err)
	}
	if pb.NbVars != 4 {
		t.Errorf("expected 4 vars, got %d", pb.NbVars)
	}
	if len(pb.Clauses) != 2 {
		t.Errorf("expected 2 clauses, got %d", len(pb.Clauses))
	}
	if len(pb.Units) != 2 {
		t.Errorf("expected 2 units, got %d", len(pb.Units))
	}
	if pb.Units[0] != IntToLit(4) || pb.Units[1] != IntToLit(-3) {
		t.Errorf("expected units 4 and -3, got %d and %d", pb.Units[0].Int(), pb.Units[1].Int())
	}
	if cnf := pb.Clauses[0].CNF(); cnf != "1 2 3 0" {
		t.Errorf("expected first clause %q, got %q", "1 2 3 0", cnf)
	}
}

func TestParseCNFWithoutHeader(t *testing.T) {
	pb, err := ParseCNF(strings.NewReader("1 -5 0\n"))
	if err != nil {
		t.Fatalf("could not parse problem: %v", err)
	}
	if pb.NbVars != 5 {
		t.Errorf("expected NbVars bumped to 5, got %d", pb.NbVars)
	}
}

func TestParseCNFErrors(t *testing.T) {
	tests := []string{
		"p cnf 2\n1 2 0\n",
		"1 2\n",
		"1 x 0\n",
	}
	for _, cnf := range tests {
		if _, err := ParseCNF(strings.NewReader(cnf)); err == nil {
			t.Errorf("expected a parse error for %q", cnf)
		}
	}
}

func TestParseSliceProblem(t *testing.T) {
	pb := ParseSlice([][]int32{{1, 2, 3}, {-1}, {-2}})
	if pb.NbVars != 3 {
		t.Errorf("expected 3 vars, got %d", pb.NbVars)
	}
	if len(pb.Clauses) != 1 || len(pb.Units) != 2 {
		t.Errorf("expected 1 clause and 2 units, got %d and %d", len(pb.Clauses), len(pb.Units))
	}
}
