package prop

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Problem is a set of clauses over a number of variables, as read from a
// DIMACS CNF stream. Unit clauses are kept apart: they are asserted as root
// facts rather than watched.
type Problem struct {
	NbVars  int
	Clauses []*Clause // Clauses of length >= 2
	Units   []Lit     // Unit clauses, to be asserted through AssignRoot
}

// ParseSlice parses a slice of slices of lits and returns the equivalent
// problem. The argument is supposed to be a well-formed CNF.
func ParseSlice(cnf [][]int32) *Problem {
	var pb Problem
	for _, line := range cnf {
		switch len(line) {
		case 0:
			panic("empty clause in input")
		case 1:
			if line[0] == 0 {
				panic("null unit clause")
			}
			lit := IntToLit(line[0])
			if v := int(lit.Var()); v >= pb.NbVars {
				pb.NbVars = v + 1
			}
			pb.Units = append(pb.Units, lit)
		default:
			lits := make([]Lit, len(line))
			for j, val := range line {
				if val == 0 {
					panic("null literal in clause")
				}
				lits[j] = IntToLit(val)
				if v := int(lits[j].Var()); v >= pb.NbVars {
					pb.NbVars = v + 1
				}
			}
			pb.Clauses = append(pb.Clauses, NewClause(lits))
		}
	}
	return &pb
}

// ParseCNF parses a DIMACS CNF stream and returns the associated problem.
func ParseCNF(f io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(f)
	var pb Problem
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p ") {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("invalid problem line %q", line)
			}
			nbVars, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("invalid number of variables in %q: %v", line, err)
			}
			pb.NbVars = nbVars
			continue
		}
		lits, err := parseClauseLine(line, &pb)
		if err != nil {
			return nil, err
		}
		switch len(lits) {
		case 0:
			return nil, fmt.Errorf("empty clause in input")
		case 1:
			pb.Units = append(pb.Units, lits[0])
		default:
			pb.Clauses = append(pb.Clauses, NewClause(lits))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read problem: %v", err)
	}
	return &pb, nil
}

// parseClauseLine parses a clause line, i.e a list of lits terminated by 0.
func parseClauseLine(line string, pb *Problem) ([]Lit, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return nil, fmt.Errorf("clause %q is not terminated by 0", line)
	}
	lits := make([]Lit, 0, len(fields)-1)
	for _, field := range fields[:len(fields)-1] {
		val, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid literal %q in clause %q: %v", field, line, err)
		}
		if val == 0 {
			return nil, fmt.Errorf("null literal inside clause %q", line)
		}
		lit := IntToLit(int32(val))
		if v := int(lit.Var()); v >= pb.NbVars {
			pb.NbVars = v + 1
		}
		lits = append(lits, lit)
	}
	return lits, nil
}
