package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/crillab/unitprop/prop"
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "print propagation statistics",
		},
		cli.BoolFlag{
			Name:  "no-prefetch",
			Usage: "disable the post-assignment prefetch hint",
		},
	}
}

// touch reads through a watch list so that it is warm in cache when
// propagation scans it next. This is only a hint: correctness is the same
// with or without it.
func touch(_ prop.Lit, ws []prop.Watcher) {
	if len(ws) > 0 {
		_ = ws[0]
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelpAndExit(c, 1)
	}
	path := c.Args().First()
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q: %v", path, err)
	}
	defer func() { _ = f.Close() }()
	pb, err := prop.ParseCNF(f)
	if err != nil {
		return fmt.Errorf("could not parse %q: %v", path, err)
	}
	fmt.Printf("c propagating %s\n", path)
	fmt.Printf("c %d vars, %d clauses, %d units\n", pb.NbVars, len(pb.Clauses), len(pb.Units))

	opts := prop.Options{PostAssign: touch}
	if c.Bool("no-prefetch") {
		opts.PostAssign = nil
	}
	e := prop.NewWithOptions(pb.NbVars, opts)
	for _, clause := range pb.Clauses {
		e.Attach(clause)
	}
	conflicting := false
	for _, u := range pb.Units {
		switch e.Value(u) {
		case prop.Indet:
			e.AssignRoot(u)
		case prop.Unsat:
			// Two contradicting unit clauses.
			conflicting = true
		}
	}
	ok := !conflicting && e.Propagate()
	if c.Bool("verbose") {
		fmt.Printf("c fixed facts:  %12d\n", e.Stats.NbFixed)
		fmt.Printf("c propagations: %12d\n", e.Stats.NbPropagations)
		fmt.Printf("c conflicts:    %12d\n", e.Stats.NbConflicts)
	}
	if !ok {
		// A conflict at level 0 means the problem is unsatisfiable.
		if confl := e.Conflict(); confl != nil {
			fmt.Printf("c root conflict on clause %s\n", confl.CNF())
		}
		fmt.Println("s UNSATISFIABLE")
		return nil
	}
	if len(e.Trail()) == e.NbVars() {
		fmt.Println("s SATISFIABLE")
	} else {
		fmt.Println("s INDETERMINATE")
	}
	fmt.Print("v ")
	for _, l := range e.Trail() {
		fmt.Printf("%d ", l.Int())
	}
	fmt.Println("0")
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "unitprop"
	app.Usage = "Unit propagation core for CDCL SAT solving"
	app.ArgsUsage = "file.cnf"
	app.Flags = getFlags()
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
