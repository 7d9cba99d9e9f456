// Package dpll implements the core of a classical DPLL CNF-SAT solver: a
// compact bitset search state, unit propagation and pure-literal
// elimination to fixed point, a composite occurrence/power branching
// heuristic, and two search drivers (depth-first recursive, breadth-first
// frontier) that coordinate them. Clause learning, conflict analysis,
// restarts, watched-literal scheduling, incremental solving, and parallel
// search are out of scope; this is classical DPLL only.
package dpll

import "github.com/sirupsen/logrus"

// DriverKind selects which search driver Solve uses.
type DriverKind int

const (
	// DriverDFS is the recursive depth-first driver.
	DriverDFS DriverKind = iota
	// DriverBFS is the explicit breadth-first frontier driver.
	DriverBFS
)

// Options configures a Solve call. The zero value runs DriverDFS with the
// composite chooser, which is the production default.
type Options struct {
	Driver DriverKind
	Choose Chooser
}

// Assignment maps each variable 1..V to its truth value. Index 0 is
// unused. A variable that was never constrained by any clause is reported
// as true.
type Assignment []bool

// Solve decides the satisfiability of f and, if satisfiable, returns one
// assignment. It is the library's top-level entry point: select a search
// driver, run it, and translate the winning Configuration into the output
// form.
func Solve(f *Formula, opts Options) (assignment Assignment, sat bool, stats Stats, err error) {
	choose := opts.Choose
	if choose == nil {
		choose = ChooseComposite
	}

	var cfg *Configuration
	switch opts.Driver {
	case DriverBFS:
		cfg, sat, stats, err = BFS(f, choose)
		if err != nil {
			return nil, false, stats, err
		}
	default:
		cfg, sat, stats = DFS(f, choose)
	}
	if !sat {
		return nil, false, stats, nil
	}

	assignment = make(Assignment, f.V+1)
	for v := 1; v <= f.V; v++ {
		switch cfg.assignmentState(v) {
		case 1:
			assignment[v] = true
		case 2:
			assignment[v] = false
		case 0:
			assignment[v] = true
		case 3:
			logrus.WithField("variable", v).Warn("dpll: variable assigned both true and false (I1 violated)")
			assignment[v] = true
		}
	}
	return assignment, true, stats, nil
}

// FreeVariables reports which variables in f were never constrained by
// any clause, for debug-mode output.
func FreeVariables(f *Formula) []int {
	var free []int
	for v := 1; v <= f.V; v++ {
		if f.occurPos[v].isZero() && f.occurNeg[v].isZero() {
			free = append(free, v)
		}
	}
	return free
}
