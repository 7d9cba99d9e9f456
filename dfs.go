package dpll

import "github.com/sirupsen/logrus"

// DFS runs the recursive depth-first DPLL driver against f, using choose
// to pick the branching literal at each node. It returns a satisfying
// Configuration and true on SAT, or nil and false on UNSAT.
//
// Memory use is O(depth * sizeof(Configuration)): one Configuration is live
// per frame of the call chain, plus the one clone taken at each branch
// point.
func DFS(f *Formula, choose Chooser) (*Configuration, bool, Stats) {
	stats := Stats{}
	cfg := newConfiguration(f)
	result := dfsSearch(f, cfg, choose, &stats)
	if result == nil {
		return nil, false, stats
	}
	return result, true, stats
}

func dfsSearch(f *Formula, cfg *Configuration, choose Chooser, stats *Stats) *Configuration {
	if !clauseLengthReduce(cfg, f) {
		// FAIL: this branch is unsatisfiable. cfg is dropped here.
		return nil
	}
	pureReduce(cfg, f)
	if cfg.allSatisfied(f) {
		return cfg
	}

	lit := choose(cfg, f)
	if lit == 0 {
		// Should not occur: the reductions above leave at least one
		// unsatisfied clause, hence at least one undecided variable.
		// Treated defensively as a logic error: report UNSAT rather than
		// branch forever.
		logrus.WithField("clauses", f.C).Warn("dpll: chooser returned 0 with unsatisfied clauses present")
		return nil
	}

	stats.Decisions++

	// Clone before trying the positive branch so the original cfg survives
	// for the negative branch on backtrack.
	a := cfg.clone()
	a.assignLit(f, lit)
	if r := dfsSearch(f, a, choose, stats); r != nil {
		return r
	}
	// a is now unreachable and becomes a parent of no result; it is
	// dropped here.

	cfg.assignLit(f, -lit)
	return dfsSearch(f, cfg, choose, stats)
}
