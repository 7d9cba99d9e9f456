// Package refcheck cross-checks this module's solver against
// github.com/go-air/gini, an independent Go SAT engine, for differential
// testing against randomized formulas. It is test-only scaffolding:
// nothing in the core imports it, and it never informs a search decision.
package refcheck

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Verdict reports whether gini finds the given clauses (over variables
// 1..v, each clause a list of nonzero signed literals) satisfiable.
func Verdict(v int, clauses [][]int) bool {
	g := gini.New()
	for _, cls := range clauses {
		for _, lit := range cls {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(0)
	}
	return g.Solve() == 1
}

// Assignment reports gini's satisfying assignment for variables 1..v, or
// ok=false if the formula is unsatisfiable. Index 0 of the result is
// unused, matching this module's own Assignment convention.
func Assignment(v int, clauses [][]int) (assignment []bool, ok bool) {
	g := gini.New()
	for _, cls := range clauses {
		for _, lit := range cls {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(0)
	}
	if g.Solve() != 1 {
		return nil, false
	}
	assignment = make([]bool, v+1)
	for i := 1; i <= v; i++ {
		assignment[i] = g.Value(z.Dimacs2Lit(i))
	}
	return assignment, true
}
