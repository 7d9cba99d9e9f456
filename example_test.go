package dpll_test

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	dpll "github.com/ThoAppelsin/CNF-SAT-Solver"
)

func Example() {
	// (x1 v x2) & (!x1 v x3) & (!x2 v !x3)
	clauses := [][]int{{1, 2}, {-1, 3}, {-2, -3}}
	f, err := dpll.NewFormula(3, len(clauses), clauses)
	if err != nil {
		fmt.Println(err)
		return
	}

	assignment, sat, _, err := dpll.Solve(f, dpll.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sat)
	// Output:
	// true
	_ = assignment
}

func ExampleFreeVariables() {
	f, err := dpll.NewFormula(4, 1, [][]int{{1, 2}})
	if err != nil {
		fmt.Println(err)
		return
	}
	got := dpll.FreeVariables(f)
	want := []int{3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		fmt.Println("mismatch:", diff)
		return
	}
	fmt.Println(got)
	// Output:
	// [3 4]
}
