package dpll

import "testing"

func verifyAssignment(t *testing.T, f *Formula, cfg *Configuration) {
	t.Helper()
	for k := 0; k < f.C; k++ {
		if cfg.clauseLength(f, k) == 0 && !cfg.Sat.test(k) {
			t.Fatalf("clause %d is neither satisfied nor has a surviving literal", k)
		}
	}
	if !cfg.allSatisfied(f) {
		t.Fatal("returned configuration does not satisfy every clause")
	}
}

func TestDFSSatisfiableSmall(t *testing.T) {
	f, err := NewFormula(3, 3, [][]int{{1, 2}, {-1, 3}, {-2, -3}})
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	cfg, sat, _ := DFS(f, ChooseComposite)
	if !sat {
		t.Fatal("formula is satisfiable, DFS reported UNSAT")
	}
	verifyAssignment(t, f, cfg)
}

func TestDFSUnsatisfiable(t *testing.T) {
	// 1 & -1 is trivially unsatisfiable.
	f, err := NewFormula(1, 2, [][]int{{1}, {-1}})
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	_, sat, stats := DFS(f, ChooseComposite)
	if sat {
		t.Fatal("formula is unsatisfiable, DFS reported SAT")
	}
	if stats.Decisions != 0 {
		t.Fatalf("no branching decision should be needed; got %d", stats.Decisions)
	}
}

func TestDFSEmptyFormulaIsSatisfiable(t *testing.T) {
	f, err := NewFormula(1, 0, nil)
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	cfg, sat, _ := DFS(f, ChooseComposite)
	if !sat {
		t.Fatal("a formula with no clauses should be trivially satisfiable")
	}
	verifyAssignment(t, f, cfg)
}

func TestDFSExactlyOneOfTwoSatisfiable(t *testing.T) {
	// (1 2) at least one of the two is true, (-1 -2) not both: exactly one
	// of the two variables is true, which is satisfiable.
	f, err := NewFormula(2, 2, [][]int{{1, 2}, {-1, -2}})
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	_, sat, _ := DFS(f, ChooseComposite)
	if !sat {
		t.Fatal("this small formula is satisfiable (e.g. 1=true, 2=false)")
	}
}

func TestDFSHornFormula(t *testing.T) {
	// Horn clauses: (-1 -2 3) (1) (2)  => 3 must be true.
	f, err := NewFormula(3, 3, [][]int{{-1, -2, 3}, {1}, {2}})
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	cfg, sat, _ := DFS(f, ChooseComposite)
	if !sat {
		t.Fatal("Horn formula should be satisfiable")
	}
	if cfg.assignmentState(3) != 1 {
		t.Fatal("variable 3 must be forced true by unit propagation")
	}
}

func TestDFSChooseMaxOccurrenceAgreesWithComposite(t *testing.T) {
	f, err := NewFormula(4, 4, [][]int{{1, 2}, {-2, 3}, {-3, 4}, {-4, -1}})
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	_, satComposite, _ := DFS(f, ChooseComposite)
	_, satMaxOcc, _ := DFS(f, ChooseMaxOccurrence)
	if satComposite != satMaxOcc {
		t.Fatalf("choosers disagree on satisfiability: composite=%v maxocc=%v", satComposite, satMaxOcc)
	}
}
