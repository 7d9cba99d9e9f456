package dpll

import "fmt"

// Formula is the immutable, post-parse store for a CNF problem: V variables
// numbered 1..V and C clauses numbered 0..C-1.
//
// Per variable v, clausesPos[k] and clausesNeg[k] (size V+1, bit v) record
// whether v appears positively / negatively in clause k. occurPos[v] and
// occurNeg[v] (size C) are the symmetric occurrence lists: bit k set iff
// literal +v (resp. -v) appears in clause k. This is the "single table
// indexed by v with two parallel bitsets" scheme; there is no signed
// pointer arithmetic anywhere in this package.
type Formula struct {
	V int
	C int

	clausesPos []bitset // len C, each sized V+1
	clausesNeg []bitset // len C, each sized V+1

	occurPos []bitset // index 1..V, each sized C
	occurNeg []bitset // index 1..V, each sized C

	NLits      int
	MeanOccLen float64
}

// occur returns the occurrence bitset (size C) for the signed literal lit.
// lit must be nonzero and |lit| <= V.
func (f *Formula) occur(lit int) bitset {
	if lit > 0 {
		return f.occurPos[lit]
	}
	return f.occurNeg[-lit]
}

// NewFormula builds an immutable Formula from V, C and the list of clauses,
// each a list of nonzero signed literals. A clause may repeat a literal
// (idempotent) or contain both a variable and its negation (a tautology,
// accepted per spec; it becomes satisfied by any assignment touching that
// variable).
func NewFormula(v, c int, clauses [][]int) (*Formula, error) {
	if v < 1 {
		return nil, fmt.Errorf("formula: need at least 1 variable, got %d", v)
	}
	if len(clauses) != c {
		return nil, fmt.Errorf("formula: declared %d clauses, got %d", c, len(clauses))
	}

	f := &Formula{
		V:          v,
		C:          c,
		clausesPos: make([]bitset, c),
		clausesNeg: make([]bitset, c),
		occurPos:   make([]bitset, v+1),
		occurNeg:   make([]bitset, v+1),
	}
	for k := range f.clausesPos {
		f.clausesPos[k] = newBitset(v + 1)
		f.clausesNeg[k] = newBitset(v + 1)
	}
	for i := 1; i <= v; i++ {
		f.occurPos[i] = newBitset(c)
		f.occurNeg[i] = newBitset(c)
	}

	for k, cls := range clauses {
		for _, lit := range cls {
			if lit == 0 {
				return nil, fmt.Errorf("formula: clause %d contains a zero literal", k)
			}
			va := lit
			if va < 0 {
				va = -va
			}
			if va > v {
				return nil, fmt.Errorf("formula: clause %d references variable %d, but V=%d", k, va, v)
			}
			f.NLits++
			if lit > 0 {
				f.clausesPos[k].set(va)
				f.occurPos[va].set(k)
			} else {
				f.clausesNeg[k].set(va)
				f.occurNeg[va].set(k)
			}
		}
	}
	f.MeanOccLen = float64(f.NLits) / float64(v)
	return f, nil
}
