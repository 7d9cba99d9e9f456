package dpll

// Configuration is a search node's mutable state: the triple of bitsets
// (sat, neg, pos), packed into one contiguous []uint64 allocation so that
// cloning a node for a branch is a single memory copy.
//
// Invariants maintained by every exported operation on *Configuration:
//
//	I1 (exclusivity of intent): neg[v] & pos[v] never both set for a v.
//	I2 (propagation closure): whenever pos[v] (resp. neg[v]) becomes set,
//	   every clause with v on that side becomes sat.
//	I3 (no false claims): sat[k] set implies some literal of clause k
//	   agrees with the current assignment.
//	I4 (assignment covers satisfaction): a Configuration returned as a
//	   satisfying result has every bit of sat set.
type Configuration struct {
	backing []uint64
	Sat     bitset // size C: clause k satisfied
	Neg     bitset // size V+1: variable v assigned false
	Pos     bitset // size V+1: variable v assigned true
}

// newConfiguration allocates an all-zero configuration sized for f.
func newConfiguration(f *Formula) *Configuration {
	satWords := wordsFor(f.C)
	varWords := wordsFor(f.V + 1)
	backing := make([]uint64, satWords+2*varWords)
	return viewConfiguration(backing, f.C, f.V+1, satWords, varWords)
}

func viewConfiguration(backing []uint64, satBits, varBits, satWords, varWords int) *Configuration {
	return &Configuration{
		backing: backing,
		Sat:     bitsetView(backing[:satWords], satBits),
		Neg:     bitsetView(backing[satWords:satWords+varWords], varBits),
		Pos:     bitsetView(backing[satWords+varWords:satWords+2*varWords], varBits),
	}
}

// clone returns a byte-copy of cfg for the clone-before-branch discipline
// the search drivers use. The original remains untouched for the sibling
// branch.
func (cfg *Configuration) clone() *Configuration {
	nb := make([]uint64, len(cfg.backing))
	copy(nb, cfg.backing)
	satWords := len(cfg.Sat.words)
	varWords := len(cfg.Neg.words)
	return viewConfiguration(nb, cfg.Sat.n, cfg.Neg.n, satWords, varWords)
}

// absLit returns the unsigned variable index of a signed literal.
func absLit(lit int) int {
	if lit < 0 {
		return -lit
	}
	return lit
}

// assignLit commits lit (a signed literal) in cfg: sets the matching bit in
// pos or neg, then ORs the literal's occurrence list into sat, satisfying
// I2 in the same step.
func (cfg *Configuration) assignLit(f *Formula, lit int) {
	v := absLit(lit)
	if lit > 0 {
		cfg.Pos.set(v)
	} else {
		cfg.Neg.set(v)
	}
	cfg.Sat.orInPlace(f.occur(lit))
}

// clauseLength returns the effective length of clause k: literals not yet
// refuted by the current assignment. The caller must have already filtered
// out clauses with Sat.test(k) == true; behavior is undefined otherwise.
func (cfg *Configuration) clauseLength(f *Formula, k int) int {
	return f.clausesPos[k].popcountAndNot(cfg.Neg) + f.clausesNeg[k].popcountAndNot(cfg.Pos)
}

// unitOf returns the sole surviving (signed) literal of clause k.
// Precondition: clauseLength(f, k) == 1. The negative side is inspected
// first; by the precondition exactly one side yields a bit.
func (cfg *Configuration) unitOf(f *Formula, k int) int {
	if v, ok := f.clausesNeg[k].lsbAndNot(cfg.Pos); ok {
		return -v
	}
	v, _ := f.clausesPos[k].lsbAndNot(cfg.Neg)
	return v
}

// anyUnsatOccurrence reports whether literal lit still occurs in some
// unsatisfied clause.
func (cfg *Configuration) anyUnsatOccurrence(f *Formula, lit int) bool {
	return f.occur(lit).anyAndNot(cfg.Sat)
}

// occurrenceCount returns the number of unsatisfied clauses containing lit.
func (cfg *Configuration) occurrenceCount(f *Formula, lit int) int {
	return f.occur(lit).popcountAndNot(cfg.Sat)
}

// satCount returns the number of clauses currently marked satisfied.
func (cfg *Configuration) satCount() int {
	return cfg.Sat.popcount()
}

// allSatisfied reports whether every clause of f is satisfied in cfg.
func (cfg *Configuration) allSatisfied(f *Formula) bool {
	return cfg.Sat.equalCount(f.C)
}

// assignmentState returns 2*neg[v] + pos[v]: 0 unassigned, 1 true, 2 false,
// 3 conflict (I1 violation; a bug if ever observed).
func (cfg *Configuration) assignmentState(v int) int {
	s := 0
	if cfg.Neg.test(v) {
		s |= 2
	}
	if cfg.Pos.test(v) {
		s |= 1
	}
	return s
}
