package dpll

import "math"

// Chooser picks the next literal to branch on, or 0 if every variable is
// already assigned. It is a function-valued parameter so alternative
// chooser variants can be benchmarked against each other; ChooseComposite
// is the default used by both search drivers.
type Chooser func(cfg *Configuration, f *Formula) int

// powerOf counts the unsatisfied clauses of effective length exactly 2 that
// contain literal lit: the binary clauses that would become unit if lit's
// variable were assigned the opposite polarity.
func powerOf(cfg *Configuration, f *Formula, lit int) int {
	count := 0
	f.occur(lit).forEachAndNot(cfg.Sat, func(k int) {
		if cfg.clauseLength(f, k) == 2 {
			count++
		}
	})
	return count
}

// ChooseComposite is the max-occurrence-power literal chooser, the default
// used in the production search path. For every undecided variable v it
// scores both polarities by occurrence count plus a weighted
// opposite-polarity power, blends the pair with a 0.75 cross-term, and
// returns the literal with the best final score. Ties go to the
// first-seen literal: variables are visited low-to-high, and for a given
// variable the positive polarity is checked before the negative one.
//
// The mixing weight 0.75 and the scale factor (built from MeanOccLen) are
// empirical constants; they affect search-tree shape but not correctness,
// and are safe to replace with any other strictly positive constants.
func ChooseComposite(cfg *Configuration, f *Formula) int {
	if f.C == 0 {
		return 0
	}
	unsat := f.C - cfg.satCount()
	scale := math.Round(f.MeanOccLen * float64(unsat) / float64(f.C))

	best := 0
	bestScore := math.Inf(-1)
	for v := 1; v <= f.V; v++ {
		if cfg.assignmentState(v) != 0 {
			continue
		}
		countPos := cfg.occurrenceCount(f, v)
		countNeg := cfg.occurrenceCount(f, -v)
		powerPos := powerOf(cfg, f, v)
		powerNeg := powerOf(cfg, f, -v)

		scorePos := float64(countPos) + scale*float64(powerNeg)
		scoreNeg := float64(countNeg) + scale*float64(powerPos)
		finalPos := scorePos + 0.75*scoreNeg
		finalNeg := scoreNeg + 0.75*scorePos

		if finalPos > bestScore {
			bestScore = finalPos
			best = v
		}
		if finalNeg > bestScore {
			bestScore = finalNeg
			best = -v
		}
	}
	return best
}

// ChooseMaxOccurrence is the lighter "max total occurrence" variant
// usable in place of the composite chooser: it scores each polarity by
// occurrence count alone, with no power term and no cross-term blend.
func ChooseMaxOccurrence(cfg *Configuration, f *Formula) int {
	best := 0
	bestScore := -1
	for v := 1; v <= f.V; v++ {
		if cfg.assignmentState(v) != 0 {
			continue
		}
		countPos := cfg.occurrenceCount(f, v)
		countNeg := cfg.occurrenceCount(f, -v)
		if countPos > bestScore {
			bestScore = countPos
			best = v
		}
		if countNeg > bestScore {
			bestScore = countNeg
			best = -v
		}
	}
	return best
}
