package dpll

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WriteResult writes the solver's verdict and, if satisfiable, the
// assignment: a first line of "Satisfiable!" or "Unsatisfiable.", followed
// on SAT by one "<v> <b>" line per variable 1..V.
//
// When debug is true, lines for variables that were never constrained by
// any clause are additionally annotated "(free)". The release behavior —
// a free variable reported as 1 — is unchanged by debug mode; debug only
// adds the annotation.
func WriteResult(w io.Writer, f *Formula, assignment Assignment, sat bool, debug bool) error {
	bw := bufio.NewWriter(w)
	if !sat {
		if _, err := fmt.Fprintln(bw, "Unsatisfiable."); err != nil {
			return errors.Wrap(err, "dpll: writing verdict")
		}
		return bw.Flush()
	}
	if _, err := fmt.Fprintln(bw, "Satisfiable!"); err != nil {
		return errors.Wrap(err, "dpll: writing verdict")
	}

	var free map[int]bool
	if debug {
		free = make(map[int]bool)
		for _, v := range FreeVariables(f) {
			free[v] = true
		}
	}
	for v := 1; v <= f.V; v++ {
		b := 0
		if assignment[v] {
			b = 1
		}
		if debug && free[v] {
			if _, err := fmt.Fprintf(bw, "%d %d (free)\n", v, b); err != nil {
				return errors.Wrap(err, "dpll: writing assignment")
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d %d\n", v, b); err != nil {
			return errors.Wrap(err, "dpll: writing assignment")
		}
	}
	return bw.Flush()
}
