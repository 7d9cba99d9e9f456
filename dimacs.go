package dpll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS decodes a DIMACS CNF file.
//
// Lines beginning with 'c' are comments. Exactly one problem line
// "p cnf V C" must appear before any clause. Every following non-comment
// line is exactly one clause: a whitespace-separated list of nonzero
// signed integers terminated by a trailing 0. This parser requires a
// clause per line; it does not accept clauses spanning multiple lines.
func ParseDIMACS(r io.Reader) (v, c int, clauses [][]int, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16<<20)

	sawProblem := false
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		if line[0] == 'p' {
			if sawProblem {
				return 0, 0, nil, errors.Errorf("dpll: line %d: multiple problem lines", lineNo)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return 0, 0, nil, errors.Wrapf(ErrNoProblemLine, "line %d: malformed problem line %q", lineNo, line)
			}
			v, err = strconv.Atoi(fields[2])
			if err != nil {
				return 0, 0, nil, errors.Wrapf(err, "line %d: malformed variable count", lineNo)
			}
			c, err = strconv.Atoi(fields[3])
			if err != nil {
				return 0, 0, nil, errors.Wrapf(err, "line %d: malformed clause count", lineNo)
			}
			if v < 1 || c < 0 {
				return 0, 0, nil, errors.Errorf("line %d: invalid problem line %q", lineNo, line)
			}
			sawProblem = true
			continue
		}
		if !sawProblem {
			return 0, 0, nil, errors.Wrapf(ErrNoProblemLine, "line %d: clause appears before problem line", lineNo)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[len(fields)-1] != "0" {
			return 0, 0, nil, errors.Errorf("line %d: clause not terminated by 0", lineNo)
		}
		clause := make([]int, 0, len(fields)-1)
		for _, field := range fields[:len(fields)-1] {
			n, convErr := strconv.Atoi(field)
			if convErr != nil {
				return 0, 0, nil, errors.Wrapf(convErr, "line %d: invalid literal %q", lineNo, field)
			}
			if n == 0 {
				return 0, 0, nil, errors.Errorf("line %d: unexpected 0 literal mid-clause", lineNo)
			}
			av := n
			if av < 0 {
				av = -av
			}
			if av > v {
				return 0, 0, nil, errors.Errorf("line %d: literal %d exceeds declared variable count %d", lineNo, n, v)
			}
			clause = append(clause, n)
		}
		clauses = append(clauses, clause)
	}
	if scanErr := s.Err(); scanErr != nil {
		return 0, 0, nil, errors.Wrap(scanErr, "dpll: reading DIMACS input")
	}
	if !sawProblem {
		return 0, 0, nil, ErrNoProblemLine
	}
	if len(clauses) != c {
		return 0, 0, nil, errors.Wrapf(ErrClauseCountMismatch, "problem line declares %d clauses, read %d", c, len(clauses))
	}
	return v, c, clauses, nil
}

// WriteDIMACS encodes V, C and clauses as DIMACS CNF text, one clause per
// line, matching the format ParseDIMACS accepts.
func WriteDIMACS(w io.Writer, v, c int, clauses [][]int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", v, c); err != nil {
		return errors.Wrap(err, "dpll: writing DIMACS problem line")
	}
	for _, cls := range clauses {
		for _, lit := range cls {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return errors.Wrap(err, "dpll: writing DIMACS clause")
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return errors.Wrap(err, "dpll: writing DIMACS clause terminator")
		}
	}
	return bw.Flush()
}
