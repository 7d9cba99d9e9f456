package dpll

import "errors"

// ErrNoProblemLine is returned by ParseDIMACS when the input contains no
// "p cnf V C" line.
var ErrNoProblemLine = errors.New("dpll: missing DIMACS problem line")

// ErrClauseCountMismatch is returned by ParseDIMACS when the number of
// clauses read does not match the count declared on the problem line.
var ErrClauseCountMismatch = errors.New("dpll: clause count does not match problem line")
