// Command solver is a DIMACS CNF command-line driver:
// "solver <problem.cnf> [<output.txt>]".
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	dpll "github.com/ThoAppelsin/CNF-SAT-Solver"
)

// driverValue is a pflag.Value that only accepts "dfs" or "bfs", so a bad
// --driver is rejected at flag-parse time instead of deep inside run.
type driverValue string

func (d *driverValue) String() string { return string(*d) }
func (d *driverValue) Type() string   { return "driver" }
func (d *driverValue) Set(s string) error {
	switch s {
	case "dfs", "bfs":
		*d = driverValue(s)
		return nil
	default:
		return errors.Errorf("must be %q or %q", "dfs", "bfs")
	}
}

var (
	driverFlag = driverValue("dfs")
	debugFlag  bool
	statsFlag  bool
)

func main() {
	root := &cobra.Command{
		Use:          "solver <problem.cnf> [<output.txt>]",
		Short:        "Decide satisfiability of a DIMACS CNF formula",
		Args:         cobra.RangeArgs(1, 2),
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().Var(&driverFlag, "driver", `search driver: "dfs" or "bfs"`)
	root.Flags().BoolVar(&debugFlag, "debug", false, "flag free variables in the output")
	root.Flags().BoolVar(&statsFlag, "stats", false, "report decision counts to stderr on completion")
	root.Flags().SortFlags = false

	if err := root.Execute(); err != nil {
		logrus.WithError(err).Error("solver failed")
		os.Exit(1)
	}
}

var _ pflag.Value = (*driverValue)(nil)

func run(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "opening problem file")
	}
	defer in.Close()

	v, c, clauses, err := dpll.ParseDIMACS(in)
	if err != nil {
		return errors.Wrap(err, "parsing DIMACS input")
	}

	f, err := dpll.NewFormula(v, c, clauses)
	if err != nil {
		return errors.Wrap(err, "building formula")
	}

	var driver dpll.DriverKind
	if driverFlag == "bfs" {
		driver = dpll.DriverBFS
	}

	assignment, sat, stats, err := dpll.Solve(f, dpll.Options{Driver: driver})
	if err != nil {
		return errors.Wrap(err, "search aborted")
	}

	out := os.Stdout
	if len(args) == 2 {
		outFile, err := os.Create(args[1])
		if err != nil {
			return errors.Wrap(err, "opening output file")
		}
		defer outFile.Close()
		out = outFile
	}

	if err := dpll.WriteResult(out, f, assignment, sat, debugFlag); err != nil {
		return errors.Wrap(err, "writing result")
	}

	if statsFlag {
		logrus.WithFields(logrus.Fields{
			"decisions":            stats.Decisions,
			"frontier_compactions": stats.FrontierCompactions,
			"frontier_growths":     stats.FrontierGrowths,
			"satisfiable":          sat,
		}).Info("search complete")
	}
	return nil
}
