package main

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
)

func writeTempCNF(dir, body string) string {
	path := filepath.Join(dir, "problem.cnf")
	Expect(os.WriteFile(path, []byte(body), 0o644)).To(Succeed())
	return path
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "solver <problem.cnf> [<output.txt>]",
		Args:         cobra.RangeArgs(1, 2),
		RunE:         run,
		SilenceUsage: true,
	}
	driverFlag = driverValue("dfs")
	root.Flags().Var(&driverFlag, "driver", "")
	root.Flags().BoolVar(&debugFlag, "debug", false, "")
	root.Flags().BoolVar(&statsFlag, "stats", false, "")
	return root
}

var _ = Describe("solver command", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "solver-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("reports a satisfiable formula and writes an assignment", func() {
		in := writeTempCNF(dir, "p cnf 2 1\n1 2 0\n")
		out := filepath.Join(dir, "out.txt")

		root := newRootCommand()
		root.SetArgs([]string{in, out})
		Expect(root.Execute()).To(Succeed())

		body, err := os.ReadFile(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring("Satisfiable!"))
	})

	It("reports an unsatisfiable formula", func() {
		in := writeTempCNF(dir, "p cnf 1 2\n1 0\n-1 0\n")
		out := filepath.Join(dir, "out.txt")

		root := newRootCommand()
		root.SetArgs([]string{in, out})
		Expect(root.Execute()).To(Succeed())

		body, err := os.ReadFile(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(Equal("Unsatisfiable.\n"))
	})

	It("rejects an unknown driver flag", func() {
		in := writeTempCNF(dir, "p cnf 1 1\n1 0\n")

		root := newRootCommand()
		root.SetArgs([]string{"--driver=quantum", in})
		Expect(root.Execute()).To(HaveOccurred())
	})

	It("fails on a missing input file", func() {
		root := newRootCommand()
		root.SetArgs([]string{filepath.Join(dir, "does-not-exist.cnf")})
		Expect(root.Execute()).To(HaveOccurred())
	})
})
