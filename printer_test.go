package dpll

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteResultUnsatisfiable(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormula(1, 2, [][]int{{1}, {-1}})
	require.NoError(t, err)
	require.NoError(t, WriteResult(&buf, f, nil, false, false))
	require.Equal(t, "Unsatisfiable.\n", buf.String())
}

func TestWriteResultSatisfiableWithDebugAnnotation(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormula(2, 1, [][]int{{1}})
	require.NoError(t, err)
	assignment := Assignment{false, true, true}
	require.NoError(t, WriteResult(&buf, f, assignment, true, true))
	want := "Satisfiable!\n1 1\n2 1 (free)\n"
	require.Equal(t, want, buf.String())
}

func TestWriteResultSatisfiableWithoutDebugOmitsAnnotation(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormula(2, 1, [][]int{{1}})
	require.NoError(t, err)
	assignment := Assignment{false, true, true}
	require.NoError(t, WriteResult(&buf, f, assignment, true, false))
	want := "Satisfiable!\n1 1\n2 1\n"
	require.Equal(t, want, buf.String())
}
