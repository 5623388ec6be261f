package enumerate_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungaf/enumerate"
	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/satvar"
	"github.com/katalvlaran/dungaf/solver"
	"github.com/katalvlaran/dungaf/theories"
)

func TestExtractExtensionUsesInPositionsOnly(t *testing.T) {
	alg := satvar.NewAlgebra(2, satvar.KComplete)
	// a: in ; b: out
	assignment := []int{alg.In(1), -alg.Out(1), -alg.Und(1), -alg.In(2), alg.Out(2), -alg.Und(2)}
	ext := enumerate.ExtractExtension(assignment, alg)

	require.True(t, ext.Contains(1))
	require.False(t, ext.Contains(2))
	require.Equal(t, 1, ext.Len())
}

// counterSolver returns a fake solver binary that replies according to a
// response table indexed by invocation count (0-based), answering UNSAT
// once the table is exhausted. Each response is either a SAT model line or
// "UNSAT".
func counterSolver(t *testing.T, unsatCode int, responses []string) string {
	t.Helper()
	dir := t.TempDir()
	counter := filepath.Join(dir, "count")
	require.NoError(t, os.WriteFile(counter, []byte("0"), 0o644))

	script := fmt.Sprintf(`#!/bin/sh
cat >/dev/null
n=$(cat %q)
case "$n" in
`, counter)
	for i, resp := range responses {
		script += fmt.Sprintf("%d)\n", i)
		if resp == "UNSAT" {
			script += fmt.Sprintf("  echo 'c unsat'\n  echo $(( %d + 1 )) > %q\n  exit %d\n", i, counter, unsatCode)
		} else {
			script += fmt.Sprintf("  echo 'v %s 0'\n  echo $(( %d + 1 )) > %q\n  exit 10\n", resp, i, counter)
		}
	}
	script += fmt.Sprintf(`*)
  exit %d
  ;;
esac
`, unsatCode)

	path := filepath.Join(dir, "fake-solver.sh")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func twoArgIsolated(t *testing.T) *framework.Framework {
	t.Helper()
	f, err := framework.New([]string{"a", "b"}, nil)
	require.NoError(t, err)
	return f
}

func TestSequenceEnumeratesThenExhausts(t *testing.T) {
	// complete semantics over two isolated arguments has exactly one
	// complete extension, {a,b} — model with in(a), in(b) true.
	alg := satvar.NewAlgebra(2, satvar.KComplete)
	model := fmt.Sprintf("%d -%d -%d %d -%d -%d", alg.In(1), alg.Out(1), alg.Und(1), alg.In(2), alg.Out(2), alg.Und(2))

	bin := counterSolver(t, 20, []string{model, "UNSAT"})
	d := solver.NewDriver(solver.Config{Binary: bin, UnsatCode: 20}, nil)

	seq := enumerate.All(d, twoArgIsolated(t), theories.CompleteTemplates)

	ext, ok, err := seq.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, ext.Len())

	_, ok, err = seq.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	// exhausted sequences keep returning (nil, false, nil)
	_, ok, err = seq.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSequenceEnumeratesEmptyFrameworkThenExhausts(t *testing.T) {
	// A zero-argument framework has exactly one extension, ∅: the solver's
	// sole model has no positive literals, so the blocking clause is the
	// empty clause — a literal contradiction that must still be accepted
	// and forwarded, forcing the next call UNSAT.
	f, err := framework.New(nil, nil)
	require.NoError(t, err)

	bin := counterSolver(t, 20, []string{"", "UNSAT"})
	d := solver.NewDriver(solver.Config{Binary: bin, UnsatCode: 20}, nil)

	seq := enumerate.All(d, f, theories.CompleteTemplates)

	ext, ok, err := seq.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, ext.Len())

	_, ok, err = seq.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSingleReturnsNotOkOnUnsat(t *testing.T) {
	bin := counterSolver(t, 20, []string{"UNSAT"})
	d := solver.NewDriver(solver.Config{Binary: bin, UnsatCode: 20}, nil)

	_, ok, err := enumerate.Single(context.Background(), d, twoArgIsolated(t), theories.StableTemplates)
	require.NoError(t, err)
	require.False(t, ok)
}
