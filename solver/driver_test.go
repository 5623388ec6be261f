package solver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungaf/solver"
	"github.com/katalvlaran/dungaf/theories"
	"github.com/katalvlaran/dungaf/framework"
)

// fakeSolver writes an executable shell script standing in for a real SAT
// solver binary so Driver.Run can be exercised without glucose-syrup
// installed. body is the script body; exitCode is its exit status.
func fakeSolver(t *testing.T, body string, exitCode int) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-solver.sh")
	script := "#!/bin/sh\ncat >/dev/null\n" + body + "\nexit " + itoa(exitCode) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func tinyPayload(t *testing.T) *theories.Payload {
	t.Helper()
	f, err := framework.New([]string{"a"}, nil)
	require.NoError(t, err)
	return theories.Build(f, theories.CompleteTemplates)
}

func TestDriverRunUnsat(t *testing.T) {
	bin := fakeSolver(t, `echo "s UNSATISFIABLE"`, 20)
	d := solver.NewDriver(solver.Config{Binary: bin, UnsatCode: 20}, nil)

	res, err := d.Run(context.Background(), tinyPayload(t))
	require.NoError(t, err)
	require.False(t, res.SAT)
}

func TestDriverRunSat(t *testing.T) {
	bin := fakeSolver(t, `echo "s SATISFIABLE"; echo "v 1 -2 -3 0"`, 10)
	d := solver.NewDriver(solver.Config{Binary: bin, UnsatCode: 20}, nil)

	res, err := d.Run(context.Background(), tinyPayload(t))
	require.NoError(t, err)
	require.True(t, res.SAT)
	require.Equal(t, []int{1, -2, -3}, res.Assignment)
}

func TestDriverRunFailure(t *testing.T) {
	bin := fakeSolver(t, `echo "boom" >&2`, 2)
	d := solver.NewDriver(solver.Config{Binary: bin, UnsatCode: 20}, nil)

	_, err := d.Run(context.Background(), tinyPayload(t))
	require.Error(t, err)
}

func TestDriverRunBinaryNotFound(t *testing.T) {
	d := solver.NewDriver(solver.Config{Binary: "dungaf-test-definitely-missing-solver", UnsatCode: 20}, nil)

	_, err := d.Run(context.Background(), tinyPayload(t))
	require.Error(t, err)
	require.ErrorIs(t, err, solver.ErrSolverNotFound)
}
