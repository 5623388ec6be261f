package semantics_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeEnumSolver returns a fake solver binary that replies with the given
// model lines in order, then UNSAT forever. responses[i] is either a raw
// "v ..." payload body (space-separated literals, no leading "v" or
// trailing "0" — both added here) or the literal string "UNSAT".
func fakeEnumSolver(t *testing.T, unsatCode int, responses []string) string {
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
