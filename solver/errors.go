package solver

import "errors"

// ErrSolverNotFound is returned when the configured solver binary cannot
// be located on PATH. Run wraps this with the binary name and the system
// it is a dependency of.
var ErrSolverNotFound = errors.New("solver: binary not found")

// ErrSolverFailed is returned when the solver exits with a code that is
// neither a success code (0 or 10) nor the configured UNSAT sentinel.
var ErrSolverFailed = errors.New("solver: invocation failed")

// ErrNoModelLine is returned when the solver reports success but stdout
// contains no "v " model line to parse.
var ErrNoModelLine = errors.New("solver: no model line in solver output")
