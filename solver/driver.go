package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/dungaf/theories"
)

// Driver invokes a configured SAT solver binary as a subprocess.
type Driver struct {
	cfg    Config
	logger hclog.Logger
}

// NewDriver returns a Driver for cfg. A nil logger is replaced with a
// no-op logger so library callers never see log output unless they
// explicitly opt in.
func NewDriver(cfg Config, logger hclog.Logger) *Driver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Driver{cfg: cfg, logger: logger}
}

// Run feeds payload's DIMACS encoding to the solver on stdin and returns
// the parsed result once the subprocess exits.
func (d *Driver) Run(ctx context.Context, payload *theories.Payload) (*Result, error) {
	cmd := exec.CommandContext(ctx, d.cfg.Binary, d.cfg.Args...)
	cmd.Stdin = bytes.NewReader(payload.Encode())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	d.logger.Debug("invoking SAT solver",
		"binary", d.cfg.Binary,
		"args", d.cfg.Args,
		"num_vars", payload.NumVars(),
		"num_clauses", payload.NumClauses(),
	)

	runErr := cmd.Run()

	var execErr *exec.Error
	if errors.As(runErr, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return nil, fmt.Errorf("Run: %q is not executable or not on PATH (dependency of the SAT solving step): %w", d.cfg.Binary, ErrSolverNotFound)
	}

	exitCode := 0
	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
		exitCode = 0
	case errors.As(runErr, &exitErr):
		exitCode = exitErr.ExitCode()
	default:
		return nil, fmt.Errorf("Run: %s: %w", d.cfg.Binary, runErr)
	}

	if exitCode == d.cfg.UnsatCode {
		d.logger.Debug("SAT solver reported UNSAT", "binary", d.cfg.Binary)
		return &Result{SAT: false}, nil
	}

	// 10 is the conventional SAT exit code of DIMACS solvers (glucose
	// included); 0 is accepted as success too.
	if exitCode != 0 && exitCode != 10 {
		return nil, fmt.Errorf("Run: %s %s exited %d: %w", d.cfg.Binary, strings.Join(d.cfg.Args, " "), exitCode, ErrSolverFailed)
	}

	assignment, err := parseModelLine(stdout.String())
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	d.logger.Debug("SAT solver reported SAT", "binary", d.cfg.Binary, "assignment_size", len(assignment))
	return &Result{SAT: true, Assignment: assignment}, nil
}

// parseModelLine locates the last stdout line starting with "v " and
// parses its space-separated signed integers, dropping the leading "v"
// token and the trailing DIMACS "0" terminator. This is the robust
// variant of the reference implementation's "penultimate line" heuristic
// (see Open Questions): it does not depend on exactly one trailing blank
// line following the model.
func parseModelLine(stdout string) ([]int, error) {
	lines := strings.Split(stdout, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "v ") && line != "v" {
			continue
		}
		fields := strings.Fields(line)
		fields = fields[1:] // drop leading "v"
		if len(fields) > 0 && fields[len(fields)-1] == "0" {
			fields = fields[:len(fields)-1]
		}
		out := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("parseModelLine: invalid literal %q: %w", f, err)
			}
			out = append(out, v)
		}
		return out, nil
	}
	return nil, ErrNoModelLine
}
