// Command afsolver decides and enumerates extensions of abstract
// argumentation frameworks, delegating the hard combinatorial work to an
// external SAT solver.
package main

import (
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

const appVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "afsolver",
		Level:      hclog.LevelFromString(os.Getenv("AFSOLVER_LOG")),
		Output:     os.Stderr,
		JSONFormat: false,
	})

	cmd := &SolveCommand{
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: logger,
	}

	// afsolver has exactly one subcommand, but is still dispatched through
	// hashicorp/cli's Command contract for consistency with how the rest of
	// this stack's tooling is built; the bare invocation is rewritten to
	// invoke it directly, so callers never type an explicit "solve".
	c := cli.NewCLI("afsolver", appVersion)
	c.Args = append([]string{"solve"}, args...)
	c.Commands = map[string]cli.CommandFactory{
		"solve": func() (cli.Command, error) { return cmd, nil },
	}

	exitCode, err := c.Run()
	if err != nil {
		logger.Error("afsolver exited with an internal error", "error", err)
		return 1
	}
	return exitCode
}
