package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/dungaf/format"
	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/iccma"
	"github.com/katalvlaran/dungaf/semantics"
	"github.com/katalvlaran/dungaf/solver"
)

// SolveCommand is the CLI's single subcommand. Every flag the original
// argparse-based tool exposes — -p/-f/-fo/-a/-v plus the --formats and
// --problems listing actions — is registered here against the same
// variable under both its long and short spelling.
type SolveCommand struct {
	out    io.Writer
	errOut io.Writer
	logger hclog.Logger
}

func (c *SolveCommand) Synopsis() string {
	return "Decide or enumerate extensions of an argumentation framework"
}

func (c *SolveCommand) Help() string {
	return strings.TrimSpace(`
Usage: afsolver -p <task> -f <path> -fo <tgf|apx> [-a <argument>] [-v]

  Solve a reasoning task over an abstract argumentation framework.

Required:
  -p,  --problemTask   Task to solve, e.g. EE-CO. See --problems.
  -f,  --inputFile      Path to the input file.
  -fo, --fileFormat     Input file format. See --formats.

Optional:
  -a,  --argument       Argument to decide acceptance for (DC/DS tasks only).
  -v,  --validate       Strictly validate the input file before solving.
       --formats        List supported input file formats and exit.
       --problems       List supported problem tasks and exit.
`)
}

func (c *SolveCommand) Run(args []string) int {
	var problemTask, inputFile, fileFormat, argument string
	var validate, showFormats, showProblems bool

	fs := flag.NewFlagSet("afsolver", flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	fs.StringVar(&problemTask, "p", "", "")
	fs.StringVar(&problemTask, "problemTask", "", "")
	fs.StringVar(&inputFile, "f", "", "")
	fs.StringVar(&inputFile, "inputFile", "", "")
	fs.StringVar(&fileFormat, "fo", "", "")
	fs.StringVar(&fileFormat, "fileFormat", "", "")
	fs.StringVar(&argument, "a", "", "")
	fs.StringVar(&argument, "argument", "", "")
	fs.BoolVar(&validate, "v", false, "")
	fs.BoolVar(&validate, "validate", false, "")
	fs.BoolVar(&showFormats, "formats", false, "")
	fs.BoolVar(&showProblems, "problems", false, "")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if showFormats {
		fmt.Fprintf(c.out, "[%s]\n", strings.Join(format.SupportedFormats(), ", "))
		return 0
	}
	if showProblems {
		fmt.Fprintf(c.out, "[%s]\n", strings.Join(iccma.SupportedTasks(), ", "))
		return 0
	}

	if problemTask == "" || inputFile == "" || fileFormat == "" {
		fmt.Fprintln(c.errOut, "afsolver: -p, -f and -fo are required")
		fmt.Fprintln(c.errOut, c.Help())
		return 1
	}

	task, ok := iccma.ParseTask(problemTask)
	if !ok {
		fmt.Fprintf(c.errOut, "afsolver: %q is not a supported problem task. Use --problems to see the list of supported tasks.\n", problemTask)
		return 1
	}

	hasArgument := argument != ""
	if err := iccma.CheckArgumentUsage(task, hasArgument); err != nil {
		fmt.Fprintln(c.errOut, "afsolver:", err)
		return 1
	}

	supportedFormat := false
	for _, f := range format.SupportedFormats() {
		if f == fileFormat {
			supportedFormat = true
			break
		}
	}
	if !supportedFormat {
		fmt.Fprintf(c.errOut, "afsolver: %q is not a supported input file format. Use --formats to see the list of supported formats.\n", fileFormat)
		return 1
	}

	file, err := os.Open(inputFile)
	if err != nil {
		fmt.Fprintln(c.errOut, "afsolver:", err)
		return 1
	}
	defer file.Close()

	names, attacks, err := format.Parse(file, fileFormat, validate)
	if err != nil {
		fmt.Fprintln(c.errOut, "Invalid input file!")
		fmt.Fprintln(c.errOut, err)
		return 1
	}

	af, err := framework.New(names, attacks)
	if err != nil {
		fmt.Fprintln(c.errOut, "Invalid input file!")
		fmt.Fprintln(c.errOut, err)
		return 1
	}

	var argVal int
	if hasArgument {
		argVal, ok = af.ValueOf(argument)
		if !ok {
			fmt.Fprintf(c.errOut, "afsolver: argument %q is not declared in %s\n", argument, inputFile)
			return 1
		}
	}

	driver := solver.NewDriver(solver.DefaultConfig, c.logger)
	ctx := context.Background()

	if err := c.dispatch(ctx, driver, af, task, argVal); err != nil {
		return c.reportSolveError(err)
	}
	return 0
}

// dispatch resolves the (Problem, Semantics) pair to the concrete
// semantics-package call and writes its result.
func (c *SolveCommand) dispatch(ctx context.Context, d *solver.Driver, af *framework.Framework, task iccma.Task, argVal int) error {
	if task.Semantics == semantics.Grounded {
		switch task.Problem {
		case iccma.SE:
			return iccma.WriteExtension(c.out, af, semantics.GroundedExtension(af), true)
		case iccma.DC:
			return iccma.WriteDecision(c.out, semantics.GroundedCredulous(af, argVal))
		}
	}

	switch task.Problem {
	case iccma.SE:
		ext, ok, err := singleFor(ctx, d, af, task.Semantics)
		if err != nil {
			return err
		}
		return iccma.WriteExtension(c.out, af, ext, ok)

	case iccma.EE:
		exts, err := allFor(ctx, d, af, task.Semantics)
		if err != nil {
			return err
		}
		return iccma.WriteExtensions(c.out, af, exts)

	case iccma.DC:
		accepted, err := semantics.Credulous(ctx, d, af, task.Semantics, argVal)
		if err != nil {
			return err
		}
		return iccma.WriteDecision(c.out, accepted)

	case iccma.DS:
		accepted, err := semantics.Skeptical(ctx, d, af, task.Semantics, argVal)
		if err != nil {
			return err
		}
		return iccma.WriteDecision(c.out, accepted)
	}

	return fmt.Errorf("afsolver: unreachable task %s", task)
}

func singleFor(ctx context.Context, d *solver.Driver, af *framework.Framework, sem semantics.Semantics) (framework.ArgSet, bool, error) {
	switch sem {
	case semantics.Complete:
		return semantics.CompleteSingle(ctx, d, af)
	case semantics.Preferred:
		return semantics.PreferredSingle(ctx, d, af)
	case semantics.Stable:
		return semantics.StableSingle(ctx, d, af)
	default:
		return nil, false, semantics.ErrUnsupportedSemantics
	}
}

func allFor(ctx context.Context, d *solver.Driver, af *framework.Framework, sem semantics.Semantics) ([]framework.ArgSet, error) {
	switch sem {
	case semantics.Complete:
		return semantics.CompleteAll(ctx, d, af)
	case semantics.Preferred:
		return semantics.PreferredAll(ctx, d, af)
	case semantics.Stable:
		return semantics.StableAll(ctx, d, af)
	default:
		return nil, semantics.ErrUnsupportedSemantics
	}
}

// reportSolveError prints err and returns the exit code §7 assigns to its
// kind: ENOENT when the SAT binary could not be launched, 1 otherwise.
func (c *SolveCommand) reportSolveError(err error) int {
	fmt.Fprintln(c.errOut, "afsolver:", err)
	if errors.Is(err, solver.ErrSolverNotFound) {
		return int(syscall.ENOENT)
	}
	return 1
}
