package solver

// Config is the process-wide SAT command configuration: the solver
// binary, the extra arguments it is invoked with, and the exit code it
// uses to signal UNSAT. DefaultConfig matches the reference
// implementation's glucose-syrup invocation.
type Config struct {
	Binary    string
	Args      []string
	UnsatCode int
}

// DefaultConfig is {binary: "glucose-syrup", args: ["-model", "-verb=0"],
// unsat_code: 20}, the reference solver command.
var DefaultConfig = Config{
	Binary:    "glucose-syrup",
	Args:      []string{"-model", "-verb=0"},
	UnsatCode: 20,
}

// Result is the outcome of one solver invocation.
type Result struct {
	// SAT is true when the solver found a model; Assignment then holds
	// the signed literal assignment it reported. SAT is false on UNSAT,
	// in which case Assignment is nil.
	SAT        bool
	Assignment []int
}
