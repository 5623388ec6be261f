// Package solver drives an external DIMACS CNF-SAT solver as a
// subprocess: it feeds an encoded theories.Payload on stdin, waits for the
// process to exit, and turns the exit code and stdout into either a
// satisfying assignment or a structured UNSAT/error result.
//
// No SAT procedure lives in this module — per the project's non-goals,
// satisfiability is always decided by an external binary (glucose-syrup by
// default, see Config). The driver's only job is process orchestration
// and output parsing; package enumerate owns the blocking-clause loop that
// calls it repeatedly.
package solver
