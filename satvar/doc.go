// Package satvar implements the bijection between (argument, label) pairs
// and the positive integers used as SAT variables in the DIMACS encoding.
//
// For the complete family of semantics (complete, grounded, preferred)
// each argument occupies a contiguous block of three variables, in the
// order In, Out, Und. For stable semantics each argument occupies a block
// of two variables, In and Out; Out is allocated but left unconstrained by
// the stable clause templates (see package theories).
//
// All functions here are pure and deterministic: var(a, L) = k*(a-1) +
// code(L), and Arg is its inverse projection. Callers that invoke these
// functions in hot per-argument loops should prefer the fixed-size table
// behind Algebra's In/Out/Und methods, which avoids recomputing the block
// arithmetic.
package satvar
