// Package dungaf decides and enumerates extensions of abstract
// argumentation frameworks under Dung's complete, grounded, preferred and
// stable semantics, per the ICCMA reasoning tasks SE, EE, DC and DS.
//
// The solving strategy is a reduction, not a bespoke search: every task
// beyond grounded reduces to one or more calls to an external SAT solver
// over a CNF encoding of the semantics' defining fixed-point condition.
// Grounded alone is computed directly, as the least fixed point of the
// framework's characteristic operator — no SAT call is needed there.
//
// Package layout:
//
//	framework/  — the argumentation framework itself: arguments, attacks,
//	              the characteristic operator
//	satvar/     — the (argument, label) ↔ SAT-variable bijection
//	theories/   — clause templates per semantics, and DIMACS CNF assembly
//	solver/     — SAT solver subprocess invocation and output parsing
//	enumerate/  — single and full extension enumeration over a theory
//	extset/     — subset and maximal/minimal-extension set operations
//	semantics/  — complete/grounded/preferred/stable task implementations
//	format/     — TGF and APX input parsing
//	iccma/      — task identifiers and ICCMA output formatting
//	cmd/afsolver — the command-line driver
package dungaf
