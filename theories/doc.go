// Package theories generates the propositional CNF encoding of Dung
// semantics and assembles it into a DIMACS payload.
//
// A Template is a pure function of one argument and the framework it
// belongs to; it returns the CNF clauses that encode that argument's
// legality condition under some semantics. The full theory for an AF is
// the union, over every argument in ascending value order and every
// template in declared order, of each template's output — see Build.
//
// Two template sets are provided: CompleteTemplates (complete and
// preferred semantics share it, k=satvar.KComplete) and
// StableTemplates (k=satvar.KStable). Templates are plain function values
// closed over no state, not methods on a hierarchy of semantics types —
// dispatch is a TemplateSet value, not a type switch.
package theories
