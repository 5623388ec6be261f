// Package enumerate implements single and full model enumeration over a
// CNF theory built from a framework and a template set.
//
// Full enumeration (All) is iterator-shaped: it returns a *Sequence whose
// Next method blocks on exactly one solver invocation per call, appending
// a blocking clause — the negation of the previous model's positive
// literals — after each extension it yields. Callers that only need a
// credulous/skeptical decision should consume the Sequence lazily via
// Next and stop as soon as the decision is known; they must not
// materialize the full set first (see package semantics).
package enumerate
