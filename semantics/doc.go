// Package semantics implements the four Dung semantics (complete,
// grounded, preferred, stable) and the four reasoning tasks (SE, EE, DC,
// DS) on top of packages framework, theories, enumerate and extset.
//
// Complete and stable are thin single/full enumeration wrappers around
// package enumerate with their respective template sets. Grounded is
// computed directly from the framework's characteristic operator, with no
// SAT call at all. Preferred is the maximal filter (package extset) over a
// fully-materialized complete enumeration — maximality is a global
// property, so EE-PR cannot be lazy even though EE-CO and EE-ST are.
//
// Credulous and skeptical decisions consume the underlying enumeration
// lazily wherever the semantics allows it (CO, ST) and short-circuit as
// soon as the answer is known, never materializing the full extension set
// just to answer a decision task.
package semantics
