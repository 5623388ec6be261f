// Package framework models an abstract argumentation framework (Dung, 1995):
// a finite set of arguments and an attack relation between them.
//
// A Framework is built once from parsed input and is immutable afterwards.
// Arguments are identified externally by name and internally by a dense
// 1-based integer value; the Framework owns the name↔value bijection and
// the attacker/attacked-by adjacency in both directions.
//
//	f, _ := framework.New([]string{"a", "b", "c"}, []framework.Attack{{From: "a", To: "b"}})
//	b, _ := f.ValueOf("b")
//	f.AttackersOf(b) // -> {a's value}
//
// The characteristic operator Characteristic(S) = {a | AttackersOf(a) ⊆
// AttackedBySet(S)} is the basis of grounded-semantics computation
// elsewhere in this module; Framework itself only provides the adjacency
// primitives and the operator, not any semantics.
package framework
