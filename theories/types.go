package theories

import (
	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/satvar"
)

// Clause is an unordered, unordered-by-contract list of non-zero DIMACS
// literals: positive i means variable i is true, negative -i means false.
// Clauses are not deduplicated and may repeat a literal (e.g. self-attack
// clauses) — correctness is unaffected, since a repeated literal does not
// change a clause's truth value.
type Clause []int

// Template generates the CNF fragment for one argument's legality
// condition. alg is the variable algebra for the semantics' block size;
// templates must use it rather than recomputing variable numbers so every
// template in a TemplateSet agrees on k.
type Template func(a int, f *framework.Framework, alg *satvar.Algebra) []Clause

// TemplateSet is an ordered collection of templates sharing one variable
// block size. The order here becomes the clause order in the assembled
// payload (Build iterates templates in this order, and arguments
// in ascending value order within each template).
type TemplateSet struct {
	K         satvar.K
	Templates []Template
}
