package theories

import (
	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/satvar"
)

// CompleteTemplates is the template set shared by complete and preferred
// semantics (preferred is a maximality filter over complete enumeration,
// not a separate encoding; grounded uses no templates and no SAT call —
// see package semantics).
var CompleteTemplates = TemplateSet{
	K: satvar.KComplete,
	Templates: []Template{
		uniquenessTemplate,
		completeIn1Template,
		completeIn2Template,
		completeOut1Template,
		completeOut2Template,
	},
}

// uniquenessTemplate encodes that exactly one of In, Out, Und holds for a:
// a totality clause plus the three pairwise-exclusion clauses.
func uniquenessTemplate(a int, _ *framework.Framework, alg *satvar.Algebra) []Clause {
	in, out, und := alg.In(a), alg.Out(a), alg.Und(a)
	return []Clause{
		{in, out, und},
		{-in, -out},
		{-in, -und},
		{-out, -und},
	}
}

// completeIn1Template encodes I1: a is In if all of its attackers are Out.
// (AND of ¬out(b) over attackers) -> in(a), i.e. (OR ¬out(b)) OR in(a).
// An unattacked argument yields the unit clause in(a).
func completeIn1Template(a int, f *framework.Framework, alg *satvar.Algebra) []Clause {
	attackers := f.AttackersOf(a)
	clause := make(Clause, 0, len(attackers)+1)
	for b := range attackers {
		clause = append(clause, -alg.Out(b))
	}
	clause = append(clause, alg.In(a))
	return []Clause{clause}
}

// completeIn2Template encodes I2: in(a) -> out(b) for every b that a
// attacks.
func completeIn2Template(a int, f *framework.Framework, alg *satvar.Algebra) []Clause {
	attacked := f.AttackedBy(a)
	out := make([]Clause, 0, len(attacked))
	for b := range attacked {
		out = append(out, Clause{-alg.In(a), alg.Out(b)})
	}
	return out
}

// completeOut1Template encodes O1: in(b) -> out(a) for every attacker b of
// a.
func completeOut1Template(a int, f *framework.Framework, alg *satvar.Algebra) []Clause {
	attackers := f.AttackersOf(a)
	out := make([]Clause, 0, len(attackers))
	for b := range attackers {
		out = append(out, Clause{-alg.In(b), alg.Out(a)})
	}
	return out
}

// completeOut2Template encodes O2: out(a) -> (OR in(b)) over attackers of
// a. An unattacked argument yields the unit clause ¬out(a).
func completeOut2Template(a int, f *framework.Framework, alg *satvar.Algebra) []Clause {
	attackers := f.AttackersOf(a)
	clause := make(Clause, 0, len(attackers)+1)
	for b := range attackers {
		clause = append(clause, alg.In(b))
	}
	clause = append(clause, -alg.Out(a))
	return []Clause{clause}
}
