package theories

import (
	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/satvar"
)

// StableTemplates encodes stable extensions directly: an In-set that
// attacks every argument outside it and contains no internal attack. Out
// is allocated (k=satvar.KStable) but never referenced by either
// template, so it is left unconstrained by the solver — only the In
// positions of a model are meaningful, exactly as the enumeration engine's
// extraction assumes.
var StableTemplates = TemplateSet{
	K: satvar.KStable,
	Templates: []Template{
		stableInTemplate,
		stableOutTemplate,
	},
}

// stableInTemplate encodes: in(a) OR (OR in(b) over attackers of a) —
// every argument is either In or attacked by an In argument.
func stableInTemplate(a int, f *framework.Framework, alg *satvar.Algebra) []Clause {
	attackers := f.AttackersOf(a)
	clause := make(Clause, 0, len(attackers)+1)
	clause = append(clause, alg.In(a))
	for b := range attackers {
		clause = append(clause, alg.In(b))
	}
	return []Clause{clause}
}

// stableOutTemplate encodes conflict-freeness: ¬in(b) OR ¬in(a) for every
// attacker b of a, so no argument is In together with one of its
// attackers. A self-attacking argument yields ¬in(a) OR ¬in(a), which is
// kept unreduced — it still forces in(a) false.
func stableOutTemplate(a int, f *framework.Framework, alg *satvar.Algebra) []Clause {
	attackers := f.AttackersOf(a)
	out := make([]Clause, 0, len(attackers))
	for b := range attackers {
		out = append(out, Clause{-alg.In(b), -alg.In(a)})
	}
	return out
}
