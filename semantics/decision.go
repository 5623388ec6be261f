package semantics

import (
	"context"

	"github.com/katalvlaran/dungaf/enumerate"
	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/solver"
	"github.com/katalvlaran/dungaf/theories"
)

// templatesFor resolves the clause templates backing the lazily-enumerable
// semantics. Preferred has no entry: maximality forces full materialization,
// so Credulous/Skeptical handle it separately via PreferredAll.
func templatesFor(sem Semantics) (theories.TemplateSet, bool) {
	switch sem {
	case Complete:
		return theories.CompleteTemplates, true
	case Stable:
		return theories.StableTemplates, true
	default:
		return theories.TemplateSet{}, false
	}
}

// Credulous answers DC: does some extension under sem contain a? For CO and
// ST it consumes the enumeration lazily, stopping at the first hit. For PR
// it must first materialize every preferred extension.
func Credulous(ctx context.Context, d *solver.Driver, f *framework.Framework, sem Semantics, a int) (bool, error) {
	if sem == Preferred {
		all, err := PreferredAll(ctx, d, f)
		if err != nil {
			return false, err
		}
		for _, ext := range all {
			if ext.Contains(a) {
				return true, nil
			}
		}
		return false, nil
	}

	ts, ok := templatesFor(sem)
	if !ok {
		return false, ErrUnsupportedSemantics
	}

	seq := enumerate.All(d, f, ts)
	for {
		ext, ok, err := seq.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if ext.Contains(a) {
			return true, nil
		}
	}
}

// Skeptical answers DS: does every extension under sem contain a? For CO
// and ST it consumes the enumeration lazily, stopping at the first miss.
// For PR it must first materialize every preferred extension. An AF with
// zero extensions under sem is vacuously skeptically accepting, matching
// the empty-intersection convention used by the reference implementation.
func Skeptical(ctx context.Context, d *solver.Driver, f *framework.Framework, sem Semantics, a int) (bool, error) {
	if sem == Preferred {
		all, err := PreferredAll(ctx, d, f)
		if err != nil {
			return false, err
		}
		for _, ext := range all {
			if !ext.Contains(a) {
				return false, nil
			}
		}
		return true, nil
	}

	ts, ok := templatesFor(sem)
	if !ok {
		return false, ErrUnsupportedSemantics
	}

	seq := enumerate.All(d, f, ts)
	for {
		ext, ok, err := seq.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		if !ext.Contains(a) {
			return false, nil
		}
	}
}
