package semantics

import (
	"context"

	"github.com/katalvlaran/dungaf/extset"
	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/solver"
)

// PreferredAll returns every preferred extension (EE-PR): the ⊆-maximal
// complete extensions. Unlike CompleteAll and StableAll, this cannot be
// answered lazily — maximality is a property of the whole set, so every
// complete extension must be materialized before any can be discarded.
func PreferredAll(ctx context.Context, d *solver.Driver, f *framework.Framework) ([]framework.ArgSet, error) {
	complete, err := CompleteAll(ctx, d, f)
	if err != nil {
		return nil, err
	}
	return extset.Maximal(complete), nil
}

// PreferredSingle returns one preferred extension (SE-PR). ok is false only
// if f has no complete extension at all, which cannot happen for a
// well-formed AF.
func PreferredSingle(ctx context.Context, d *solver.Driver, f *framework.Framework) (framework.ArgSet, bool, error) {
	all, err := PreferredAll(ctx, d, f)
	if err != nil {
		return nil, false, err
	}
	if len(all) == 0 {
		return nil, false, nil
	}
	return all[0], true, nil
}
