package semantics

import (
	"context"

	"github.com/katalvlaran/dungaf/enumerate"
	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/solver"
	"github.com/katalvlaran/dungaf/theories"
)

// StableSingle returns one stable extension (SE-ST). ok is false when the
// framework has none — e.g. a single self-attacking argument.
func StableSingle(ctx context.Context, d *solver.Driver, f *framework.Framework) (framework.ArgSet, bool, error) {
	return enumerate.Single(ctx, d, f, theories.StableTemplates)
}

// StableAll returns every stable extension (EE-ST).
func StableAll(ctx context.Context, d *solver.Driver, f *framework.Framework) ([]framework.ArgSet, error) {
	seq := enumerate.All(d, f, theories.StableTemplates)
	return enumerate.Collect(ctx, seq)
}
