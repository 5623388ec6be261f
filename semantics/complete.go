package semantics

import (
	"context"

	"github.com/katalvlaran/dungaf/enumerate"
	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/solver"
	"github.com/katalvlaran/dungaf/theories"
)

// CompleteSingle returns one complete extension (SE-CO). ok is false only
// if the framework has no complete extension, which cannot happen for a
// well-formed AF — every AF has at least the grounded extension, itself
// complete — but callers must still check ok rather than assume it.
func CompleteSingle(ctx context.Context, d *solver.Driver, f *framework.Framework) (framework.ArgSet, bool, error) {
	return enumerate.Single(ctx, d, f, theories.CompleteTemplates)
}

// CompleteAll returns every complete extension (EE-CO).
func CompleteAll(ctx context.Context, d *solver.Driver, f *framework.Framework) ([]framework.ArgSet, error) {
	seq := enumerate.All(d, f, theories.CompleteTemplates)
	return enumerate.Collect(ctx, seq)
}
