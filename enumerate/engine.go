package enumerate

import (
	"context"

	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/satvar"
	"github.com/katalvlaran/dungaf/solver"
	"github.com/katalvlaran/dungaf/theories"
)

// ExtractExtension projects a raw SAT assignment onto the extension it
// encodes: the arguments whose In-variable was assigned true. This
// naturally covers both the k>1 block encodings (only the first slot of
// each block is an In-variable) and a hypothetical k=1 compact encoding
// (every variable is, trivially, an In-position), since both are governed
// by the same satvar.IsInVar predicate.
func ExtractExtension(assignment []int, alg *satvar.Algebra) framework.ArgSet {
	ext := framework.NewArgSet()
	k := alg.K()
	for _, lit := range assignment {
		if lit > 0 && satvar.IsInVar(lit, k) {
			ext.Add(satvar.Arg(lit, k))
		}
	}
	return ext
}

// blockingClause negates the positive literals of a model, forbidding
// that exact total assignment in future iterations.
func blockingClause(assignment []int) theories.Clause {
	clause := make(theories.Clause, 0, len(assignment))
	for _, lit := range assignment {
		if lit > 0 {
			clause = append(clause, -lit)
		}
	}
	return clause
}

// Single builds the theory for f under ts, runs the solver once, and
// returns the single extension it finds. ok is false when the theory is
// UNSAT (the "no extension" sentinel from §4.6).
func Single(ctx context.Context, d *solver.Driver, f *framework.Framework, ts theories.TemplateSet) (ext framework.ArgSet, ok bool, err error) {
	payload := theories.Build(f, ts)
	res, err := d.Run(ctx, payload)
	if err != nil {
		return nil, false, err
	}
	if !res.SAT {
		return nil, false, nil
	}
	return ExtractExtension(res.Assignment, payload.Algebra()), true, nil
}

// Sequence is a lazy, one-extension-at-a-time full enumeration. Each call
// to Next performs exactly one solver invocation.
type Sequence struct {
	driver  *solver.Driver
	payload *theories.Payload
	done    bool
}

// All starts a full enumeration of f under ts. The returned Sequence has
// not yet run the solver; call Next to pull the first extension.
func All(d *solver.Driver, f *framework.Framework, ts theories.TemplateSet) *Sequence {
	return &Sequence{
		driver:  d,
		payload: theories.Build(f, ts),
	}
}

// Next runs one more solver invocation. It returns (extension, true, nil)
// for each extension found, and (nil, false, nil) once the theory becomes
// UNSAT — the sequence is then exhausted and every subsequent call to Next
// returns the same (nil, false, nil) without invoking the solver again.
// A non-nil error aborts the sequence; callers should not call Next again
// after an error.
func (s *Sequence) Next(ctx context.Context) (framework.ArgSet, bool, error) {
	if s.done {
		return nil, false, nil
	}

	res, err := s.driver.Run(ctx, s.payload)
	if err != nil {
		return nil, false, err
	}
	if !res.SAT {
		s.done = true
		return nil, false, nil
	}

	ext := ExtractExtension(res.Assignment, s.payload.Algebra())
	// blockingClause is empty when the model has no positive literals — the
	// sole model of a zero-argument framework. An empty DIMACS clause is a
	// literal contradiction, which is exactly what is needed to force the
	// next solver call UNSAT and end the sequence after this one extension.
	_ = s.payload.AddClause(blockingClause(res.Assignment))
	return ext, true, nil
}

// Collect drains the whole sequence into a slice. Callers that can answer
// their question lazily (credulous/skeptical decisions) should use Next
// directly instead — Collect materializes every extension.
func Collect(ctx context.Context, seq *Sequence) ([]framework.ArgSet, error) {
	var out []framework.ArgSet
	for {
		ext, ok, err := seq.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, ext)
	}
}
