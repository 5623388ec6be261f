package semantics

import "github.com/katalvlaran/dungaf/framework"

// GroundedExtension computes the least fixed point of f's characteristic
// operator starting from the empty set (SE-GR): S_{i+1} := F(S_i),
// accumulated into grounded at every step, until S_{i+1} == S_i.
// Monotonicity of F guarantees convergence in at most f.Len() steps; no SAT
// call is involved.
func GroundedExtension(f *framework.Framework) framework.ArgSet {
	grounded := framework.NewArgSet()
	current := framework.NewArgSet()

	for {
		next := f.Characteristic(current)
		grounded = grounded.Union(next)

		if next.Equal(current) {
			break
		}
		current = next
	}

	return grounded
}

// GroundedCredulous tests membership in the grounded extension (DC-GR).
func GroundedCredulous(f *framework.Framework, a int) bool {
	return GroundedExtension(f).Contains(a)
}
