package satvar

// Label identifies one of the three Dung labels. Numeric codes start at 1
// so that InLabel is always the first variable of an argument's block,
// matching the variable algebra's var(a, L) = k*(a-1) + code(L).
type Label int

const (
	// InLabel marks an argument as accepted (member of the extension).
	InLabel Label = 1
	// OutLabel marks an argument as rejected.
	OutLabel Label = 2
	// UndLabel marks an argument as undecided. Only meaningful for the
	// complete family (k=3); stable's k=2 encoding has no Und variable.
	UndLabel Label = 3
)

// K is the number of SAT variables allocated per argument for a given
// semantics family.
type K int

const (
	// KComplete is used by complete and preferred semantics: three
	// variables per argument (In, Out, Und).
	KComplete K = 3
	// KStable is used by stable semantics: two variables per argument
	// (In, Out).
	KStable K = 2
)

// Var returns the SAT variable encoding (a, label) under block size k.
// Var panics if label is Und and k is KStable, since stable has no Und
// variable — this is a programmer error (wrong template/k pairing), not a
// runtime condition callers should handle.
func Var(a int, label Label, k K) int {
	if label == UndLabel && k == KStable {
		panic("satvar: Und label has no variable under k=2 (stable) encoding")
	}
	return int(k)*(a-1) + int(label)
}

// In returns the In-variable for argument a under block size k.
func In(a int, k K) int {
	return Var(a, InLabel, k)
}

// Out returns the Out-variable for argument a under block size k.
func Out(a int, k K) int {
	return Var(a, OutLabel, k)
}

// Und returns the Und-variable for argument a under the complete-family
// (k=3) encoding.
func Und(a int) int {
	return Var(a, UndLabel, KComplete)
}

// Arg returns the argument value that SAT variable v belongs to, the
// inverse of Var: Arg(Var(a, L, k), k) == a for every valid (a, L).
func Arg(v int, k K) int {
	return (v-1)/int(k) + 1
}

// IsInVar reports whether v is the In-variable of some argument under
// block size k — i.e. whether v occupies the first slot of its block.
// This is how the enumeration engine recognizes In-positions in a raw SAT
// assignment without re-deriving the owning argument first.
func IsInVar(v int, k K) bool {
	return (v-1)%int(k) == 0
}

// Algebra is a memoized variable algebra for a fixed block size and
// argument count, built once per DIMACS payload. It trades the modest
// fixed allocation of three dense arrays for avoiding repeated block
// arithmetic in the per-argument clause-template loops, which call Var
// quadratically often in the number of arguments.
type Algebra struct {
	k      K
	inVars []int
	outVars []int
	undVars []int // empty when k == KStable
}

// NewAlgebra builds an Algebra for n arguments (1..n) under block size k.
func NewAlgebra(n int, k K) *Algebra {
	alg := &Algebra{
		k:      k,
		inVars: make([]int, n+1),
		outVars: make([]int, n+1),
	}
	if k == KComplete {
		alg.undVars = make([]int, n+1)
	}
	for a := 1; a <= n; a++ {
		alg.inVars[a] = Var(a, InLabel, k)
		alg.outVars[a] = Var(a, OutLabel, k)
		if k == KComplete {
			alg.undVars[a] = Var(a, UndLabel, k)
		}
	}
	return alg
}

// K returns the block size this algebra was built for.
func (alg *Algebra) K() K {
	return alg.k
}

// In returns the precomputed In-variable for argument a.
func (alg *Algebra) In(a int) int {
	return alg.inVars[a]
}

// Out returns the precomputed Out-variable for argument a.
func (alg *Algebra) Out(a int) int {
	return alg.outVars[a]
}

// Und returns the precomputed Und-variable for argument a. Only valid
// when alg.K() == KComplete.
func (alg *Algebra) Und(a int) int {
	return alg.undVars[a]
}

// NumVars returns k * n, the DIMACS header's variable count for this
// algebra (n is inferred from the table length built in NewAlgebra).
func (alg *Algebra) NumVars() int {
	return int(alg.k) * (len(alg.inVars) - 1)
}
