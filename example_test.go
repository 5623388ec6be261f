package dungaf_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/dungaf/format"
	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/iccma"
	"github.com/katalvlaran/dungaf/semantics"
)

// Example_groundedThreeChain solves SE-GR over the three-argument chain
// a -> b -> c directly, without a SAT solver: a is unattacked and in, b is
// attacked by an in-argument and out, c is defended by a and in.
func Example_groundedThreeChain() {
	names, attacks, err := format.ParseTGF(strings.NewReader("a\nb\nc\n#\na b\nb c\n"), true)
	if err != nil {
		panic(err)
	}

	af, err := framework.New(names, attacks)
	if err != nil {
		panic(err)
	}

	ext := semantics.GroundedExtension(af)
	if err := iccma.WriteExtension(os.Stdout, af, ext, true); err != nil {
		panic(err)
	}
	// Output: [a,c]
}

// Example_groundedTwoCycle shows that a mutual attack defends neither
// argument: the grounded extension is empty, and DC-GR rejects both.
func Example_groundedTwoCycle() {
	names, attacks, err := format.ParseAPX(strings.NewReader("arg(a).\narg(b).\natt(a,b).\natt(b,a).\n"), true)
	if err != nil {
		panic(err)
	}

	af, err := framework.New(names, attacks)
	if err != nil {
		panic(err)
	}

	av, _ := af.ValueOf("a")
	if err := iccma.WriteDecision(os.Stdout, semantics.GroundedCredulous(af, av)); err != nil {
		panic(err)
	}
	// Output: NO
}
