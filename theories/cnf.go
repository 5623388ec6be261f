package theories

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dungaf/framework"
	"github.com/katalvlaran/dungaf/satvar"
)

// Payload is a mutable DIMACS CNF assembly: a header tracking (numVars,
// numClauses) and an append-only serialized clause body. Build populates a
// fresh Payload from a framework and a template set; AddClause appends a
// single additional clause (used by the enumeration engine's blocking
// clauses) and keeps the header in sync.
//
// Encoding is stable across repeated Build calls over the same inputs:
// templates run in declared order, and each template runs over arguments
// in ascending value order.
type Payload struct {
	numVars    int
	numClauses int
	body       strings.Builder
	alg        *satvar.Algebra
}

// Build assembles the full theory for f under the given template set,
// returning a ready-to-encode Payload.
func Build(f *framework.Framework, ts TemplateSet) *Payload {
	n := f.Len()
	alg := satvar.NewAlgebra(n, ts.K)

	p := &Payload{
		numVars: alg.NumVars(),
		alg:     alg,
	}

	args := f.Arguments()
	for _, tmpl := range ts.Templates {
		for _, a := range args {
			for _, clause := range tmpl(a, f, alg) {
				p.writeClause(clause)
			}
		}
	}

	return p
}

// AddClause appends one more clause to the payload, incrementing
// numClauses. A clause with no literals is a literal DIMACS contradiction
// ("0\n") rather than an error: the enumeration engine's blocking clause
// for a zero-argument framework's sole (empty) model is necessarily empty,
// and writing it is exactly how that case is forced UNSAT on the next
// solver call.
func (p *Payload) AddClause(clause Clause) error {
	p.writeClause(clause)
	return nil
}

func (p *Payload) writeClause(clause Clause) {
	for _, lit := range clause {
		p.body.WriteString(strconv.Itoa(lit))
		p.body.WriteByte(' ')
	}
	p.body.WriteString("0\n")
	p.numClauses++
}

// NumVars returns the current DIMACS variable count (k * n, fixed at
// Build time).
func (p *Payload) NumVars() int {
	return p.numVars
}

// NumClauses returns the current count of appended clauses.
func (p *Payload) NumClauses() int {
	return p.numClauses
}

// Algebra returns the variable algebra this payload was built with, so
// callers (the enumeration engine) can map a solver assignment back to
// arguments without rebuilding it.
func (p *Payload) Algebra() *satvar.Algebra {
	return p.alg
}

// Encode returns the full DIMACS CNF document: the "p cnf" header line
// followed by one " 0"-terminated clause per line.
func (p *Payload) Encode() []byte {
	var out strings.Builder
	out.Grow(p.body.Len() + 32)
	fmt.Fprintf(&out, "p cnf %d %d\n", p.numVars, p.numClauses)
	out.WriteString(p.body.String())
	return []byte(out.String())
}
