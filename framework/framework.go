package framework

import "fmt"

// Framework is an indexed abstract argumentation framework. It is built
// once by New and is immutable for the remainder of its lifetime: no
// method on Framework mutates its adjacency.
type Framework struct {
	args         []int
	nameOf       map[int]string
	valueOf      map[string]int
	attackersOf  map[int]ArgSet
	attackedBy   map[int]ArgSet
	attacks      []Attack
}

// New constructs a Framework from argument names and named attacks.
// Argument values are assigned densely, starting at 1, in the order the
// names are given. New rejects duplicate argument names and duplicate
// attacks; it does not otherwise validate names (whitespace/comma
// rejection and input-format diagnostics are the parser's job, not the
// Framework's — see the format package).
func New(names []string, attacks []Attack) (*Framework, error) {
	f := &Framework{
		args:        make([]int, 0, len(names)),
		nameOf:      make(map[int]string, len(names)),
		valueOf:     make(map[string]int, len(names)),
		attackersOf: make(map[int]ArgSet, len(names)),
		attackedBy:  make(map[int]ArgSet, len(names)),
		attacks:     make([]Attack, 0, len(attacks)),
	}

	for i, name := range names {
		if _, dup := f.valueOf[name]; dup {
			return nil, fmt.Errorf("New: argument %q: %w", name, ErrDuplicateArgument)
		}
		value := i + 1
		f.args = append(f.args, value)
		f.nameOf[value] = name
		f.valueOf[name] = value
		f.attackersOf[value] = NewArgSet()
		f.attackedBy[value] = NewArgSet()
	}

	seen := make(map[[2]int]struct{}, len(attacks))
	for _, att := range attacks {
		from, ok := f.valueOf[att.From]
		if !ok {
			return nil, fmt.Errorf("New: attack %q->%q: attacker %w", att.From, att.To, ErrUnknownArgument)
		}
		to, ok := f.valueOf[att.To]
		if !ok {
			return nil, fmt.Errorf("New: attack %q->%q: attacked %w", att.From, att.To, ErrUnknownArgument)
		}
		key := [2]int{from, to}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("New: attack %q->%q: %w", att.From, att.To, ErrDuplicateAttack)
		}
		seen[key] = struct{}{}

		f.attackedBy[from].Add(to)
		f.attackersOf[to].Add(from)
		f.attacks = append(f.attacks, att)
	}

	return f, nil
}

// Len returns the number of arguments, n.
func (f *Framework) Len() int {
	return len(f.args)
}

// Arguments returns the argument values 1..n in ascending order. The
// returned slice is owned by the caller.
func (f *Framework) Arguments() []int {
	out := make([]int, len(f.args))
	copy(out, f.args)
	return out
}

// Attacks returns the named attacks as declared, in declaration order.
func (f *Framework) Attacks() []Attack {
	out := make([]Attack, len(f.attacks))
	copy(out, f.attacks)
	return out
}

// NameOf returns the name of argument value a.
func (f *Framework) NameOf(a int) (string, bool) {
	name, ok := f.nameOf[a]
	return name, ok
}

// ValueOf returns the value assigned to argument name.
func (f *Framework) ValueOf(name string) (int, bool) {
	v, ok := f.valueOf[name]
	return v, ok
}

// AttackersOf returns the set of arguments that attack a. The returned
// ArgSet is a defensive copy; callers may mutate it freely.
func (f *Framework) AttackersOf(a int) ArgSet {
	return f.attackersOf[a].Clone()
}

// AttackedBy returns the set of arguments that a attacks.
func (f *Framework) AttackedBy(a int) ArgSet {
	return f.attackedBy[a].Clone()
}

// AttackersOfSet returns the union of AttackersOf(a) for every a in s.
func (f *Framework) AttackersOfSet(s ArgSet) ArgSet {
	out := NewArgSet()
	for a := range s {
		for b := range f.attackersOf[a] {
			out.Add(b)
		}
	}
	return out
}

// AttackedBySet returns the union of AttackedBy(a) for every a in s.
func (f *Framework) AttackedBySet(s ArgSet) ArgSet {
	out := NewArgSet()
	for a := range s {
		for b := range f.attackedBy[a] {
			out.Add(b)
		}
	}
	return out
}

// Characteristic computes the Dung characteristic operator
// F(S) = {a | AttackersOf(a) ⊆ AttackedBySet(S)}: every argument all of
// whose attackers are themselves attacked by some member of S. F is
// monotone, so repeated application from ∅ converges to the grounded
// extension in at most Len() steps.
func (f *Framework) Characteristic(s ArgSet) ArgSet {
	defended := f.AttackedBySet(s)
	out := NewArgSet()
	for _, a := range f.args {
		if f.attackersOf[a].IsSubsetOf(defended) {
			out.Add(a)
		}
	}
	return out
}
