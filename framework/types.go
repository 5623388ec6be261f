package framework

import "sort"

// Attack is a named attacker→attacked pair as read from input. Framework
// construction resolves both names to their Framework-internal values.
type Attack struct {
	From string
	To   string
}

// ArgSet is a set of argument values. A nil ArgSet reads as empty, but Add
// panics on it; build sets with NewArgSet. ArgSet is intentionally a plain
// map so that the equality check ending a fixed-point loop over
// Characteristic is a simple value comparison via Equal, not pointer
// identity.
type ArgSet map[int]struct{}

// NewArgSet builds an ArgSet from the given values, deduplicating.
func NewArgSet(values ...int) ArgSet {
	s := make(ArgSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is a member of s.
func (s ArgSet) Contains(v int) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v into s, mutating the receiver.
func (s ArgSet) Add(v int) {
	s[v] = struct{}{}
}

// Len returns the number of members.
func (s ArgSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order. The result is a fresh
// slice; callers may mutate it freely.
func (s ArgSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Equal reports whether s and other contain exactly the same values.
func (s ArgSet) Equal(other ArgSet) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s ArgSet) Clone() ArgSet {
	out := make(ArgSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Union returns a new ArgSet containing every value in s or other.
func (s ArgSet) Union(other ArgSet) ArgSet {
	out := s.Clone()
	for v := range other {
		out[v] = struct{}{}
	}
	return out
}

// IsSubsetOf reports whether every member of s is also a member of other.
func (s ArgSet) IsSubsetOf(other ArgSet) bool {
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}
