package extset

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/dungaf/framework"
)

// toBitSet packs an ArgSet into a bitset.BitSet indexed directly by
// argument value (bit 0 is unused, since argument values start at 1).
// BitSet grows on demand, so no prior size bound is needed.
func toBitSet(s framework.ArgSet) *bitset.BitSet {
	bs := new(bitset.BitSet)
	for v := range s {
		bs.Set(uint(v))
	}
	return bs
}

// Subset reports whether e is a subset of f. It packs both sides into
// bitset.BitSet and delegates to BitSet.IsSuperSet, the real-library
// analog of the reference implementation's bitmask-and-compare trick.
func Subset(e, f framework.ArgSet) bool {
	return toBitSet(f).IsSuperSet(toBitSet(e))
}

// StrictSubset reports whether e is a proper subset of f.
func StrictSubset(e, f framework.ArgSet) bool {
	return toBitSet(f).IsStrictSuperSet(toBitSet(e))
}

// Maximal returns every extension in sets that is not a strict subset of
// any other extension in sets.
func Maximal(sets []framework.ArgSet) []framework.ArgSet {
	var out []framework.ArgSet
	for i, e := range sets {
		dominated := false
		for j, f := range sets {
			if i == j {
				continue
			}
			if StrictSubset(e, f) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, e)
		}
	}
	return out
}

// Minimal returns the smallest extension in sets that is a subset of
// every other extension in sets, or (nil, false) if no such extension
// exists. Ties are broken by first occurrence after sorting by size.
// This is only used by grounded-variant experiments, not by the
// advertised task set.
func Minimal(sets []framework.ArgSet) (framework.ArgSet, bool) {
	if len(sets) == 0 {
		return nil, false
	}

	ordered := make([]framework.ArgSet, len(sets))
	copy(ordered, sets)
	// insertion sort by size ascending; these slices are small
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].Len() < ordered[j-1].Len(); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	for _, candidate := range ordered {
		isMinimal := true
		for _, other := range sets {
			if !Subset(candidate, other) {
				isMinimal = false
				break
			}
		}
		if isMinimal {
			return candidate, true
		}
	}
	return nil, false
}
