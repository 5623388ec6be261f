// Package extset provides subset testing and maximality/minimality
// filters over sets of extensions.
//
// Extensions are represented both as a framework.ArgSet (for membership
// tests and output formatting) and, for the subset test itself, as a
// github.com/bits-and-blooms/bitset.BitSet — the "explicit bitset type
// with an is_subset_of primitive" the design notes call for once argument
// values no longer comfortably fit a single machine word's bitmask.
package extset
