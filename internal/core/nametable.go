package core

import (
	"github.com/cespare/xxhash/v2"
)

// NameTable is the ordered, 1-indexed table of interned element/attribute
// names. Index 0 is reserved; on-disk values store index+1, with
// 0 meaning "placeholder".
//
// Each entry also carries its xxhash so callers with an external identity
// (e.g. a hash recovered from another segment of the container) can do an
// O(1) reverse lookup without a linear scan of ByIndex — an optional field
// the container format leaves to the reader to provide.
type NameTable struct {
	ByIndex []string
	byHash  map[uint64][]int // xxhash(name) -> indices sharing that hash
	byName  map[string]int   // name -> first index, built lazily on demand
}

// NewNameTable builds a NameTable over names, in on-disk order (names[0]
// corresponds to external index 1).
func NewNameTable(names []string) *NameTable {
	nt := &NameTable{ByIndex: names, byHash: make(map[uint64][]int, len(names))}
	for i, n := range names {
		h := xxhash.Sum64String(n)
		nt.byHash[h] = append(nt.byHash[h], i)
	}
	return nt
}

// Len returns the number of interned names.
func (nt *NameTable) Len() int {
	return len(nt.ByIndex)
}

// Lookup returns the name at zero-based index i, and whether i was in range.
func (nt *NameTable) Lookup(i int) (string, bool) {
	if i < 0 || i >= len(nt.ByIndex) {
		return "", false
	}
	return nt.ByIndex[i], true
}

// LookupByHash returns every zero-based index whose name hashes to h. Ties
// (distinct names sharing an xxhash bucket) are resolved by the caller
// comparing the returned names; collisions are expected to be rare but are
// not assumed impossible.
func (nt *NameTable) LookupByHash(h uint64) []int {
	return nt.byHash[h]
}

// LookupByName returns the zero-based index of name, and whether it was
// found. The reverse map is built on first use.
func (nt *NameTable) LookupByName(name string) (int, bool) {
	if nt.byName == nil {
		nt.byName = make(map[string]int, len(nt.ByIndex))
		for i, n := range nt.ByIndex {
			if _, exists := nt.byName[n]; !exists {
				nt.byName[n] = i
			}
		}
	}
	i, ok := nt.byName[name]
	return i, ok
}
