package automaton

import (
	"sort"

	"github.com/cnf/structhash"
)

// ItemSet is an unordered collection of distinct LR(1) items. Two item
// sets are equal iff they contain the same items; the canonical
// collection keys item sets by content, not by identity.
type ItemSet struct {
	byKey map[string]Item
}

// NewItemSet constructs an ItemSet containing the given items (duplicates
// collapse per the Item's structural key).
func NewItemSet(items ...Item) *ItemSet {
	s := &ItemSet{byKey: make(map[string]Item)}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts it into the set. No effect if an equal item is already
// present.
func (s *ItemSet) Add(it Item) {
	s.byKey[it.key()] = it
}

// Has reports whether an item equal to it is already in the set.
func (s *ItemSet) Has(it Item) bool {
	_, ok := s.byKey[it.key()]
	return ok
}

// Len returns the number of distinct items in the set.
func (s *ItemSet) Len() int {
	return len(s.byKey)
}

// Items returns the set's items in a deterministic (sorted-by-key) order.
// Sorting first is what makes Key a true content key rather than an
// order-dependent one.
func (s *ItemSet) Items() []Item {
	keys := make([]string, 0, len(s.byKey))
	for k := range s.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]Item, len(keys))
	for i, k := range keys {
		items[i] = s.byKey[k]
	}
	return items
}

// Key returns a stable content hash of the item set: a structhash digest
// of its sorted item keys. Two item sets with the same items always
// produce the same Key, regardless of insertion order -- this is the
// content-keyed canonicalization the builder's worklist dedupes states
// by.
func (s *ItemSet) Key() string {
	keys := make([]string, 0, len(s.byKey))
	for k := range s.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h, err := structhash.Hash(keys, 1)
	if err != nil {
		// structhash.Hash on a []string never fails.
		panic(err)
	}
	return h
}

// Equal reports whether s and o contain exactly the same items.
func (s *ItemSet) Equal(o *ItemSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for k := range s.byKey {
		if _, ok := o.byKey[k]; !ok {
			return false
		}
	}
	return true
}
