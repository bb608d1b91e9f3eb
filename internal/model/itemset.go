// Package model defines the core domain types for association-rule mining.
package model

import (
	"sort"
	"strings"
)

// Item identifies a single purchasable product.
type Item = string

// Itemset is a set of items in canonical form: sorted and deduplicated.
// Treat an Itemset as immutable once constructed; all methods return new
// values rather than mutating the receiver.
type Itemset []Item

// NewItemset builds a canonical itemset from the given items, dropping
// duplicates and empty strings and sorting the result.
func NewItemset(items ...Item) Itemset {
	seen := make(map[Item]struct{}, len(items))
	out := make(Itemset, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of items in the set.
func (s Itemset) Len() int {
	return len(s)
}

// Key returns a stable string identity for the itemset, suitable for map
// keys and duplicate detection.
func (s Itemset) Key() string {
	return strings.Join(s, "\x1f")
}

// Contains reports whether the itemset includes the given item.
func (s Itemset) Contains(item Item) bool {
	i := sort.SearchStrings(s, item)
	return i < len(s) && s[i] == item
}

// SubsetOf reports whether every item in the set appears in other.
func (s Itemset) SubsetOf(other Itemset) bool {
	if len(s) > len(other) {
		return false
	}
	for _, item := range s {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Union returns a new canonical itemset containing the items of both sets.
func (s Itemset) Union(other Itemset) Itemset {
	combined := make([]Item, 0, len(s)+len(other))
	combined = append(combined, s...)
	combined = append(combined, other...)
	return NewItemset(combined...)
}

// Minus returns a new canonical itemset with the items of other removed.
func (s Itemset) Minus(other Itemset) Itemset {
	out := make(Itemset, 0, len(s))
	for _, item := range s {
		if !other.Contains(item) {
			out = append(out, item)
		}
	}
	return out
}

// Equal reports whether two canonical itemsets hold the same items.
func (s Itemset) Equal(other Itemset) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the itemset as {a, b, c}.
func (s Itemset) String() string {
	return "{" + strings.Join(s, ", ") + "}"
}
