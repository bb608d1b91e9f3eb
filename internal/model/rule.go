package model

import "fmt"

// FrequentItemset pairs an itemset with its exact support: the fraction of
// transactions containing the itemset.
type FrequentItemset struct {
	Items   Itemset
	Support float64
}

// Rule is an association rule derived from a frequent itemset. Antecedent
// and Consequent are disjoint, and their union is the originating frequent
// itemset. Support is the support of that union; Confidence is
// support(union) / support(antecedent).
type Rule struct {
	Antecedent Itemset
	Consequent Itemset
	Confidence float64
	Support    float64
}

// String renders the rule as {a} -> {b}.
func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Antecedent, r.Consequent)
}
