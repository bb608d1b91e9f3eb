// Package mining implements the frequent-itemset and association-rule
// engine: exact support calculation, the brute-force levelwise miner, the
// Apriori and FP-Growth strategies, and rule generation.
package mining

import (
	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/model"
)

// Support returns the exact fraction of transactions containing itemset.
// The empty itemset has support 1.0 by convention. An empty transaction
// set is an error: support is undefined without transactions.
func Support(transactions []model.Transaction, itemset model.Itemset) (float64, error) {
	if len(transactions) == 0 {
		return 0, common.ErrEmptyTransactions
	}
	return countSupport(transactions, itemset), nil
}

// countSupport assumes a non-empty transaction set.
func countSupport(transactions []model.Transaction, itemset model.Itemset) float64 {
	count := 0
	for _, tx := range transactions {
		if itemset.SubsetOf(tx.Items) {
			count++
		}
	}
	return float64(count) / float64(len(transactions))
}
