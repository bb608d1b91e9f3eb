package mining

import (
	"fmt"
	"log/slog"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/model"
)

// GenerateRules derives association rules from frequent itemsets. Every
// frequent itemset of size > 1 is split into each possible antecedent /
// consequent pair, taking antecedents of every size from 1 to size-1 in
// combination order over the itemset itself. A rule is kept when its
// confidence, support(itemset) / support(antecedent), meets minConfidence.
//
// Antecedent support is always recomputed with a full scan of the
// transaction set rather than reused from miner output; this keeps rule
// generation independent of how the frequent itemsets were produced.
// Output order is deterministic: itemset discovery order, then antecedent
// size, then combination order.
func GenerateRules(frequent []model.FrequentItemset, transactions []model.Transaction, minConfidence float64) ([]model.Rule, error) {
	if len(transactions) == 0 {
		return nil, common.ErrEmptyTransactions
	}
	if minConfidence < 0 || minConfidence > 1 {
		return nil, fmt.Errorf("%w: got %v", common.ErrInvalidConfidence, minConfidence)
	}

	var rules []model.Rule
	for _, record := range frequent {
		if record.Items.Len() <= 1 {
			continue
		}
		for size := 1; size < record.Items.Len(); size++ {
			eachCombination(record.Items, size, func(candidate []model.Item) {
				antecedent := make(model.Itemset, size)
				copy(antecedent, candidate)
				consequent := record.Items.Minus(antecedent)

				antecedentSupport := countSupport(transactions, antecedent)
				if antecedentSupport == 0 {
					// A zero-support antecedent can only come from a data
					// inconsistency; confidence is undefined, skip the rule.
					slog.Warn("skipping rule with zero-support antecedent",
						"antecedent", antecedent.String(),
						"itemset", record.Items.String())
					return
				}

				confidence := record.Support / antecedentSupport
				if confidence >= minConfidence {
					rules = append(rules, model.Rule{
						Antecedent: antecedent,
						Consequent: consequent,
						Confidence: confidence,
						Support:    record.Support,
					})
				}
			})
		}
	}
	return rules, nil
}
