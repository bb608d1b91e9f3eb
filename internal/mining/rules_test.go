package mining

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/model"
)

func TestGenerateRulesWorkedExample(t *testing.T) {
	transactions := exampleTransactions()
	frequent := []model.FrequentItemset{
		{Items: model.NewItemset("bread", "milk"), Support: 0.6},
	}

	findRule := func(rules []model.Rule, antecedent, consequent model.Itemset) (model.Rule, bool) {
		for _, r := range rules {
			if r.Antecedent.Equal(antecedent) && r.Consequent.Equal(consequent) {
				return r, true
			}
		}
		return model.Rule{}, false
	}

	// support(bread) = 0.8, so bread -> milk has confidence 0.6/0.8 = 0.75.
	rules, err := GenerateRules(frequent, transactions, 0.7)
	require.NoError(t, err)
	rule, ok := findRule(rules, model.NewItemset("bread"), model.NewItemset("milk"))
	require.True(t, ok, "bread -> milk missing at confidence 0.7")
	assert.InDelta(t, 0.75, rule.Confidence, 1e-9)
	assert.InDelta(t, 0.6, rule.Support, 1e-9)

	// The same rule is dropped at confidence 0.8.
	rules, err = GenerateRules(frequent, transactions, 0.8)
	require.NoError(t, err)
	_, ok = findRule(rules, model.NewItemset("bread"), model.NewItemset("milk"))
	assert.False(t, ok, "bread -> milk should be dropped at confidence 0.8")
}

func TestGenerateRulesInvariants(t *testing.T) {
	transactions := exampleTransactions()
	miner := NewMiner()
	frequent, err := miner.MineBruteForce(context.Background(), transactions, 0.6)
	require.NoError(t, err)

	frequentKeys := make(map[string]struct{}, len(frequent))
	for _, f := range frequent {
		frequentKeys[f.Items.Key()] = struct{}{}
	}

	rules, err := GenerateRules(frequent, transactions, 0)
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	for _, rule := range rules {
		// Antecedent and consequent are disjoint and non-empty.
		assert.NotZero(t, rule.Antecedent.Len())
		assert.NotZero(t, rule.Consequent.Len())
		for _, item := range rule.Antecedent {
			assert.False(t, rule.Consequent.Contains(item), "rule %s has overlapping sides", rule)
		}

		// Their union is exactly one of the frequent itemsets.
		union := rule.Antecedent.Union(rule.Consequent)
		_, ok := frequentKeys[union.Key()]
		assert.True(t, ok, "rule %s does not reconstruct a frequent itemset", rule)

		assert.GreaterOrEqual(t, rule.Confidence, 0.0)
		assert.LessOrEqual(t, rule.Confidence, 1.0+1e-9)
	}
}

func TestGenerateRulesDeterministic(t *testing.T) {
	transactions := exampleTransactions()
	miner := NewMiner()
	frequent, err := miner.MineBruteForce(context.Background(), transactions, 0.6)
	require.NoError(t, err)

	first, err := GenerateRules(frequent, transactions, 0.5)
	require.NoError(t, err)
	second, err := GenerateRules(frequent, transactions, 0.5)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Antecedent.Equal(second[i].Antecedent))
		assert.True(t, first[i].Consequent.Equal(second[i].Consequent))
		assert.Equal(t, first[i].Confidence, second[i].Confidence)
	}
}

func TestGenerateRulesSkipsSingleItemItemsets(t *testing.T) {
	frequent := []model.FrequentItemset{
		{Items: model.NewItemset("bread"), Support: 0.8},
	}

	rules, err := GenerateRules(frequent, exampleTransactions(), 0)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestGenerateRulesSkipsZeroSupportAntecedent(t *testing.T) {
	// A frequent itemset whose items never co-occur with the data can only
	// come from a corrupted record; its rules are skipped, not fatal.
	transactions := []model.Transaction{
		model.NewTransaction(0, "bread"),
	}
	frequent := []model.FrequentItemset{
		{Items: model.NewItemset("caviar", "truffle"), Support: 0.5},
	}

	rules, err := GenerateRules(frequent, transactions, 0)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestGenerateRulesInvalidInput(t *testing.T) {
	frequent := []model.FrequentItemset{
		{Items: model.NewItemset("bread", "milk"), Support: 0.6},
	}

	_, err := GenerateRules(frequent, nil, 0.5)
	require.ErrorIs(t, err, common.ErrEmptyTransactions)

	_, err = GenerateRules(frequent, exampleTransactions(), 1.5)
	require.ErrorIs(t, err, common.ErrInvalidConfidence)

	_, err = GenerateRules(frequent, exampleTransactions(), -0.5)
	require.ErrorIs(t, err, common.ErrInvalidConfidence)
}
