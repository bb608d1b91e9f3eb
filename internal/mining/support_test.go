package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/model"
)

// exampleTransactions is the worked market-basket example used across the
// mining tests.
func exampleTransactions() []model.Transaction {
	return []model.Transaction{
		model.NewTransaction(0, "bread", "milk"),
		model.NewTransaction(1, "bread", "diaper", "beer"),
		model.NewTransaction(2, "milk", "diaper", "beer", "eggs"),
		model.NewTransaction(3, "bread", "milk", "diaper", "beer"),
		model.NewTransaction(4, "bread", "milk", "diaper"),
	}
}

func TestSupport(t *testing.T) {
	transactions := exampleTransactions()

	tests := []struct {
		name    string
		itemset model.Itemset
		want    float64
	}{
		{name: "single item", itemset: model.NewItemset("bread"), want: 0.8},
		{name: "pair", itemset: model.NewItemset("bread", "milk"), want: 0.6},
		{name: "triple", itemset: model.NewItemset("bread", "milk", "diaper"), want: 0.4},
		{name: "absent item", itemset: model.NewItemset("caviar"), want: 0},
		{name: "empty itemset has support 1", itemset: model.NewItemset(), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Support(transactions, tt.itemset)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestSupportEmptyTransactions(t *testing.T) {
	_, err := Support(nil, model.NewItemset("bread"))
	require.ErrorIs(t, err, common.ErrEmptyTransactions)
}

func TestSupportIgnoresIntraTransactionDuplicates(t *testing.T) {
	transactions := []model.Transaction{
		model.NewTransaction(0, "bread", "bread", "bread"),
		model.NewTransaction(1, "milk"),
	}

	got, err := Support(transactions, model.NewItemset("bread"))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestSupportAntiMonotonicity(t *testing.T) {
	transactions := exampleTransactions()

	// support(A) >= support(B) for every A that is a subset of B.
	chain := []model.Itemset{
		model.NewItemset("diaper"),
		model.NewItemset("diaper", "milk"),
		model.NewItemset("beer", "diaper", "milk"),
		model.NewItemset("beer", "diaper", "eggs", "milk"),
	}

	previous := 1.0
	for _, itemset := range chain {
		got, err := Support(transactions, itemset)
		require.NoError(t, err)
		assert.LessOrEqual(t, got, previous, "support grew for superset %v", itemset)
		previous = got
	}
}
