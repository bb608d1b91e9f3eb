package mining

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/model"
)

func supportByKey(frequent []model.FrequentItemset) map[string]float64 {
	out := make(map[string]float64, len(frequent))
	for _, f := range frequent {
		out[f.Items.Key()] = f.Support
	}
	return out
}

func TestMineBruteForceWorkedExample(t *testing.T) {
	miner := NewMiner()
	frequent, err := miner.MineBruteForce(context.Background(), exampleTransactions(), 0.6)
	require.NoError(t, err)

	// Levelwise lexicographic order over the universe
	// {beer, bread, diaper, eggs, milk}: singles first, then pairs.
	want := []model.FrequentItemset{
		{Items: model.NewItemset("beer"), Support: 0.6},
		{Items: model.NewItemset("bread"), Support: 0.8},
		{Items: model.NewItemset("diaper"), Support: 0.8},
		{Items: model.NewItemset("milk"), Support: 0.8},
		{Items: model.NewItemset("beer", "diaper"), Support: 0.6},
		{Items: model.NewItemset("bread", "diaper"), Support: 0.6},
		{Items: model.NewItemset("bread", "milk"), Support: 0.6},
		{Items: model.NewItemset("diaper", "milk"), Support: 0.6},
	}

	require.Len(t, frequent, len(want))
	for i, w := range want {
		assert.True(t, frequent[i].Items.Equal(w.Items), "position %d: got %v, want %v", i, frequent[i].Items, w.Items)
		assert.InDelta(t, w.Support, frequent[i].Support, 1e-9)
	}
}

func TestMineBruteForceZeroSupportEnumeratesPowerset(t *testing.T) {
	transactions := []model.Transaction{
		model.NewTransaction(0, "a", "b"),
		model.NewTransaction(1, "b", "c"),
	}

	miner := NewMiner()
	frequent, err := miner.MineBruteForce(context.Background(), transactions, 0)
	require.NoError(t, err)

	// Universe {a, b, c}: every non-empty subset exactly once, 2^3-1 = 7.
	require.Len(t, frequent, 7)

	seen := make(map[string]struct{})
	for _, f := range frequent {
		_, dup := seen[f.Items.Key()]
		require.False(t, dup, "itemset %v emitted twice", f.Items)
		seen[f.Items.Key()] = struct{}{}

		trueSupport, err := Support(transactions, f.Items)
		require.NoError(t, err)
		assert.InDelta(t, trueSupport, f.Support, 1e-9)
	}
}

func TestMineBruteForceInvalidInput(t *testing.T) {
	miner := NewMiner()

	tests := []struct {
		wantErr      error
		name         string
		transactions []model.Transaction
		minSupport   float64
	}{
		{
			name:         "empty transactions",
			transactions: nil,
			minSupport:   0.5,
			wantErr:      common.ErrEmptyTransactions,
		},
		{
			name:         "support above one",
			transactions: exampleTransactions(),
			minSupport:   1.1,
			wantErr:      common.ErrInvalidSupport,
		},
		{
			name:         "negative support",
			transactions: exampleTransactions(),
			minSupport:   -0.1,
			wantErr:      common.ErrInvalidSupport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := miner.MineBruteForce(context.Background(), tt.transactions, tt.minSupport)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMineBruteForceIdempotent(t *testing.T) {
	miner := NewMiner()

	first, err := miner.MineBruteForce(context.Background(), exampleTransactions(), 0.6)
	require.NoError(t, err)
	second, err := miner.MineBruteForce(context.Background(), exampleTransactions(), 0.6)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Items.Equal(second[i].Items))
		assert.Equal(t, first[i].Support, second[i].Support)
	}
}

func TestMineBruteForceProgress(t *testing.T) {
	var calls []int64
	var total int64
	miner := NewMinerWithConfig(Config{
		Progress: func(done, totalCandidates int64) {
			calls = append(calls, done)
			total = totalCandidates
		},
	})

	transactions := []model.Transaction{
		model.NewTransaction(0, "a", "b"),
		model.NewTransaction(1, "b", "c"),
	}
	withProgress, err := miner.MineBruteForce(context.Background(), transactions, 0)
	require.NoError(t, err)

	// Full enumeration of a 3-item universe covers all 7 candidates.
	assert.EqualValues(t, 7, total)
	require.NotEmpty(t, calls)
	assert.EqualValues(t, 7, calls[len(calls)-1])
	for i := 1; i < len(calls); i++ {
		assert.Greater(t, calls[i], calls[i-1], "progress went backwards")
	}

	// Progress reporting never changes results.
	plain, err := NewMiner().MineBruteForce(context.Background(), transactions, 0)
	require.NoError(t, err)
	require.Len(t, withProgress, len(plain))
	for i := range plain {
		assert.True(t, withProgress[i].Items.Equal(plain[i].Items))
		assert.Equal(t, withProgress[i].Support, plain[i].Support)
	}
}

func TestMineBruteForceCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	miner := NewMiner()
	_, err := miner.MineBruteForce(ctx, exampleTransactions(), 0.6)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTotalCombinations(t *testing.T) {
	assert.EqualValues(t, 1, totalCombinations(1))
	assert.EqualValues(t, 3, totalCombinations(2))
	assert.EqualValues(t, 31, totalCombinations(5))
	assert.EqualValues(t, 1023, totalCombinations(10))
}

func TestEachCombinationOrder(t *testing.T) {
	var got [][]string
	eachCombination([]string{"a", "b", "c", "d"}, 2, func(combo []string) {
		got = append(got, append([]string(nil), combo...))
	})

	want := [][]string{
		{"a", "b"}, {"a", "c"}, {"a", "d"},
		{"b", "c"}, {"b", "d"}, {"c", "d"},
	}
	assert.Equal(t, want, got)
}

func TestEachCombinationDegenerate(t *testing.T) {
	count := 0
	eachCombination([]string{"a", "b"}, 3, func([]string) { count++ })
	assert.Zero(t, count)

	eachCombination([]string{"a", "b"}, 0, func([]string) { count++ })
	assert.Zero(t, count)
}
