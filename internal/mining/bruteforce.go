package mining

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/model"
)

// ProgressFunc observes enumeration progress. It is called after each
// candidate combination is evaluated with the number of combinations
// processed so far and the total across all size levels. Observers must
// not influence mining results.
type ProgressFunc func(done, total int64)

// Miner mines frequent itemsets by brute-force levelwise enumeration.
type Miner struct {
	progress ProgressFunc
}

// Config holds configuration options for the miner.
type Config struct {
	// Progress, when non-nil, is notified after every evaluated candidate.
	Progress ProgressFunc
}

// NewMiner creates a miner with no progress reporting.
func NewMiner() *Miner {
	return NewMinerWithConfig(Config{})
}

// NewMinerWithConfig creates a miner with custom configuration.
func NewMinerWithConfig(config Config) *Miner {
	return &Miner{progress: config.Progress}
}

// MineBruteForce enumerates itemsets of increasing size over the sorted
// universe of distinct items, keeping those with support >= minSupport.
// A size level that yields no frequent itemset ends the search: by
// anti-monotonicity no larger itemset can be frequent. With minSupport 0
// every combination qualifies and the search runs through every level up
// to the universe size.
//
// Cancellation is checked once per size level; a cancelled context
// returns ctx.Err with any partial results discarded.
func (m *Miner) MineBruteForce(ctx context.Context, transactions []model.Transaction, minSupport float64) ([]model.FrequentItemset, error) {
	if len(transactions) == 0 {
		return nil, common.ErrEmptyTransactions
	}
	if minSupport < 0 || minSupport > 1 {
		return nil, fmt.Errorf("%w: got %v", common.ErrInvalidSupport, minSupport)
	}

	universe := model.Universe(transactions)
	total := totalCombinations(len(universe))
	done := int64(0)

	slog.Debug("starting brute-force mining",
		"transactions", len(transactions),
		"universe", len(universe),
		"min_support", minSupport)

	var frequent []model.FrequentItemset
	for size := 1; size <= len(universe); size++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		levelStart := len(frequent)
		eachCombination(universe, size, func(candidate []model.Item) {
			support := countSupport(transactions, candidate)
			done++
			if support >= minSupport {
				items := make(model.Itemset, size)
				copy(items, candidate)
				frequent = append(frequent, model.FrequentItemset{Items: items, Support: support})
			}
			if m.progress != nil {
				m.progress(done, total)
			}
		})

		if len(frequent) == levelStart {
			break
		}
	}

	slog.Debug("brute-force mining finished",
		"frequent_itemsets", len(frequent),
		"candidates_evaluated", done)
	return frequent, nil
}
