// Package strategy normalizes the interchangeable mining strategies behind
// a single contract and runs timed, failure-isolated comparisons of them.
package strategy

import (
	"context"
	"fmt"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/mining"
	"github.com/joshsymonds/basket-case/internal/model"
)

// Strategy names accepted by ByName.
const (
	NameBruteForce = "brute-force"
	NameApriori    = "apriori"
	NameFPGrowth   = "fp-growth"
)

// Strategy is one way of mining frequent itemsets. All strategies accept
// the same transaction set and minimum support and emit frequent itemset
// records with exact supports.
type Strategy interface {
	Name() string
	Mine(ctx context.Context, transactions []model.Transaction, minSupport float64) ([]model.FrequentItemset, error)
}

// BruteForce wraps the levelwise enumeration miner.
type BruteForce struct {
	// Progress, when non-nil, observes enumeration progress.
	Progress mining.ProgressFunc
}

// Name implements Strategy.
func (BruteForce) Name() string { return NameBruteForce }

// Mine implements Strategy.
func (b BruteForce) Mine(ctx context.Context, transactions []model.Transaction, minSupport float64) ([]model.FrequentItemset, error) {
	miner := mining.NewMinerWithConfig(mining.Config{Progress: b.Progress})
	return miner.MineBruteForce(ctx, transactions, minSupport)
}

// Apriori adapts the transaction set into the boolean presence matrix the
// Apriori implementation consumes and translates its output back into
// frequent itemset records.
type Apriori struct{}

// Name implements Strategy.
func (Apriori) Name() string { return NameApriori }

// Mine implements Strategy.
func (Apriori) Mine(ctx context.Context, transactions []model.Transaction, minSupport float64) ([]model.FrequentItemset, error) {
	if len(transactions) == 0 {
		return nil, common.ErrEmptyTransactions
	}
	return mining.Apriori(ctx, mining.BuildMatrix(transactions), minSupport)
}

// FPGrowth adapts the transaction set for the FP-Growth implementation,
// same seam as Apriori.
type FPGrowth struct{}

// Name implements Strategy.
func (FPGrowth) Name() string { return NameFPGrowth }

// Mine implements Strategy.
func (FPGrowth) Mine(ctx context.Context, transactions []model.Transaction, minSupport float64) ([]model.FrequentItemset, error) {
	if len(transactions) == 0 {
		return nil, common.ErrEmptyTransactions
	}
	return mining.FPGrowth(ctx, mining.BuildMatrix(transactions), minSupport)
}

// ByName returns the strategy for a user-supplied name. The progress
// observer only applies to the brute-force strategy.
func ByName(name string, progress mining.ProgressFunc) (Strategy, error) {
	switch name {
	case NameBruteForce:
		return BruteForce{Progress: progress}, nil
	case NameApriori:
		return Apriori{}, nil
	case NameFPGrowth:
		return FPGrowth{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s, %s, or %s)",
			common.ErrUnknownStrategy, name, NameBruteForce, NameApriori, NameFPGrowth)
	}
}

// All returns every strategy in comparison order.
func All(progress mining.ProgressFunc) []Strategy {
	return []Strategy{
		BruteForce{Progress: progress},
		Apriori{},
		FPGrowth{},
	}
}
