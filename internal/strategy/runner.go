package strategy

import (
	"context"
	"log/slog"
	"time"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/mining"
	"github.com/joshsymonds/basket-case/internal/model"
)

// Outcome is the tagged result of one strategy run: either Frequent and
// Rules are populated, or Err records why the run failed. A failed
// strategy never aborts the others.
type Outcome struct {
	Err      error
	Strategy string
	Frequent []model.FrequentItemset
	Rules    []model.Rule
	Elapsed  time.Duration
}

// Failed reports whether the run produced an error instead of results.
func (o Outcome) Failed() bool { return o.Err != nil }

// Runner executes a fixed set of strategies over one transaction set.
type Runner struct {
	strategies []Strategy
}

// NewRunner creates a runner over the given strategies, compared in order.
func NewRunner(strategies ...Strategy) *Runner {
	return &Runner{strategies: strategies}
}

// Compare runs every strategy, timing each full run (mining plus rule
// generation), and returns one Outcome per strategy in registration
// order. Per-strategy failures are captured in the outcome; only an empty
// transaction set or a cancelled context fails the comparison itself.
func (r *Runner) Compare(ctx context.Context, transactions []model.Transaction, minSupport, minConfidence float64) ([]Outcome, error) {
	if len(transactions) == 0 {
		return nil, common.ErrEmptyTransactions
	}

	outcomes := make([]Outcome, 0, len(r.strategies))
	for _, s := range r.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		slog.Info("running strategy", "strategy", s.Name())
		start := time.Now()
		frequent, err := s.Mine(ctx, transactions, minSupport)
		if err != nil {
			outcomes = append(outcomes, Outcome{Strategy: s.Name(), Elapsed: time.Since(start), Err: err})
			slog.Warn("strategy failed", "strategy", s.Name(), "error", err)
			continue
		}

		rules, err := mining.GenerateRules(frequent, transactions, minConfidence)
		elapsed := time.Since(start)
		if err != nil {
			outcomes = append(outcomes, Outcome{Strategy: s.Name(), Elapsed: elapsed, Err: err})
			slog.Warn("rule generation failed", "strategy", s.Name(), "error", err)
			continue
		}

		outcomes = append(outcomes, Outcome{
			Strategy: s.Name(),
			Frequent: frequent,
			Rules:    rules,
			Elapsed:  elapsed,
		})
		slog.Info("strategy finished",
			"strategy", s.Name(),
			"frequent_itemsets", len(frequent),
			"rules", len(rules),
			"elapsed", elapsed)
	}
	return outcomes, nil
}

// Fastest returns the quickest successful outcome, or false when every
// strategy failed.
func Fastest(outcomes []Outcome) (Outcome, bool) {
	var best Outcome
	found := false
	for _, o := range outcomes {
		if o.Failed() {
			continue
		}
		if !found || o.Elapsed < best.Elapsed {
			best = o
			found = true
		}
	}
	return best, found
}
