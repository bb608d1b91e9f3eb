package mining

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/model"
)

// Apriori mines frequent itemsets from a presence matrix with levelwise
// candidate generation: frequent (k-1)-itemsets sharing a (k-2)-prefix are
// joined into k-candidates, candidates with any infrequent subset are
// pruned before counting, and the search stops when a level produces
// nothing. Supports are exact fractions over the matrix rows.
func Apriori(ctx context.Context, matrix Matrix, minSupport float64) ([]model.FrequentItemset, error) {
	if len(matrix.Rows) == 0 {
		return nil, common.ErrEmptyTransactions
	}
	if minSupport <= 0 || minSupport > 1 {
		// A zero threshold would degenerate to powerset enumeration;
		// levelwise candidate generation requires a positive support.
		return nil, fmt.Errorf("%w: apriori requires support in (0, 1], got %v", common.ErrInvalidSupport, minSupport)
	}

	var results []model.FrequentItemset
	var current [][]int
	for c := range matrix.Columns {
		support := matrix.colSupport([]int{c})
		if support >= minSupport {
			cols := []int{c}
			current = append(current, cols)
			results = append(results, model.FrequentItemset{Items: matrix.itemsFor(cols), Support: support})
		}
	}

	for len(current) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frequent := make(map[string]struct{}, len(current))
		for _, cols := range current {
			frequent[colsKey(cols)] = struct{}{}
		}

		var next [][]int
		for i := 0; i < len(current); i++ {
			for j := i + 1; j < len(current); j++ {
				candidate, ok := joinOnPrefix(current[i], current[j])
				if !ok {
					// Level sets are lexicographically ordered, so no later
					// j shares this prefix either.
					break
				}
				if hasInfrequentSubset(candidate, frequent) {
					continue
				}
				support := matrix.colSupport(candidate)
				if support >= minSupport {
					next = append(next, candidate)
					results = append(results, model.FrequentItemset{Items: matrix.itemsFor(candidate), Support: support})
				}
			}
		}
		current = next
	}

	slog.Debug("apriori finished", "frequent_itemsets", len(results))
	return results, nil
}

// joinOnPrefix merges two sorted k-itemsets that agree on their first k-1
// columns into a (k+1)-candidate.
func joinOnPrefix(a, b []int) ([]int, bool) {
	k := len(a)
	for i := 0; i < k-1; i++ {
		if a[i] != b[i] {
			return nil, false
		}
	}
	if a[k-1] >= b[k-1] {
		return nil, false
	}
	candidate := make([]int, k+1)
	copy(candidate, a)
	candidate[k] = b[k-1]
	return candidate, true
}

// hasInfrequentSubset reports whether any (k-1)-subset of candidate is
// missing from the frequent set of the previous level.
func hasInfrequentSubset(candidate []int, frequent map[string]struct{}) bool {
	if len(candidate) <= 2 {
		return false
	}
	subset := make([]int, 0, len(candidate)-1)
	for drop := range candidate {
		subset = subset[:0]
		for i, c := range candidate {
			if i != drop {
				subset = append(subset, c)
			}
		}
		if _, ok := frequent[colsKey(subset)]; !ok {
			return true
		}
	}
	return false
}
