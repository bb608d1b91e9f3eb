package mining

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/model"
)

// FPGrowth mines frequent itemsets from a presence matrix by building an
// FP-tree and recursively mining conditional trees, so no candidate set is
// ever materialized. Output carries the same exact supports as the other
// strategies; ordering differs but is deterministic.
func FPGrowth(ctx context.Context, matrix Matrix, minSupport float64) ([]model.FrequentItemset, error) {
	if len(matrix.Rows) == 0 {
		return nil, common.ErrEmptyTransactions
	}
	if minSupport <= 0 || minSupport > 1 {
		// Itemsets absent from every transaction never enter the tree, so a
		// zero threshold cannot be honored here; require a positive support.
		return nil, fmt.Errorf("%w: fp-growth requires support in (0, 1], got %v", common.ErrInvalidSupport, minSupport)
	}

	total := len(matrix.Rows)
	counts := make([]int, len(matrix.Columns))
	for _, row := range matrix.Rows {
		for c, present := range row {
			if present {
				counts[c]++
			}
		}
	}

	// Weighted itemsets: each matrix row is a path with weight 1.
	paths := make([]weightedPath, 0, total)
	for _, row := range matrix.Rows {
		var cols []int
		for c, present := range row {
			if present {
				cols = append(cols, c)
			}
		}
		paths = append(paths, weightedPath{cols: cols, weight: 1})
	}

	miner := &fpMiner{total: total, minSupport: minSupport}
	if err := miner.mine(ctx, paths, counts, nil); err != nil {
		return nil, err
	}

	results := make([]model.FrequentItemset, 0, len(miner.found))
	for _, f := range miner.found {
		results = append(results, model.FrequentItemset{
			Items:   matrix.itemsFor(f.cols),
			Support: float64(f.count) / float64(total),
		})
	}
	slog.Debug("fp-growth finished", "frequent_itemsets", len(results))
	return results, nil
}

type weightedPath struct {
	cols   []int
	weight int
}

type foundItemset struct {
	cols  []int
	count int
}

type fpNode struct {
	parent   *fpNode
	children map[int]*fpNode
	item     int
	count    int
}

type fpMiner struct {
	found      []foundItemset
	total      int
	minSupport float64
}

func (m *fpMiner) frequent(count int) bool {
	return float64(count)/float64(m.total) >= m.minSupport
}

// mine builds the FP-tree for the given weighted paths and recurses into
// the conditional pattern base of each frequent item. suffix holds the
// columns conditioned on so far, in discovery order.
func (m *fpMiner) mine(ctx context.Context, paths []weightedPath, counts []int, suffix []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Rank frequent items by descending count so shared prefixes compress
	// into shared tree paths; ties break on column order.
	type rankedItem struct {
		col   int
		count int
	}
	var ranked []rankedItem
	for col, count := range counts {
		if count > 0 && m.frequent(count) {
			ranked = append(ranked, rankedItem{col: col, count: count})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].col < ranked[j].col
	})

	rank := make(map[int]int, len(ranked))
	for i, ri := range ranked {
		rank[ri.col] = i
	}

	root := &fpNode{item: -1, children: make(map[int]*fpNode)}
	headers := make(map[int][]*fpNode, len(ranked))
	for _, path := range paths {
		filtered := make([]int, 0, len(path.cols))
		for _, col := range path.cols {
			if _, ok := rank[col]; ok {
				filtered = append(filtered, col)
			}
		}
		sort.Slice(filtered, func(i, j int) bool { return rank[filtered[i]] < rank[filtered[j]] })

		node := root
		for _, col := range filtered {
			child, ok := node.children[col]
			if !ok {
				child = &fpNode{parent: node, children: make(map[int]*fpNode), item: col}
				node.children[col] = child
				headers[col] = append(headers[col], child)
			}
			child.count += path.weight
			node = child
		}
	}

	// Mine items least-frequent first: each becomes a new frequent itemset
	// with the current suffix, then contributes a conditional tree.
	for i := len(ranked) - 1; i >= 0; i-- {
		col := ranked[i].col
		itemset := make([]int, 0, len(suffix)+1)
		itemset = append(itemset, suffix...)
		itemset = append(itemset, col)
		sort.Ints(itemset)
		m.found = append(m.found, foundItemset{cols: itemset, count: ranked[i].count})

		var conditional []weightedPath
		conditionalCounts := make([]int, len(counts))
		for _, node := range headers[col] {
			var prefix []int
			for p := node.parent; p != nil && p.item >= 0; p = p.parent {
				prefix = append(prefix, p.item)
			}
			if len(prefix) == 0 {
				continue
			}
			conditional = append(conditional, weightedPath{cols: prefix, weight: node.count})
			for _, c := range prefix {
				conditionalCounts[c] += node.count
			}
		}
		if len(conditional) == 0 {
			continue
		}
		if err := m.mine(ctx, conditional, conditionalCounts, itemset); err != nil {
			return err
		}
	}
	return nil
}
