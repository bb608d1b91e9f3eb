package mining

import (
	"strconv"
	"strings"

	"github.com/joshsymonds/basket-case/internal/model"
)

// Matrix is a boolean item-presence table: one row per transaction, one
// column per distinct item, columns ordered by the sorted item universe.
// This is the input shape the Apriori and FP-Growth strategies consume.
type Matrix struct {
	Columns model.Itemset
	Rows    [][]bool
}

// BuildMatrix converts a transaction set into its presence matrix.
func BuildMatrix(transactions []model.Transaction) Matrix {
	universe := model.Universe(transactions)
	index := make(map[model.Item]int, len(universe))
	for i, item := range universe {
		index[item] = i
	}

	rows := make([][]bool, len(transactions))
	for r, tx := range transactions {
		row := make([]bool, len(universe))
		for _, item := range tx.Items {
			row[index[item]] = true
		}
		rows[r] = row
	}
	return Matrix{Columns: universe, Rows: rows}
}

// colSupport returns the fraction of rows with every given column set.
func (m Matrix) colSupport(cols []int) float64 {
	count := 0
rows:
	for _, row := range m.Rows {
		for _, c := range cols {
			if !row[c] {
				continue rows
			}
		}
		count++
	}
	return float64(count) / float64(len(m.Rows))
}

// itemsFor maps column indices back to a canonical itemset.
func (m Matrix) itemsFor(cols []int) model.Itemset {
	items := make([]model.Item, len(cols))
	for i, c := range cols {
		items[i] = m.Columns[c]
	}
	return model.NewItemset(items...)
}

func colsKey(cols []int) string {
	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}
