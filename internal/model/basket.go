package model

import "time"

// Transaction is one market basket: the distinct items purchased together.
type Transaction struct {
	ID    int
	Items Itemset
}

// NewTransaction builds a transaction with its items in canonical form.
func NewTransaction(id int, items ...Item) Transaction {
	return Transaction{ID: id, Items: NewItemset(items...)}
}

// Dataset is a named, read-only collection of transactions for one store.
type Dataset struct {
	ImportedAt   time.Time
	Name         string
	Source       string
	Transactions []Transaction
}

// ItemUniverse returns the sorted distinct items appearing in any
// transaction of the dataset.
func (d *Dataset) ItemUniverse() Itemset {
	return Universe(d.Transactions)
}

// Universe returns the sorted distinct items across all transactions.
func Universe(transactions []Transaction) Itemset {
	all := make([]Item, 0, len(transactions)*4)
	for _, tx := range transactions {
		all = append(all, tx.Items...)
	}
	return NewItemset(all...)
}
