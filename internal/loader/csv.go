// Package loader reads store transaction datasets from CSV files.
package loader

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/model"
)

// Item lookup files use these header names.
const (
	itemNumberColumn = "Item #"
	itemNameColumn   = "Item Name"
)

// LoadCSV reads a transaction CSV and returns its transactions. Cells may
// hold single items or comma-separated item lists; blanks are dropped,
// per-transaction duplicates are removed, and rows with no items are
// skipped. itemsPath may name a lookup CSV with "Item #" and "Item Name"
// columns; when present, item numbers in transactions are replaced by
// their names.
func LoadCSV(transactionsPath, itemsPath string) ([]model.Transaction, error) {
	var itemNames map[string]string
	if itemsPath != "" {
		var err error
		itemNames, err = loadItemNames(itemsPath)
		if err != nil {
			return nil, err
		}
	}

	records, err := readCSV(transactionsPath)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: %w", transactionsPath, common.ErrEmptyTransactions)
	}

	var transactions []model.Transaction
	for _, row := range records[1:] { // skip header
		var items []model.Item
		for _, cell := range row {
			for _, token := range strings.Split(cell, ",") {
				token = strings.TrimSpace(token)
				if token == "" {
					continue
				}
				if name, ok := itemNames[token]; ok {
					token = name
				}
				items = append(items, token)
			}
		}
		if len(items) == 0 {
			continue
		}
		transactions = append(transactions, model.NewTransaction(len(transactions), items...))
	}

	if len(transactions) == 0 {
		return nil, fmt.Errorf("%s: %w", transactionsPath, common.ErrEmptyTransactions)
	}

	slog.Debug("loaded transactions",
		"file", transactionsPath,
		"transactions", len(transactions),
		"items", model.Universe(transactions).Len())
	return transactions, nil
}

// loadItemNames builds the item number to name mapping from a lookup CSV.
// A lookup file without the expected columns yields no mapping rather
// than an error, matching how ad hoc store exports vary.
func loadItemNames(path string) (map[string]string, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	numberCol, nameCol := -1, -1
	for i, header := range records[0] {
		switch strings.TrimSpace(header) {
		case itemNumberColumn:
			numberCol = i
		case itemNameColumn:
			nameCol = i
		}
	}
	if numberCol < 0 || nameCol < 0 {
		slog.Debug("item lookup file has no item columns, skipping mapping", "file", path)
		return nil, nil
	}

	names := make(map[string]string, len(records)-1)
	for _, row := range records[1:] {
		if numberCol >= len(row) || nameCol >= len(row) {
			continue
		}
		number := strings.TrimSpace(row[numberCol])
		name := strings.TrimSpace(row[nameCol])
		if number == "" || name == "" {
			continue
		}
		names[number] = name
	}
	return names, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}
