package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/model"
)

// DatasetInfo summarizes a stored dataset for listings.
type DatasetInfo struct {
	ImportedAt       time.Time
	Name             string
	Source           string
	TransactionCount int
	ItemCount        int
}

// SaveDataset stores a dataset and its transactions. Re-importing a
// dataset under an existing name replaces the previous contents.
func (s *SQLiteStorage) SaveDataset(ctx context.Context, dataset *model.Dataset) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if dataset == nil {
		return ErrNilDataset
	}
	if err := validateString(dataset.Name, "dataset.Name"); err != nil {
		return err
	}
	if len(dataset.Transactions) == 0 {
		return fmt.Errorf("dataset %q: %w", dataset.Name, common.ErrEmptyTransactions)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Replace any previous import under the same name.
	if _, err = tx.ExecContext(ctx, `DELETE FROM baskets WHERE dataset = ?`, dataset.Name); err != nil {
		return fmt.Errorf("failed to clear previous baskets: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, dataset.Name); err != nil {
		return fmt.Errorf("failed to clear previous dataset: %w", err)
	}

	universe := model.Universe(dataset.Transactions)
	importedAt := dataset.ImportedAt
	if importedAt.IsZero() {
		importedAt = time.Now().UTC()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO datasets (name, source, imported_at, transaction_count, item_count)
		VALUES (?, ?, ?, ?, ?)
	`, dataset.Name, dataset.Source, importedAt, len(dataset.Transactions), universe.Len())
	if err != nil {
		return fmt.Errorf("failed to insert dataset: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO baskets (dataset, ordinal, items) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, transaction := range dataset.Transactions {
		items, marshalErr := json.Marshal(transaction.Items)
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal basket %d: %w", i, marshalErr)
		}
		if _, execErr := stmt.ExecContext(ctx, dataset.Name, i, string(items)); execErr != nil {
			return fmt.Errorf("failed to insert basket %d: %w", i, execErr)
		}
	}

	return tx.Commit()
}

// GetDataset loads a dataset and its transactions in import order.
func (s *SQLiteStorage) GetDataset(ctx context.Context, name string) (*model.Dataset, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	dataset := &model.Dataset{Name: name}
	err := s.db.QueryRowContext(ctx, `
		SELECT source, imported_at FROM datasets WHERE name = ?
	`, name).Scan(&dataset.Source, &dataset.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dataset %q: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT ordinal, items FROM baskets WHERE dataset = ? ORDER BY ordinal
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load baskets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var ordinal int
		var itemsJSON string
		if err := rows.Scan(&ordinal, &itemsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan basket: %w", err)
		}
		var items []model.Item
		if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal basket %d: %w", ordinal, err)
		}
		dataset.Transactions = append(dataset.Transactions, model.NewTransaction(ordinal, items...))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate baskets: %w", err)
	}

	return dataset, nil
}

// ListDatasets returns summaries of all stored datasets, newest first.
func (s *SQLiteStorage) ListDatasets(ctx context.Context) ([]DatasetInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, source, imported_at, transaction_count, item_count
		FROM datasets
		ORDER BY imported_at DESC, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []DatasetInfo
	for rows.Next() {
		var info DatasetInfo
		if err := rows.Scan(&info.Name, &info.Source, &info.ImportedAt, &info.TransactionCount, &info.ItemCount); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate datasets: %w", err)
	}

	return infos, nil
}

// DeleteDataset removes a dataset and its transactions.
func (s *SQLiteStorage) DeleteDataset(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("dataset %q: %w", name, common.ErrNotFound)
	}
	return nil
}
