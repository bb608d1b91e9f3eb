package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joshsymonds/basket-case/internal/cli"
	"github.com/joshsymonds/basket-case/internal/common"
	"github.com/joshsymonds/basket-case/internal/config"
	"github.com/joshsymonds/basket-case/internal/mining"
	"github.com/joshsymonds/basket-case/internal/model"
	"github.com/joshsymonds/basket-case/internal/report"
	"github.com/joshsymonds/basket-case/internal/storage"
	"github.com/joshsymonds/basket-case/internal/strategy"
)

// openStorage opens and migrates the dataset database.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate dataset database: %w", err)
	}
	return store, nil
}

// resolveThresholds fills in any threshold the flags left unset by
// prompting for it as a percentage.
func resolveThresholds(minSupport, minConfidence float64) (support, confidence float64, err error) {
	prompter := cli.NewPrompter(os.Stdin, os.Stdout)

	support = minSupport
	if support < 0 {
		support, err = prompter.MinSupport()
		if err != nil {
			return 0, 0, err
		}
	}

	confidence = minConfidence
	if confidence < 0 {
		confidence, err = prompter.MinConfidence()
		if err != nil {
			return 0, 0, err
		}
	}
	return support, confidence, nil
}

// runComparison runs every strategy over the transactions and reports
// per-strategy results, the timing table, and the fastest strategy.
func runComparison(ctx context.Context, transactions []model.Transaction, minSupport, minConfidence float64, progress bool) error {
	var progressFunc mining.ProgressFunc
	if progress {
		progressFunc = cli.NewProgressBar(os.Stderr)
	}

	runner := strategy.NewRunner(strategy.All(progressFunc)...)
	outcomes, err := runner.Compare(ctx, transactions, minSupport, minConfidence)
	if err != nil {
		return err
	}

	formatter := report.NewFormatter(os.Stdout)
	for _, outcome := range outcomes {
		if err := formatter.Outcome(outcome); err != nil {
			return err
		}
	}
	if err := formatter.Comparison(outcomes); err != nil {
		return err
	}

	if _, ok := strategy.Fastest(outcomes); !ok {
		return common.NewUserError("every mining strategy failed", outcomes[0].Err)
	}
	return nil
}
