package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshsymonds/basket-case/internal/cli"
	"github.com/joshsymonds/basket-case/internal/config"
	"github.com/joshsymonds/basket-case/internal/loader"
	"github.com/joshsymonds/basket-case/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <name>",
		Short: "Import a transaction dataset from CSV",
		Long: `Import a store's transactions from a CSV file into the local dataset
database. Each row is one basket; cells may hold single items or
comma-separated item lists. An optional item lookup CSV with "Item #"
and "Item Name" columns maps item numbers to names.

Re-importing under an existing name replaces the previous contents.`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}

	cmd.Flags().StringP("transactions", "t", "", "transaction CSV file (required)")
	cmd.Flags().StringP("items", "i", "", "item lookup CSV file")
	_ = cmd.MarkFlagRequired("transactions")

	_ = viper.BindPFlag("import.transactions", cmd.Flags().Lookup("transactions"))
	_ = viper.BindPFlag("import.items", cmd.Flags().Lookup("items"))

	return cmd
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]
	transactionsPath := config.ExpandPath(viper.GetString("import.transactions"))
	itemsPath := config.ExpandPath(viper.GetString("import.items"))

	slog.Info(cli.FormatTitle("Importing dataset"), "name", name, "file", transactionsPath)

	transactions, err := loader.LoadCSV(transactionsPath, itemsPath)
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", transactionsPath, err)
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	dataset := &model.Dataset{
		Name:         name,
		Source:       transactionsPath,
		ImportedAt:   time.Now().UTC(),
		Transactions: transactions,
	}
	if err := store.SaveDataset(ctx, dataset); err != nil {
		return fmt.Errorf("failed to save dataset %q: %w", name, err)
	}

	universe := model.Universe(transactions)
	slog.Info(cli.FormatSuccess(fmt.Sprintf("Imported %q: %d transactions over %d distinct items",
		name, len(transactions), universe.Len())))
	return nil
}
