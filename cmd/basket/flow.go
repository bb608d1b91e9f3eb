package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/basket-case/internal/cli"
	"github.com/joshsymonds/basket-case/internal/tui"
)

func flowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flow",
		Short: "Interactively pick a dataset and compare all strategies",
		Long: `Walk through dataset selection and threshold entry interactively, then
run every mining strategy over the chosen dataset with timing.`,
		RunE: runFlowCmd,
	}
}

func runFlowCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	infos, err := store.ListDatasets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list datasets: %w", err)
	}
	if len(infos) == 0 {
		fmt.Println(cli.FormatWarning("No datasets imported yet. Run 'basket import' first."))
		return nil
	}

	selection, ok, err := tui.Run(infos)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(cli.SubtleStyle.Render("Cancelled."))
		return nil
	}

	dataset, err := store.GetDataset(ctx, selection.Dataset)
	if err != nil {
		return err
	}

	return runComparison(ctx, dataset.Transactions, selection.MinSupport, selection.MinConfidence, false)
}
