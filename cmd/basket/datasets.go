package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/basket-case/internal/cli"
)

func datasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List imported datasets",
		RunE:  runDatasetsCmd,
	}
}

func runDatasetsCmd(cmd *cobra.Command, _ []string) error {
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

	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-14s %-8s %s\n",
		cli.BoldStyle.Render("NAME"),
		cli.BoldStyle.Render("TRANSACTIONS"),
		cli.BoldStyle.Render("ITEMS"),
		cli.BoldStyle.Render("IMPORTED"))
	for _, info := range infos {
		fmt.Fprintf(&b, "%-20s %-14d %-8d %s\n",
			info.Name, info.TransactionCount, info.ItemCount,
			info.ImportedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println(cli.RenderBox(cli.BasketIcon+" Datasets", strings.TrimRight(b.String(), "\n")))
	return nil
}
