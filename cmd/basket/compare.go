package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshsymonds/basket-case/internal/cli"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <dataset>",
		Short: "Compare all mining strategies on one dataset",
		Long: `Run brute-force, Apriori, and FP-Growth over the same dataset and
thresholds, report each strategy's frequent itemsets and rules, and
time the runs. A strategy failure is reported without aborting the
others.`,
		Args: cobra.ExactArgs(1),
		RunE: runCompareCmd,
	}

	cmd.Flags().Float64P("min-support", "s", -1, "minimum support (0-1)")
	cmd.Flags().Float64P("min-confidence", "c", -1, "minimum confidence (0-1)")
	cmd.Flags().Bool("progress", false, "show brute-force enumeration progress")

	_ = viper.BindPFlag("compare.min_support", cmd.Flags().Lookup("min-support"))
	_ = viper.BindPFlag("compare.min_confidence", cmd.Flags().Lookup("min-confidence"))
	_ = viper.BindPFlag("compare.progress", cmd.Flags().Lookup("progress"))

	return cmd
}

func runCompareCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	dataset, err := store.GetDataset(ctx, name)
	if err != nil {
		return err
	}

	minSupport, minConfidence, err := resolveThresholds(
		viper.GetFloat64("compare.min_support"),
		viper.GetFloat64("compare.min_confidence"))
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Comparing mining strategies"),
		"dataset", name,
		"transactions", len(dataset.Transactions),
		"items", dataset.ItemUniverse().Len(),
		"min_support", minSupport,
		"min_confidence", minConfidence)

	return runComparison(ctx, dataset.Transactions, minSupport, minConfidence, viper.GetBool("compare.progress"))
}
