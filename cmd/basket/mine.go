package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshsymonds/basket-case/internal/cli"
	"github.com/joshsymonds/basket-case/internal/mining"
	"github.com/joshsymonds/basket-case/internal/report"
	"github.com/joshsymonds/basket-case/internal/strategy"
)

func mineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine <dataset>",
		Short: "Mine one dataset with a single strategy",
		Long: `Mine frequent itemsets and association rules from an imported dataset
with one strategy. Thresholds are fractions between 0 and 1; any
threshold left unset is prompted for as a percentage.`,
		Args: cobra.ExactArgs(1),
		RunE: runMineCmd,
	}

	cmd.Flags().StringP("algorithm", "a", strategy.NameBruteForce,
		fmt.Sprintf("mining strategy (%s, %s, %s)", strategy.NameBruteForce, strategy.NameApriori, strategy.NameFPGrowth))
	cmd.Flags().Float64P("min-support", "s", -1, "minimum support (0-1)")
	cmd.Flags().Float64P("min-confidence", "c", -1, "minimum confidence (0-1)")
	cmd.Flags().Bool("progress", false, "show enumeration progress (brute-force only)")

	_ = viper.BindPFlag("mine.algorithm", cmd.Flags().Lookup("algorithm"))
	_ = viper.BindPFlag("mine.min_support", cmd.Flags().Lookup("min-support"))
	_ = viper.BindPFlag("mine.min_confidence", cmd.Flags().Lookup("min-confidence"))
	_ = viper.BindPFlag("mine.progress", cmd.Flags().Lookup("progress"))

	return cmd
}

func runMineCmd(cmd *cobra.Command, args []string) error {
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
		viper.GetFloat64("mine.min_support"),
		viper.GetFloat64("mine.min_confidence"))
	if err != nil {
		return err
	}

	var progressFunc mining.ProgressFunc
	if viper.GetBool("mine.progress") {
		progressFunc = cli.NewProgressBar(os.Stderr)
	}

	strat, err := strategy.ByName(viper.GetString("mine.algorithm"), progressFunc)
	if err != nil {
		return err
	}

	start := time.Now()
	frequent, err := strat.Mine(ctx, dataset.Transactions, minSupport)
	if err != nil {
		return fmt.Errorf("%s failed: %w", strat.Name(), err)
	}
	rules, err := mining.GenerateRules(frequent, dataset.Transactions, minConfidence)
	if err != nil {
		return fmt.Errorf("rule generation failed: %w", err)
	}

	formatter := report.NewFormatter(os.Stdout)
	return formatter.Outcome(strategy.Outcome{
		Strategy: strat.Name(),
		Frequent: frequent,
		Rules:    rules,
		Elapsed:  time.Since(start),
	})
}
