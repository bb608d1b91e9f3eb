// Package report renders mining results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/joshsymonds/basket-case/internal/cli"
	"github.com/joshsymonds/basket-case/internal/strategy"
)

// Formatter writes human-readable frequent itemsets, rules, and timing
// comparisons.
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{writer: w}
}

// Outcome renders one strategy's results: its frequent itemsets and rules
// with supports and confidences as percentages, or its failure.
func (f *Formatter) Outcome(outcome strategy.Outcome) error {
	title := fmt.Sprintf("%s Results", displayName(outcome.Strategy))
	if outcome.Failed() {
		content := cli.FormatError(fmt.Sprintf("Run failed: %v", outcome.Err))
		return f.println(cli.RenderBox(title, content))
	}

	var b strings.Builder
	b.WriteString(cli.BoldStyle.Render("Frequent Itemsets:"))
	b.WriteString("\n")
	if len(outcome.Frequent) == 0 {
		b.WriteString(cli.SubtleStyle.Render("  (none found at this support threshold)"))
		b.WriteString("\n")
	}
	for _, record := range outcome.Frequent {
		fmt.Fprintf(&b, "  Items: %s, Support: %s\n", record.Items, percent(record.Support))
	}

	b.WriteString("\n")
	b.WriteString(cli.BoldStyle.Render("Association Rules:"))
	b.WriteString("\n")
	if len(outcome.Rules) == 0 {
		b.WriteString(cli.SubtleStyle.Render("  (none met the confidence threshold)"))
		b.WriteString("\n")
	}
	for _, rule := range outcome.Rules {
		fmt.Fprintf(&b, "  Rule: %s -> %s\n", rule.Antecedent, rule.Consequent)
		fmt.Fprintf(&b, "    Confidence: %s, Support: %s\n", percent(rule.Confidence), percent(rule.Support))
	}
	fmt.Fprintf(&b, "\nElapsed: %s", outcome.Elapsed.Round(100*time.Microsecond))

	return f.println(cli.RenderBox(title, strings.TrimRight(b.String(), "\n")))
}

// Comparison renders the execution-time table and names the fastest
// successful strategy.
func (f *Formatter) Comparison(outcomes []strategy.Outcome) error {
	var b strings.Builder
	for _, outcome := range outcomes {
		if outcome.Failed() {
			fmt.Fprintf(&b, "%-12s %s\n", displayName(outcome.Strategy), cli.ErrorStyle.Render("failed"))
			continue
		}
		fmt.Fprintf(&b, "%-12s %.4f seconds\n", displayName(outcome.Strategy), outcome.Elapsed.Seconds())
	}

	if fastest, ok := strategy.Fastest(outcomes); ok {
		b.WriteString("\n")
		b.WriteString(cli.FormatSuccess(fmt.Sprintf("The fastest algorithm is: %s", displayName(fastest.Strategy))))
	} else {
		b.WriteString("\n")
		b.WriteString(cli.FormatError("Every strategy failed"))
	}

	return f.println(cli.RenderBox(cli.ChartIcon+" Execution Times", b.String()))
}

func (f *Formatter) println(s string) error {
	if _, err := fmt.Fprintln(f.writer, s); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func displayName(name string) string {
	switch name {
	case strategy.NameBruteForce:
		return "Brute Force"
	case strategy.NameApriori:
		return "Apriori"
	case strategy.NameFPGrowth:
		return "FP-Growth"
	default:
		return name
	}
}
