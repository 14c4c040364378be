package stats

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/humbench/internal/model"
)

// Placeholder is shown for categories without a stored best.
const Placeholder = "—"

// FormatBest renders a best value with its unit, or Placeholder.
func FormatBest(category model.Category, value int, ok bool) string {
	if !ok {
		return Placeholder
	}
	return fmt.Sprintf("%d %s", value, category.Unit())
}

type bestsRow struct {
	label string
	best  string
	rule  string
}

func bestsRows(bests map[model.Category]int) []bestsRow {
	rows := make([]bestsRow, 0, len(model.Categories)+1)
	rows = append(rows, bestsRow{label: "Benchmark", best: "Best", rule: "Rule"})
	for _, c := range model.Categories {
		value, ok := bests[c]
		rule := "higher is better"
		if c.LowerIsBetter() {
			rule = "lower is better"
		}
		rows = append(rows, bestsRow{label: c.Label(), best: FormatBest(c, value, ok), rule: rule})
	}
	return rows
}

// RenderBests prints personal bests with the label column left-aligned and
// values right-aligned.
func RenderBests(w io.Writer, bests map[model.Category]int) error {
	rows := bestsRows(bests)
	labelWidth, bestWidth := 0, 0
	for _, row := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(row.label))
		bestWidth = max(bestWidth, runewidth.StringWidth(row.best))
	}
	for _, row := range rows {
		line := runewidth.FillRight(row.label, labelWidth) + "  " +
			runewidth.FillLeft(row.best, bestWidth) + "  " + row.rule
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
