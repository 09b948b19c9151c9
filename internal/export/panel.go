package export

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/idilsaglam/reviews/internal/model"
	"github.com/idilsaglam/reviews/internal/ui"
)

var groupOrder = []model.Sentiment{
	model.SentimentPositive,
	model.SentimentNeutral,
	model.SentimentNegative,
	model.SentimentUnknown,
	model.SentimentPending,
}

func writePanel(w io.Writer, items []model.Item, opt Options) {
	t := ui.Current()
	counts := countBySentiment(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Reviews"),
		ui.C(t.Positive, "+"), counts[model.SentimentPositive],
		ui.C(t.Negative, "-"), counts[model.SentimentNegative],
		ui.C(t.Neutral, "="), counts[model.SentimentNeutral],
		ui.C(t.Accent, "Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ShareBar(counts[model.SentimentPositive], len(items), 28)+" positive"))
	lines = append(lines, "")
	if opt.Group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: analyze with `reviews analyze \"Great product\"`"))
	ui.Panel(w, lines)
}

func countBySentiment(items []model.Item) map[model.Sentiment]int {
	counts := make(map[model.Sentiment]int, len(groupOrder))
	for _, it := range items {
		counts[it.Sentiment]++
	}
	return counts
}

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "No reviews yet. Try adding one!")}
	}
	out := make([]string, 0, len(items)*2)
	for _, it := range items {
		id := fmt.Sprintf("%4s", it.ID.Display())
		pill := ui.C(ui.SentimentColor(string(it.Sentiment)), fmt.Sprintf("%-8s", it.Sentiment))
		out = append(out, fmt.Sprintf("%s %s %s", ui.C(t.Muted, id), pill, truncate(it.Text, 80)))
		detail := firstLine(it.KeyPoints)
		if !it.Resolved() {
			detail = "Processing…"
		}
		if detail != "" {
			out = append(out, "              "+ui.C(t.Muted, truncate(detail, 72)))
		}
	}
	return out
}

func groupLines(items []model.Item) []string {
	t := ui.Current()
	groups := make(map[model.Sentiment][]model.Item)
	for _, it := range items {
		groups[it.Sentiment] = append(groups[it.Sentiment], it)
	}
	var lines []string
	for i, s := range groupOrder {
		members := groups[s]
		if s == model.SentimentPending && len(members) == 0 {
			continue
		}
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, ui.C(ui.SentimentColor(string(s)), titleCase(string(s))))
		if len(members) == 0 {
			lines = append(lines, ui.C(t.Muted, "(none)"))
			continue
		}
		lines = append(lines, flatLines(members)...)
	}
	return lines
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
