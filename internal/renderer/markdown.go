package renderer

import (
	"fmt"
	"strings"

	"tester-report/internal/classifier"
	"tester-report/internal/interfaces"
	"tester-report/internal/types"
)

const noData = "*No data*\n"

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// Markdown renders reports as a single Markdown document.
type Markdown struct {
	opts Options
}

var _ interfaces.Renderer = (*Markdown)(nil)

func NewMarkdown(opts Options) *Markdown {
	return &Markdown{opts: opts}
}

func (m *Markdown) Extension() string { return "md" }

func (m *Markdown) Render(doc types.Document) (string, error) {
	var md []string

	md = append(md,
		fmt.Sprintf("# Strategy Tester Report: %s", expertName(doc.Settings)),
		"",
		fmt.Sprintf("> Generated: %s", doc.GeneratedAt.Format(m.opts.timestampFormat())),
		"",
	)

	md = append(md, "## Settings", "", "| Parameter | Value |", "| --- | --- |")
	for _, f := range doc.Settings.Entries() {
		if f.Value == "" {
			continue
		}
		md = append(md, pairRow(f))
	}
	md = append(md, "")

	for _, b := range doc.Statistics.Buckets {
		if b.Key == classifier.BucketOther && len(b.Metrics) == 0 {
			continue
		}
		md = append(md, "## "+b.Title, "", "| Metric | Value |", "| --- | --- |")
		for _, f := range b.Metrics {
			md = append(md, pairRow(f))
		}
		md = append(md, "")
	}

	md = append(md, "## Deals", "", fmt.Sprintf("Total: %d deals", len(doc.Deals.Rows)), "",
		MarkdownTable(doc.Deals.Headers, doc.Deals.Rows))
	md = append(md, "## Orders", "", fmt.Sprintf("Total: %d orders", len(doc.Orders.Rows)), "",
		MarkdownTable(doc.Orders.Headers, doc.Orders.Rows))

	return strings.Join(md, "\n"), nil
}

// MarkdownTable renders headers and rows as a Markdown table. Rows are padded
// or truncated to the header width.
func MarkdownTable(headers []string, rows [][]string) string {
	if len(headers) == 0 || len(rows) == 0 {
		return noData
	}

	var sb strings.Builder
	sb.WriteString(tableRow(headers))
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	sb.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range rows {
		sb.WriteString(tableRow(fitRow(row, len(headers))))
	}
	return sb.String()
}

func fitRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

func tableRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = cellEscaper.Replace(c)
	}
	return "| " + strings.Join(escaped, " | ") + " |\n"
}

func pairRow(f types.Field) string {
	return strings.TrimSuffix(tableRow([]string{f.Label, f.Value}), "\n")
}

func expertName(settings *types.Settings) string {
	if name, _ := settings.Get(labelExpert); name != "" {
		return name
	}
	return unknownExpert
}
