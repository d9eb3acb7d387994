package renderer

import (
	"encoding/json"

	"tester-report/internal/classifier"
	"tester-report/internal/interfaces"
	"tester-report/internal/types"
)

// JSON renders reports as an indented JSON object with the same sections as
// the Markdown document.
type JSON struct {
	opts Options
}

var _ interfaces.Renderer = (*JSON)(nil)

type jsonDocument struct {
	Title      string         `json:"title"`
	Generated  string         `json:"generated"`
	Settings   []types.Field  `json:"settings"`
	Statistics []types.Bucket `json:"statistics"`
	Deals      jsonTable      `json:"deals"`
	Orders     jsonTable      `json:"orders"`
}

type jsonTable struct {
	Total   int        `json:"total"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func NewJSON(opts Options) *JSON {
	return &JSON{opts: opts}
}

func (j *JSON) Extension() string { return "json" }

func (j *JSON) Render(doc types.Document) (string, error) {
	out := jsonDocument{
		Title:      "Strategy Tester Report: " + expertName(doc.Settings),
		Generated:  doc.GeneratedAt.Format(j.opts.timestampFormat()),
		Settings:   []types.Field{},
		Statistics: []types.Bucket{},
		Deals:      newJSONTable(doc.Deals),
		Orders:     newJSONTable(doc.Orders),
	}

	for _, f := range doc.Settings.Entries() {
		if f.Value != "" {
			out.Settings = append(out.Settings, f)
		}
	}
	for _, b := range doc.Statistics.Buckets {
		if b.Key == classifier.BucketOther && len(b.Metrics) == 0 {
			continue
		}
		if b.Metrics == nil {
			b.Metrics = []types.Field{}
		}
		out.Statistics = append(out.Statistics, b)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func newJSONTable(t types.Table) jsonTable {
	jt := jsonTable{
		Total:   len(t.Rows),
		Headers: []string{},
		Rows:    [][]string{},
	}
	if t.IsEmpty() {
		return jt
	}
	jt.Headers = append(jt.Headers, t.Headers...)
	for _, row := range t.Rows {
		jt.Rows = append(jt.Rows, fitRow(row, len(t.Headers)))
	}
	return jt
}
