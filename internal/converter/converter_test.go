package converter

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tester-report/internal/decoder"
	"tester-report/internal/renderer"
	"tester-report/internal/store"
	"tester-report/internal/testutil"
)

var fixedNow = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }

func writeUTF16(t *testing.T, dir, name, body string) string {
	t.Helper()
	raw, err := testutil.EncodeUTF16(body)
	require.NoError(t, err)
	path, err := testutil.WriteReport(dir, name, raw)
	require.NoError(t, err)
	return path
}

func TestConvert_SampleReport(t *testing.T) {
	dir := t.TempDir()
	path := writeUTF16(t, dir, "MovingAverage_Report.htm", testutil.SampleReport)
	outDir := filepath.Join(dir, "out", "nested")

	c := newConverter(nil, renderer.NewMarkdown(renderer.Options{}), fixedNow)
	summary, err := c.Convert(context.Background(), path, outDir)
	require.NoError(t, err)

	assert.Equal(t, 12, summary.Metrics)
	assert.Equal(t, 2, summary.Deals)
	assert.Equal(t, 2, summary.Orders)
	assert.Equal(t, decoder.EncodingUTF16, summary.Encoding)
	assert.False(t, summary.EmptyReport)
	assert.Equal(t, filepath.Join(outDir, "MovingAverage_report.md"), summary.OutputPath)

	content, err := os.ReadFile(summary.OutputPath)
	require.NoError(t, err)
	md := string(content)
	assert.Contains(t, md, "# Strategy Tester Report: MovingAverage\n")
	assert.Contains(t, md, "> Generated: 2026-03-04 05:06:07\n")
	assert.Contains(t, md, "| Initial Deposit | 10 000.00 |")
	assert.Contains(t, md, "| Broker Build | MetaQuotes-Demo (Build 4410) |")
	assert.Contains(t, md, "| Custom Metric | 7 |")
	assert.NotContains(t, md, "Blank Metric")
	assert.Contains(t, md, "Total: 2 deals")
	assert.Contains(t, md, "Total: 2 orders")
	assert.Contains(t, md, "| 2024.01.04 09:00:00 | 4 | EURUSD | sell & close |  |")
}

func TestConvert_EmptyReport(t *testing.T) {
	dir := t.TempDir()
	path := writeUTF16(t, dir, "report.htm", testutil.EmptyReport)

	c := newConverter(nil, renderer.NewMarkdown(renderer.Options{}), fixedNow)
	summary, err := c.Convert(context.Background(), path, dir)
	require.NoError(t, err)

	assert.True(t, summary.EmptyReport)
	assert.Equal(t, filepath.Join(dir, "MyEA_report.md"), summary.OutputPath)
	assert.Zero(t, summary.Metrics)
	assert.Zero(t, summary.Deals)
	assert.Zero(t, summary.Orders)
	assert.FileExists(t, summary.OutputPath)
}

func TestConvert_ZeroByteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := testutil.WriteReport(dir, "empty_Report.htm", nil)
	require.NoError(t, err)

	c := newConverter(nil, renderer.NewMarkdown(renderer.Options{}), fixedNow)
	summary, err := c.Convert(context.Background(), path, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "empty_report.md"), summary.OutputPath)
	assert.False(t, summary.EmptyReport)

	content, err := os.ReadFile(summary.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Strategy Tester Report: Unknown")
	assert.Contains(t, string(content), "Total: 0 deals\n\n*No data*\n")
}

func TestConvert_MissingInput(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	c := New(nil, renderer.NewMarkdown(renderer.Options{}))
	_, err := c.Convert(context.Background(), filepath.Join(dir, "nope.htm"), outDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputNotFound))
	assert.NoDirExists(t, outDir)
}

func TestConvert_DirectoryInput(t *testing.T) {
	c := New(nil, renderer.NewMarkdown(renderer.Options{}))
	_, err := c.Convert(context.Background(), t.TempDir(), t.TempDir())
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestConvert_UsesConfiguredOutputDir(t *testing.T) {
	dir := t.TempDir()
	path := writeUTF16(t, dir, "report.htm", testutil.EmptyReport)

	cfg := store.Default()
	cfg.Output.Dir = filepath.Join(dir, "configured")

	c := newConverter(cfg, renderer.NewMarkdown(renderer.Options{}), fixedNow)
	summary, err := c.Convert(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Output.Dir, "MyEA_report.md"), summary.OutputPath)
}

func TestConvert_JSONRenderer(t *testing.T) {
	dir := t.TempDir()
	path := writeUTF16(t, dir, "report.htm", testutil.SampleReport)

	c := newConverter(nil, renderer.NewJSON(renderer.Options{}), fixedNow)
	summary, err := c.Convert(context.Background(), path, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "MovingAverage_report.json"), summary.OutputPath)

	content, err := os.ReadFile(summary.OutputPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(content, &doc))
	assert.Equal(t, "Strategy Tester Report: MovingAverage", doc["title"])
}

func TestConvert_UTF8Input(t *testing.T) {
	dir := t.TempDir()
	path, err := testutil.WriteReport(dir, "utf8.htm", []byte(testutil.SampleReport))
	require.NoError(t, err)

	c := newConverter(nil, renderer.NewMarkdown(renderer.Options{}), fixedNow)
	summary, err := c.Convert(context.Background(), path, dir)
	require.NoError(t, err)
	assert.Equal(t, decoder.EncodingUTF8, summary.Encoding)
	assert.Equal(t, 2, summary.Deals)
}

func TestConvert_UTF16ReportWithReplacementCharacter(t *testing.T) {
	dir := t.TempDir()
	body := "<td>Expert:</td><td><b>MyEA</b></td>" +
		"<td>Company:</td><td><b>Caf\uFFFD Ltd</b></td>"
	path := writeUTF16(t, dir, "report.htm", body)

	c := newConverter(nil, renderer.NewMarkdown(renderer.Options{}), fixedNow)
	summary, err := c.Convert(context.Background(), path, dir)
	require.NoError(t, err)

	assert.Equal(t, decoder.EncodingUTF16, summary.Encoding)
	assert.Equal(t, filepath.Join(dir, "MyEA_report.md"), summary.OutputPath)

	content, err := os.ReadFile(summary.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "| Company | Caf\uFFFD Ltd |")
}
