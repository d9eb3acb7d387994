package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tester-report/internal/testutil"
)

func writeReport(t *testing.T, dir, name, body string) string {
	t.Helper()
	raw, err := testutil.EncodeUTF16(body)
	require.NoError(t, err)
	path, err := testutil.WriteReport(dir, name, raw)
	require.NoError(t, err)
	return path
}

func noConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.yaml")
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})

	for name, def := range map[string]string{
		"output-dir": "",
		"format":     "",
		"config":     "config.yaml",
	} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, def, flag.DefValue, name)
	}
}

func TestRun_MissingArgument(t *testing.T) {
	var out bytes.Buffer
	code := run(nil, &out)

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(out.String(), "ERROR: usage: parsereport"))
}

func TestRun_MissingReport(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	code := run([]string{filepath.Join(dir, "nope.htm"), "--output-dir", dir, "--config", noConfig(t)}, &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "ERROR: report not found")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_EmptyReportWarns(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "report.htm", testutil.EmptyReport)
	outDir := filepath.Join(dir, "out")

	var out bytes.Buffer
	code := run([]string{path, "--output-dir", outDir, "--config", noConfig(t)}, &out)
	require.Equal(t, 0, code, out.String())

	expected := emptyReportWarning + "\n" +
		"Parsed: 0 metrics, 0 deals, 0 orders\n" +
		"Output: " + filepath.Join(outDir, "MyEA_report.md") + "\n"
	assert.Equal(t, expected, out.String())
	assert.FileExists(t, filepath.Join(outDir, "MyEA_report.md"))
}

func TestRun_SampleReport(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "report.htm", testutil.SampleReport)

	var out bytes.Buffer
	code := run([]string{path, "--output-dir", dir, "--config", noConfig(t)}, &out)
	require.Equal(t, 0, code, out.String())

	assert.NotContains(t, out.String(), "WARNING")
	assert.Contains(t, out.String(), "Parsed: 12 metrics, 2 deals, 2 orders\n")
}

func TestRun_ConfigAndFormatFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "report.htm", testutil.SampleReport)
	outDir := filepath.Join(dir, "from-config")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  dir: "+outDir+"\n"), 0o644))

	var out bytes.Buffer
	code := run([]string{path, "--config", cfgPath, "--format", "json"}, &out)
	require.Equal(t, 0, code, out.String())
	assert.FileExists(t, filepath.Join(outDir, "MovingAverage_report.json"))
}

func TestRun_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "report.htm", testutil.SampleReport)

	var out bytes.Buffer
	code := run([]string{path, "--output-dir", dir, "--format", "pdf", "--config", noConfig(t)}, &out)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "ERROR: unsupported format: pdf")
}
