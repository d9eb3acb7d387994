// Package converter runs the whole report pipeline: read, decode, extract,
// classify, render and write.
package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tester-report/internal/classifier"
	"tester-report/internal/decoder"
	"tester-report/internal/extractor"
	"tester-report/internal/interfaces"
	"tester-report/internal/logger"
	"tester-report/internal/renderer"
	"tester-report/internal/store"
	"tester-report/internal/types"
)

// ErrInputNotFound is returned when the report path does not exist.
var ErrInputNotFound = errors.New("report not found")

type converter struct {
	cfg      *store.Config
	renderer interfaces.Renderer
	now      func() time.Time
}

var _ interfaces.Converter = (*converter)(nil)

// New returns a Converter writing documents produced by r. A nil cfg means
// defaults.
func New(cfg *store.Config, r interfaces.Renderer) interfaces.Converter {
	return newConverter(cfg, r, time.Now)
}

func newConverter(cfg *store.Config, r interfaces.Renderer, now func() time.Time) *converter {
	if cfg == nil {
		cfg = store.Default()
	}
	return &converter{cfg: cfg, renderer: r, now: now}
}

// Convert converts the report at reportPath and writes the document into
// outputDir, or the configured directory when outputDir is empty.
func (c *converter) Convert(ctx context.Context, reportPath, outputDir string) (*types.Summary, error) {
	if outputDir == "" {
		outputDir = c.cfg.Output.Dir
	}

	info, err := os.Stat(reportPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, reportPath)
		}
		return nil, fmt.Errorf("failed to stat report: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, reportPath)
	}

	raw, err := os.ReadFile(reportPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	decoded := decoder.DecodeDetailed(raw)
	if decoded.Degraded {
		logger.Debug(ctx, "Report decoded with replacement characters",
			"path", reportPath,
			"bytes", len(raw),
		)
	}
	logger.Debug(ctx, "Report decoded", "encoding", decoded.Encoding, "chars", len(decoded.Text))

	report := extractor.Extract(decoded.Text)
	empty := renderer.IsEmptyReport(report)

	doc := types.Document{
		Settings:    report.Settings,
		Statistics:  classifier.Classify(report.Statistics),
		Orders:      report.Orders,
		Deals:       report.Deals,
		GeneratedAt: c.now(),
	}

	op := logger.StartOperation(ctx, "converter.write", "format", c.renderer.Extension())
	outputPath, err := c.write(op.GetContext(), doc, reportPath, outputDir)
	if err != nil {
		op.EndWithError(err)
		return nil, err
	}
	op.End("output", outputPath)

	return &types.Summary{
		Metrics:     report.Statistics.Len(),
		Deals:       len(report.Deals.Rows),
		Orders:      len(report.Orders.Rows),
		OutputPath:  outputPath,
		Encoding:    decoded.Encoding,
		EmptyReport: empty,
	}, nil
}

func (c *converter) write(ctx context.Context, doc types.Document, reportPath, outputDir string) (string, error) {
	content, err := c.renderer.Render(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	logger.Debug(ctx, "Report rendered", "bytes", len(content), "output_dir", outputDir)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, renderer.OutputName(doc.Settings, reportPath, c.renderer.Extension()))
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return outputPath, nil
}
