package converterobs

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"tester-report/internal/interfaces"
	"tester-report/internal/logger"
	"tester-report/internal/trace"
	"tester-report/internal/types"
)

type observableConverter struct {
	converter interfaces.Converter
}

var _ interfaces.Converter = (*observableConverter)(nil)

func Wrap(converter interfaces.Converter) interfaces.Converter {
	return &observableConverter{
		converter: converter,
	}
}

func (oc *observableConverter) Convert(ctx context.Context, reportPath, outputDir string) (*types.Summary, error) {
	ctx, span := trace.StartSpan(ctx, "converter.Convert")
	defer span.End()

	span.SetAttributes(
		attribute.String("report.path", reportPath),
		attribute.String("output.dir", outputDir),
	)

	logger.InfoSkip(ctx, 1, "Starting report conversion",
		"report_path", reportPath,
		"output_dir", outputDir,
	)

	summary, err := oc.converter.Convert(ctx, reportPath, outputDir)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Report conversion failed", err,
			"report_path", reportPath,
		)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("report.metrics", summary.Metrics),
		attribute.Int("report.deals", summary.Deals),
		attribute.Int("report.orders", summary.Orders),
		attribute.Bool("report.empty", summary.EmptyReport),
	)

	if summary.EmptyReport {
		logger.WarnSkip(ctx, 1, "Report appears empty (all zeros). Backtest may need re-run.",
			"report_path", reportPath,
		)
	}

	logger.Report(ctx, reportPath, summary.OutputPath, summary.Metrics, summary.Deals, summary.Orders,
		"encoding", summary.Encoding,
		"empty_report", summary.EmptyReport,
	)

	return summary, nil
}
