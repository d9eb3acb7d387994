package interfaces

import (
	"context"

	"tester-report/internal/types"
)

// Converter turns one tester report into one rendered document on disk.
type Converter interface {
	Convert(ctx context.Context, reportPath, outputDir string) (*types.Summary, error)
}
