// Package renderer turns an extracted tester report into the output document
// and decides what the document is called.
package renderer

import (
	"fmt"

	"tester-report/internal/interfaces"
)

// Format specifies the output format of a rendered report.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// DefaultTimestampFormat is used when Options.TimestampFormat is empty.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

const (
	labelExpert         = "Expert"
	labelTotalTrades    = "Total Trades"
	labelInitialDeposit = "Initial Deposit"

	unknownExpert = "Unknown"
)

// Options tunes rendering.
type Options struct {
	TimestampFormat string
}

func (o Options) timestampFormat() string {
	if o.TimestampFormat == "" {
		return DefaultTimestampFormat
	}
	return o.TimestampFormat
}

// New returns the renderer for format.
func New(format Format, opts Options) (interfaces.Renderer, error) {
	switch format {
	case FormatMarkdown, "":
		return NewMarkdown(opts), nil
	case FormatJSON:
		return NewJSON(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
