package renderer

import (
	"strings"

	"github.com/shopspring/decimal"

	"tester-report/internal/types"
)

// IsEmptyReport reports whether a report looks like the output of a test run
// that never happened: zero trades on a zero deposit. Both conditions are
// required; a zero-deposit run that traded is legitimate.
//
// Values come from the structured extraction first and from the raw-text
// probes when the structured patterns did not capture the label.
func IsEmptyReport(report types.ParsedReport) bool {
	trades, ok := lookup(report.Statistics, report.Probes, labelTotalTrades)
	if !ok || !isZero(trades) {
		return false
	}
	deposit, ok := lookup(report.Settings, report.Probes, labelInitialDeposit)
	return ok && isZero(deposit)
}

func lookup(primary, fallback *types.Fields, label string) (string, bool) {
	if v, ok := primary.Get(label); ok {
		return v, true
	}
	return fallback.Get(label)
}

var numberCleaner = strings.NewReplacer(" ", "", "\u00a0", "")

func isZero(value string) bool {
	d, err := decimal.NewFromString(numberCleaner.Replace(value))
	if err != nil {
		return false
	}
	return d.IsZero()
}
