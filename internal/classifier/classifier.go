// Package classifier groups report statistics into presentation buckets.
package classifier

import "tester-report/internal/types"

// Bucket keys, in presentation order.
const (
	BucketPerformance = "performance"
	BucketDrawdown    = "drawdown"
	BucketTrades      = "trades"
	BucketCorrelation = "correlation_holding"
	BucketOther       = "other"
)

type bucketDef struct {
	key    string
	title  string
	labels []string
}

// buckets is the fixed membership table. A label listed in more than one
// bucket belongs to the first one.
var buckets = []bucketDef{
	{
		key:   BucketPerformance,
		title: "Performance",
		labels: []string{
			"History Quality", "Bars", "Ticks", "Symbols",
			"Total Net Profit", "Gross Profit", "Gross Loss",
			"Profit Factor", "Expected Payoff", "Recovery Factor",
			"Sharpe Ratio", "Z-Score", "Margin Level",
			"AHPR", "GHPR", "LR Correlation", "LR Standard Error",
			"OnTester result",
		},
	},
	{
		key:   BucketDrawdown,
		title: "Drawdown",
		labels: []string{
			"Balance Drawdown Absolute", "Balance Drawdown Maximal", "Balance Drawdown Relative",
			"Equity Drawdown Absolute", "Equity Drawdown Maximal", "Equity Drawdown Relative",
		},
	},
	{
		key:   BucketTrades,
		title: "Trades",
		labels: []string{
			"Total Trades", "Total Deals",
			"Short Trades (won %)", "Long Trades (won %)",
			"Profit Trades (% of total)", "Loss Trades (% of total)",
			"Largest profit trade", "Largest loss trade",
			"Average profit trade", "Average loss trade",
			"Maximum consecutive wins ($)", "Maximum consecutive losses ($)",
			"Maximal consecutive profit (count)", "Maximal consecutive loss (count)",
			"Average consecutive wins", "Average consecutive losses",
		},
	},
	{
		key:   BucketCorrelation,
		title: "Correlation & Position Holding",
		// The terminal has printed the correlation labels both with and
		// without a space after the comma.
		labels: []string{
			"Correlation (Profits,MFE)", "Correlation (Profits,MAE)", "Correlation (MFE,MAE)",
			"Correlation (Profits, MFE)", "Correlation (Profits, MAE)", "Correlation (MFE, MAE)",
			"Minimal position holding time", "Maximal position holding time",
			"Average position holding time",
		},
	},
}

const otherTitle = "Other Metrics"

// owner maps every listed label to the key of the first bucket listing it.
var owner = buildOwner()

func buildOwner() map[string]string {
	m := make(map[string]string)
	for _, b := range buckets {
		for _, label := range b.labels {
			if _, ok := m[label]; !ok {
				m[label] = b.key
			}
		}
	}
	return m
}

// BucketOf returns the key of the bucket label belongs to. Unlisted labels
// belong to BucketOther.
func BucketOf(label string) string {
	if key, ok := owner[label]; ok {
		return key
	}
	return BucketOther
}

// Labels returns the fixed label list of a named bucket.
func Labels(key string) []string {
	for _, b := range buckets {
		if b.key == key {
			out := make([]string, len(b.labels))
			copy(out, b.labels)
			return out
		}
	}
	return nil
}

// Classify partitions stats into the fixed buckets followed by Other.
//
// Named buckets list the labels present in stats in their fixed order.
// Other lists every remaining label with a non-empty value, in the order
// the labels were found in the report.
func Classify(stats *types.Statistics) types.GroupedStatistics {
	grouped := types.GroupedStatistics{Buckets: make([]types.Bucket, 0, len(buckets)+1)}
	printed := make(map[string]bool)

	for _, def := range buckets {
		b := types.Bucket{Key: def.key, Title: def.title}
		for _, label := range def.labels {
			if printed[label] || owner[label] != def.key {
				continue
			}
			v, ok := stats.Get(label)
			if !ok {
				continue
			}
			b.Metrics = append(b.Metrics, types.Field{Label: label, Value: v})
			printed[label] = true
		}
		grouped.Buckets = append(grouped.Buckets, b)
	}

	other := types.Bucket{Key: BucketOther, Title: otherTitle}
	for _, f := range stats.Entries() {
		if _, listed := owner[f.Label]; listed || f.Value == "" {
			continue
		}
		other.Metrics = append(other.Metrics, f)
	}
	grouped.Buckets = append(grouped.Buckets, other)

	return grouped
}
