// Package extractor pulls settings, statistics and the Orders/Deals tables
// out of a decoded strategy tester report.
//
// The report markup is generated, not hand written, so the extractor matches
// the few fixed shapes the generator emits instead of building a DOM for the
// whole document. Anything it does not recognise is ignored: absent data is
// represented by omission, never by an error.
package extractor

import (
	"html"
	"regexp"
	"strings"

	"tester-report/internal/types"
)

// Section names of the two row tables.
const (
	SectionOrders = "Orders"
	SectionDeals  = "Deals"
)

// BrokerBuildLabel is the settings label for the terminal build string.
const BrokerBuildLabel = "Broker Build"

// Labels used by the empty report check.
const (
	LabelTotalTrades    = "Total Trades"
	LabelInitialDeposit = "Initial Deposit"
	LabelExpert         = "Expert"
)

// SettingLabels is the fixed, ordered list of settings read from a report.
var SettingLabels = []string{
	LabelExpert,
	"Symbol",
	"Period",
	"Inputs",
	"Company",
	"Currency",
	LabelInitialDeposit,
	"Leverage",
}

var (
	tagPattern   = regexp.MustCompile(`<[^>]+>`)
	buildPattern = regexp.MustCompile(`<b>([^<]*Build\s+\d+[^<]*)</b>`)

	settingPatterns = compileSettingPatterns(SettingLabels)

	// Applied in this order over the whole text; later matches overwrite
	// earlier ones for the same label.
	statisticPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<td[^>]*>([^<]*?):</td>\s*<td[^>]*><b>(.*?)</b></td>`),
		regexp.MustCompile(`(?s)<td[^>]*colspan="3"[^>]*>([^<]*?):</td>\s*<td[^>]*><b>(.*?)</b></td>`),
		regexp.MustCompile(`(?s)<td[^>]*colspan="3"[^>]*>([^<]*?):</td>\s*<td[^>]*colspan="2"[^>]*><b>(.*?)</b></td>`),
	}

	probePatterns = map[string]*regexp.Regexp{
		LabelTotalTrades:    regexp.MustCompile(`(?s)Total Trades:.*?<b>(\d+)</b>`),
		LabelInitialDeposit: regexp.MustCompile(`(?s)Initial Deposit:.*?<b>([^<]+)</b>`),
	}
)

func compileSettingPatterns(labels []string) map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(labels))
	for _, label := range labels {
		out[label] = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(label) + `:</td>\s*<td[^>]*><b>(.*?)</b>`)
	}
	return out
}

// Extract runs every extraction pass over text.
// Labels captured as settings are removed from the statistics, since the
// generic statistics patterns also match the settings block.
func Extract(text string) types.ParsedReport {
	settings := ExtractSettings(text)
	stats := ExtractStatistics(text)
	for _, label := range settings.Labels() {
		stats.Delete(label)
	}

	return types.ParsedReport{
		Settings:   settings,
		Statistics: stats,
		Orders:     ExtractTable(text, SectionOrders),
		Deals:      ExtractTable(text, SectionDeals),
		Probes:     ExtractProbes(text),
	}
}

// ExtractSettings reads the fixed settings labels plus the broker build string.
func ExtractSettings(text string) *types.Settings {
	settings := types.NewFields()
	for _, label := range SettingLabels {
		m := settingPatterns[label].FindStringSubmatch(text)
		if m == nil {
			continue
		}
		settings.Set(label, StripTags(m[1]))
	}
	if m := buildPattern.FindStringSubmatch(text); m != nil {
		settings.Set(BrokerBuildLabel, StripTags(m[1]))
	}
	return settings
}

// ExtractStatistics collects every "Label:" / bold value pair in text.
func ExtractStatistics(text string) *types.Statistics {
	stats := types.NewFields()
	for _, p := range statisticPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			label := StripTags(m[1])
			if label == "" {
				continue
			}
			stats.Set(label, StripTags(m[2]))
		}
	}
	return stats
}

// ExtractProbes looks for the empty report markers anywhere in text,
// regardless of the surrounding cell layout.
func ExtractProbes(text string) *types.Fields {
	probes := types.NewFields()
	for _, label := range []string{LabelTotalTrades, LabelInitialDeposit} {
		if m := probePatterns[label].FindStringSubmatch(text); m != nil {
			probes.Set(label, StripTags(m[1]))
		}
	}
	return probes
}

// StripTags removes markup from fragment, decodes entities and trims it.
func StripTags(fragment string) string {
	s := tagPattern.ReplaceAllString(fragment, "")
	return cleanText(html.UnescapeString(s))
}

func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
}
