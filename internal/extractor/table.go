package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tester-report/internal/types"
)

// headerColor is the background of header rows in the Orders/Deals tables.
const headerColor = "E5F0FC"

// minFilledCells is the number of non-empty cells a row needs to count as data.
const minFilledCells = 3

var (
	headerRowPattern = regexp.MustCompile(`(?s)bgcolor="#` + headerColor + `"(.*?)</tr>`)
	rowPattern       = regexp.MustCompile(`(?s)<tr[^>]*>(.*?)</tr>`)
	boldPattern      = regexp.MustCompile(`(?s)<b>(.*?)</b>`)

	// Markers of spacer, header and section-title rows.
	decorativeMarkers = []string{headerColor, "height: 10px", "height:10px", "<div"}
)

func sectionPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)<b>` + regexp.QuoteMeta(name) + `</b>(.*?)</table>`)
}

// ExtractTable returns the header and data rows of the named section.
// A missing section yields a table with no headers and no rows.
func ExtractTable(text, name string) types.Table {
	table := types.Table{Name: name}

	m := sectionPattern(name).FindStringSubmatch(text)
	if m == nil {
		return table
	}
	region := m[1]

	table.Headers = extractHeaders(region)
	for _, rm := range rowPattern.FindAllStringSubmatch(region, -1) {
		if isDecorative(rm[0]) {
			continue
		}
		cells := rowCells(rm[1])
		if countFilled(cells) < minFilledCells {
			continue
		}
		if isRepeatedHeader(cells, table.Headers) {
			continue
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

func extractHeaders(region string) []string {
	m := headerRowPattern.FindStringSubmatch(region)
	if m == nil {
		return nil
	}
	var headers []string
	for _, bm := range boldPattern.FindAllStringSubmatch(m[1], -1) {
		headers = append(headers, StripTags(bm[1]))
	}
	return headers
}

func isDecorative(rowMarkup string) bool {
	for _, marker := range decorativeMarkers {
		if strings.Contains(rowMarkup, marker) {
			return true
		}
	}
	return false
}

// rowCells returns the text of each cell of a row, preferring the first bold
// element of a cell over its full text.
func rowCells(inner string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table><tr>" + inner + "</tr></table>"))
	if err != nil {
		return nil
	}

	var cells []string
	doc.Find("td").Not("td td").Each(func(_ int, td *goquery.Selection) {
		if b := td.Find("b").First(); b.Length() > 0 {
			cells = append(cells, cleanText(b.Text()))
			return
		}
		cells = append(cells, cleanText(td.Text()))
	})
	return cells
}

func countFilled(cells []string) int {
	n := 0
	for _, c := range cells {
		if c != "" {
			n++
		}
	}
	return n
}

// isRepeatedHeader reports whether the leading cells of a row repeat the
// header, as the report does every so often for readability.
func isRepeatedHeader(cells, headers []string) bool {
	if len(headers) == 0 || len(cells) < len(headers) {
		return false
	}
	for i, h := range headers {
		if cells[i] != h {
			return false
		}
	}
	return true
}
