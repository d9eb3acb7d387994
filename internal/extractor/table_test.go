package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tester-report/internal/testutil"
)

func TestExtractTable_Orders(t *testing.T) {
	table := ExtractTable(testutil.SampleReport, SectionOrders)

	assert.Equal(t, SectionOrders, table.Name)
	assert.Equal(t, []string{"Open Time", "Order", "Symbol", "Type", "Volume"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"2024.01.02 10:00:00", "2", "EURUSD", "buy", "0.10 / 0.10"}, table.Rows[0])
	assert.Equal(t, []string{"2024.01.04 09:00:00", "4", "EURUSD", "sell & close"}, table.Rows[1])
}

func TestExtractTable_Deals(t *testing.T) {
	table := ExtractTable(testutil.SampleReport, SectionDeals)

	assert.Equal(t, []string{"Time", "Deal", "Symbol", "Type", "Profit", "Balance"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"2024.01.01 00:00:00", "1", "", "balance", "0.00", "10 000.00"}, table.Rows[0])
	// bold value wins over surrounding annotation
	assert.Equal(t, "-1.50", table.Rows[1][4])
}

func TestExtractTable_SingleDataRow(t *testing.T) {
	text := `<b>Orders</b></div></th></tr>` +
		`<tr bgcolor="#E5F0FC"><td><b>Open Time</b></td><td><b>Order</b></td><td><b>Symbol</b></td><td><b>Type</b></td><td><b>State</b></td></tr>` +
		`<tr><td>2024.01.02</td><td>7</td><td>XAUUSD</td><td>sell</td><td>filled</td></tr>` +
		`</table>`

	table := ExtractTable(text, SectionOrders)
	require.Len(t, table.Rows, 1)
	assert.Len(t, table.Rows[0], 5)
}

func TestExtractTable_DropsSparseRows(t *testing.T) {
	text := `<b>Deals</b>` +
		`<tr bgcolor="#E5F0FC"><td><b>Time</b></td><td><b>Deal</b></td><td><b>Profit</b></td></tr>` +
		`<tr><td>2024.01.02</td><td></td><td>5.00</td></tr>` +
		`<tr><td>2024.01.03</td><td>9</td><td>6.00</td></tr>` +
		`</table>`

	table := ExtractTable(text, SectionDeals)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "9", table.Rows[0][1])
}

func TestExtractTable_DropsDecorativeRows(t *testing.T) {
	text := `<b>Deals</b>` +
		`<tr bgcolor="#E5F0FC"><td><b>A</b></td><td><b>B</b></td><td><b>C</b></td></tr>` +
		`<tr style="height:10px"><td>1</td><td>2</td><td>3</td></tr>` +
		`<tr><td style="height: 10px">1</td><td>2</td><td>3</td></tr>` +
		`<tr><td><div>1</div></td><td>2</td><td>3</td></tr>` +
		`<tr><td bgcolor="#E5F0FC">x</td><td>y</td><td>z</td></tr>` +
		`<tr><td>4</td><td>5</td><td>6</td></tr>` +
		`</table>`

	table := ExtractTable(text, SectionDeals)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"4", "5", "6"}, table.Rows[0])
}

func TestExtractTable_RepeatedHeaderPrefix(t *testing.T) {
	text := `<b>Orders</b>` +
		`<tr bgcolor="#E5F0FC"><td><b>A</b></td><td><b>B</b></td><td><b>C</b></td></tr>` +
		`<tr><td>A</td><td>B</td><td>C</td><td>extra</td></tr>` +
		`<tr><td>A</td><td>B</td><td>D</td></tr>` +
		`</table>`

	table := ExtractTable(text, SectionOrders)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"A", "B", "D"}, table.Rows[0])
}

func TestExtractTable_ScopedToFirstTableClose(t *testing.T) {
	text := `<b>Orders</b><tr><td>1</td><td>2</td><td>3</td></tr></table>` +
		`<table><tr><td>4</td><td>5</td><td>6</td></tr></table>`

	table := ExtractTable(text, SectionOrders)
	assert.Empty(t, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1", "2", "3"}, table.Rows[0])
}

func TestExtractTable_MissingSection(t *testing.T) {
	table := ExtractTable(`<b>Order</b><tr><td>1</td><td>2</td><td>3</td></tr></table>`, SectionOrders)
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)
	assert.True(t, table.IsEmpty())
}
