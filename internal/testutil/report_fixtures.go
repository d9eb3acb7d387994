// Package testutil holds report fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
)

// SampleReport is a trimmed tester report with the same markup the terminal
// generates: a settings block, a results block using both column-span
// layouts, and separate Orders and Deals tables with spacer, repeated-header
// and totals rows.
const SampleReport = `<html>
<head><title>Strategy Tester Report</title></head>
<body>
<table width="1200" cellspacing="1" cellpadding="3" border="0">
<tr><td colspan="13" align="center"><div style="font: 20pt Tahoma"><b>Strategy Tester Report</b></div></td></tr>
<tr><td colspan="13" align="center"><b>MetaQuotes-Demo (Build 4410)</b></td></tr>
<tr><td colspan="13" style="height: 10px"></td></tr>
<tr align="left"><td nowrap colspan="3" align="right">Expert:</td><td nowrap colspan="10" align="left"><b>MovingAverage</b></td></tr>
<tr align="left"><td nowrap colspan="3" align="right">Symbol:</td><td nowrap colspan="10" align="left"><b>EURUSD</b></td></tr>
<tr align="left"><td nowrap colspan="3" align="right">Period:</td><td nowrap colspan="10" align="left"><b>H1 (2024.01.01 - 2024.06.30)</b></td></tr>
<tr align="left"><td nowrap colspan="3" align="right">Inputs:</td><td nowrap colspan="10" align="left"><b>MaximumRisk=0.02</b></td></tr>
<tr align="left"><td nowrap colspan="3" align="right">Company:</td><td nowrap colspan="10" align="left"><b>MetaQuotes Ltd.</b></td></tr>
<tr align="left"><td nowrap colspan="3" align="right">Currency:</td><td nowrap colspan="10" align="left"><b>USD</b></td></tr>
<tr align="left"><td nowrap colspan="3" align="right">Initial Deposit:</td><td nowrap colspan="10" align="left"><b>10&nbsp;000.00</b></td></tr>
<tr align="left"><td nowrap colspan="3" align="right">Leverage:</td><td nowrap colspan="10" align="left"><b>1:100</b></td></tr>
<tr><td colspan="13" style="height: 10px"></td></tr>
<tr align="right"><td nowrap colspan="3">History Quality:</td><td nowrap><b>100%</b></td><td nowrap colspan="3">Bars:</td><td nowrap><b>3000</b></td><td nowrap colspan="3">Ticks:</td><td nowrap><b>1200000</b></td></tr>
<tr align="right"><td nowrap colspan="3">Total Net Profit:</td><td nowrap><b>1 234.56</b></td><td nowrap colspan="3">Balance Drawdown Absolute:</td><td nowrap><b>12.00</b></td></tr>
<tr align="right"><td nowrap colspan="3">Total Trades:</td><td nowrap><b>42</b></td><td nowrap colspan="3">Short Trades (won %):</td><td nowrap colspan="2"><b>20 (55.00%)</b></td></tr>
<tr align="right"><td nowrap colspan="3">Correlation (Profits,MFE):</td><td nowrap><b>0.85</b></td><td nowrap colspan="3">Correlation (Profits, MFE):</td><td nowrap><b>0.85</b></td></tr>
<tr align="right"><td nowrap colspan="3">Minimal position holding time:</td><td nowrap><b>0:05:00</b></td><td nowrap colspan="3">Custom Metric:</td><td nowrap><b>7</b></td><td nowrap colspan="3">Blank Metric:</td><td nowrap><b></b></td></tr>
</table>
<table width="1200" cellspacing="1" cellpadding="3" border="0">
<tr align="center"><th colspan="13" style="height: 25px"><div style="font: 10pt Tahoma"><b>Orders</b></div></th></tr>
<tr bgcolor="#E5F0FC" align="center"><td nowrap><b>Open Time</b></td><td nowrap><b>Order</b></td><td nowrap><b>Symbol</b></td><td nowrap><b>Type</b></td><td nowrap><b>Volume</b></td></tr>
<tr bgcolor="#FFFFFF" align="right"><td>2024.01.02 10:00:00</td><td>2</td><td>EURUSD</td><td>buy</td><td>0.10 / 0.10</td></tr>
<tr bgcolor="#F7F7F7" align="right"><td>2024.01.03 11:00:00</td><td>3</td><td></td><td></td><td></td></tr>
<tr align="right"><td><b>Open Time</b></td><td><b>Order</b></td><td><b>Symbol</b></td><td><b>Type</b></td><td><b>Volume</b></td></tr>
<tr bgcolor="#FFFFFF" align="right"><td>2024.01.04 09:00:00</td><td>4</td><td>EURUSD</td><td>sell &amp; close</td></tr>
</table>
<table width="1200" cellspacing="1" cellpadding="3" border="0">
<tr align="center"><th colspan="13" style="height: 25px"><div style="font: 10pt Tahoma"><b>Deals</b></div></th></tr>
<tr bgcolor="#E5F0FC" align="center"><td nowrap><b>Time</b></td><td nowrap><b>Deal</b></td><td nowrap><b>Symbol</b></td><td nowrap><b>Type</b></td><td nowrap><b>Profit</b></td><td nowrap><b>Balance</b></td></tr>
<tr bgcolor="#FFFFFF" align="right"><td>2024.01.01 00:00:00</td><td>1</td><td></td><td>balance</td><td>0.00</td><td>10 000.00</td></tr>
<tr bgcolor="#F7F7F7" align="right"><td>2024.01.02 10:00:00</td><td>2</td><td>EURUSD</td><td>buy</td><td><b>-1.50</b> incl. commission</td><td>9 998.50</td></tr>
<tr><td colspan="6" style="height: 10px"></td></tr>
<tr bgcolor="#F7F7F7" align="right"><td colspan="4"></td><td><b>12.00</b></td><td><b>10 012.00</b></td></tr>
</table>
</body>
</html>
`

// EmptyReport is the smallest document that trips the empty report check.
const EmptyReport = `Expert:</td><td><b>MyEA</b>` +
	`Initial Deposit:</td><td><b>0</b>` +
	`Total Trades:</td><td><b>0</b>`

// EncodeUTF16 encodes s the way the terminal exports reports: UTF-16LE with a BOM.
func EncodeUTF16(s string) ([]byte, error) {
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(s)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// WriteReport writes raw to dir/name and returns the full path.
func WriteReport(dir, name string, raw []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", err
	}
	return path, nil
}
