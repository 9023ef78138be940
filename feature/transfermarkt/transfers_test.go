package transfermarkt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transfersHTML = `<html><body>
<div class="box">
<h2><a href="/leeds-united/">Leeds United</a></h2>
<div class="responsive-table">
<table>
<thead><tr><th>In</th><th>Age</th><th>Nat.</th><th>Position</th><th></th><th>Market value</th><th>Left</th><th>Fee</th></tr></thead>
<tbody>
<tr>
  <td class="hauptlink"><a href="/manor-solomon/">Manor Solomon</a></td>
  <td class="zentriert alter-transfer-cell">25</td>
  <td class="zentriert nat-transfer-cell"><img title="Israel" alt="Israel" src="isr.png"/></td>
  <td class="kurzpos-transfer-cell zentriert">LW</td>
  <td class="pos-transfer-cell">Left Winger</td>
  <td class="rechts mw-transfer-cell">€15.00m</td>
  <td class="no-border-links verein-flagge-transfer-cell"><a href="/tottenham/">Tottenham</a></td>
  <td class="rechts">Loan fee: €500k</td>
</tr>
<tr>
  <td class="hauptlink"><a>Joe Rothwell</a></td>
  <td class="zentriert alter-transfer-cell">29</td>
  <td class="zentriert nat-transfer-cell"><img alt="England" src="eng.png"/></td>
  <td class="kurzpos-transfer-cell zentriert">CM</td>
  <td class="rechts mw-transfer-cell">€5.00m</td>
  <td class="no-border-links verein-flagge-transfer-cell"><a>Bournemouth</a></td>
  <td class="rechts">-</td>
</tr>
<tr>
  <td colspan="8">Average age of arrivals: 26.1</td>
</tr>
</tbody>
</table>
</div>
<div class="responsive-table">
<table>
<thead><tr><th>Out</th><th>Age</th><th>Nat.</th><th>Position</th><th></th><th>Market value</th><th>Joined</th><th>Fee</th></tr></thead>
<tbody>
<tr>
  <td class="hauptlink"><a href="/crysencio-summerville/">Crysencio Summerville</a></td>
  <td class="zentriert alter-transfer-cell">22</td>
  <td class="zentriert nat-transfer-cell"><img title="Netherlands" src="ned.png"/></td>
  <td class="kurzpos-transfer-cell zentriert">RW</td>
  <td class="rechts mw-transfer-cell">€32.00m</td>
  <td class="no-border-links verein-flagge-transfer-cell"><a>West Ham</a></td>
  <td class="rechts">€27.00m</td>
</tr>
</tbody>
</table>
</div>
</div>
<div class="box">
<h2>Burnley FC</h2>
<div class="responsive-table">
<table>
<thead><tr><th>In</th><th>Age</th><th>Nat.</th><th>Position</th><th></th><th>Market value</th><th>Left</th><th>Fee</th></tr></thead>
<tbody>
<tr>
  <td class="hauptlink"><a>Jaidon Anthony</a></td>
  <td class="zentriert alter-transfer-cell">24</td>
  <td class="zentriert nat-transfer-cell"><img title="England" src="eng.png"/></td>
  <td class="kurzpos-transfer-cell zentriert">LW</td>
  <td class="rechts mw-transfer-cell">€8.00m</td>
  <td class="no-border-links verein-flagge-transfer-cell"><a>Bournemouth</a></td>
  <td class="rechts">Loan</td>
</tr>
</tbody>
</table>
</div>
</div>
</body></html>`

func TestParseTransfers(t *testing.T) {
	in, out, err := ParseTransfers(strings.NewReader(transfersHTML))
	require.NoError(t, err)

	require.Equal(t, 3, in.Len(), "average age footer rows are dropped")
	require.Equal(t, 1, out.Len())

	assert.Equal(t, []string{"Club", "In", "Age", "Nationality", "Position", "Market value", "Left", "Fee"}, in.Columns())
	assert.Equal(t, []string{"Club", "Out", "Age", "Nationality", "Position", "Market value", "Joined", "Fee"}, out.Columns())

	assert.Equal(t, "Leeds United", in.Get(0, ColTransferClub))
	assert.Equal(t, "Manor Solomon", in.Get(0, ColIn))
	assert.Equal(t, "25", in.Get(0, ColAge))
	assert.Equal(t, "Israel", in.Get(0, ColNationality))
	assert.Equal(t, "LW", in.Get(0, ColPosition), "short position wins over long form")
	assert.Equal(t, "€15.00m", in.Get(0, ColMarketValue))
	assert.Equal(t, "Tottenham", in.Get(0, ColLeft))
	assert.Equal(t, "Loan fee: €500k", in.Get(0, ColFee))

	assert.Equal(t, "England", in.Get(1, ColNationality), "alt text is the fallback for missing title")
	assert.Equal(t, "-", in.Get(1, ColFee))

	assert.Equal(t, "Burnley FC", in.Get(2, ColTransferClub), "club header carries to the next block")
	assert.Equal(t, "Jaidon Anthony", in.Get(2, ColIn))

	assert.Equal(t, "Leeds United", out.Get(0, ColTransferClub))
	assert.Equal(t, "Crysencio Summerville", out.Get(0, ColOut))
	assert.Equal(t, "West Ham", out.Get(0, ColJoined))
	assert.Equal(t, "€27.00m", out.Get(0, ColFee))
}

func TestParseTransfers_EmptyPage(t *testing.T) {
	in, out, err := ParseTransfers(strings.NewReader("<html><body><p>offseason</p></body></html>"))
	require.NoError(t, err)
	assert.Equal(t, 0, in.Len())
	assert.Equal(t, 0, out.Len())
}

func TestParseTransfers_BlockWithoutHeaderIsSkipped(t *testing.T) {
	page := `<html><body>
<div class="responsive-table"><table>
<thead><tr><th>In</th></tr></thead>
<tbody><tr><td class="hauptlink"><a>Ghost Player</a></td></tr></tbody>
</table></div>
</body></html>`

	in, out, err := ParseTransfers(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, 0, in.Len())
	assert.Equal(t, 0, out.Len())
}
