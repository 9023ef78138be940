package curated

import (
	"testing"

	"championship-pipeline/core/table"
	"championship-pipeline/feature/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	reg, err := registry.NewChampionship2024_25()
	require.NoError(t, err)
	return NewBuilder(reg, zap.NewNop())
}

func TestBuilderPlayerStats(t *testing.T) {
	b := newTestBuilder(t)

	players := table.New("rk", "player", "nation", "pos", "squad", "gls")
	require.NoError(t, players.AppendRow("1", "Joel Piroe", "NED", "FW", "Leeds United", "19"))
	require.NoError(t, players.AppendRow("2", "Josh Maja", "NGA", "FW", "West Brom", "11"))

	sem, err := b.PlayerStats(players)
	require.NoError(t, err)

	assert.Equal(t, []string{"club_id", "club", "player_name", "nationality", "position", "gls"}, sem.Columns())
	assert.Equal(t, "Leeds United", sem.Get(0, "club"))
	assert.Equal(t, "Netherlands", sem.Get(0, "nationality"))
	assert.Equal(t, "West Bromwich Albion", sem.Get(1, "club"))
	assert.Equal(t, "Nigeria", sem.Get(1, "nationality"))
	assert.False(t, sem.HasColumn("squad"))
	assert.False(t, sem.HasColumn("rk"))
}

func TestBuilderPlayerStats_UnknownSquadFails(t *testing.T) {
	b := newTestBuilder(t)

	players := table.New("player", "squad")
	require.NoError(t, players.AppendRow("Ghost", "Leads Untied"))

	_, err := b.PlayerStats(players)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Leads Untied")
}

func transfersInFixture(t *testing.T) *table.Table {
	t.Helper()
	in := table.New("Club", "In", "Age", "Nationality", "Position", "Market value", "Left", "Fee")
	require.NoError(t, in.AppendRow("Leeds United", "Manor Solomon", "25", "Israel", "LW", "€15.00m", "Tottenham", "Loan fee: €500k"))
	require.NoError(t, in.AppendRow("Burnley FC", "Jaidon Anthony", "24", "eng", "LW", "€8.00m", "Watford FC", "free transfer"))
	return in
}

func TestBuilderTransfersIn(t *testing.T) {
	b := newTestBuilder(t)

	sem, err := b.TransfersIn(transfersInFixture(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"club_id", "club", "player_name", "age", "nationality",
		"position", "market_value", "from_club_name", "fee_raw", "fee_eur",
	}, sem.Columns())

	assert.Equal(t, "Leeds United", sem.Get(0, "club"))
	assert.Equal(t, "Manor Solomon", sem.Get(0, "player_name"))
	assert.Equal(t, "Israel", sem.Get(0, "nationality"))
	assert.Equal(t, "Tottenham", sem.Get(0, "from_club_name"), "non-Championship counterparties stay raw")
	assert.Equal(t, "Loan fee: €500k", sem.Get(0, "fee_raw"))
	assert.Equal(t, "500000", sem.Get(0, "fee_eur"))

	assert.Equal(t, "Burnley", sem.Get(1, "club"), "transfers alias resolves")
	assert.Equal(t, "England", sem.Get(1, "nationality"), "nationality is normalized")
	assert.Equal(t, "Watford", sem.Get(1, "from_club_name"), "Championship counterparties are standardized")
	assert.Equal(t, "0", sem.Get(1, "fee_eur"))
}

func TestBuilderTransfersOut(t *testing.T) {
	b := newTestBuilder(t)

	out := table.New("Club", "Out", "Age", "Nationality", "Position", "Market value", "Joined", "Fee")
	require.NoError(t, out.AppendRow("Leeds United", "Crysencio Summerville", "22", "Netherlands", "RW", "€32.00m", "West Ham", "€27.00m"))

	sem, err := b.TransfersOut(out)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"club_id", "club", "player_name", "age", "nationality",
		"position", "market_value", "to_club_name", "fee_raw", "fee_eur",
	}, sem.Columns())
	assert.Equal(t, "West Ham", sem.Get(0, "to_club_name"))
	assert.Equal(t, "27000000", sem.Get(0, "fee_eur"))
}

func TestBuilderLeagueEnhanced(t *testing.T) {
	b := newTestBuilder(t)

	league := table.New("#", "club", "played", "w", "d", "l", "goals", "gd", "pts")
	require.NoError(t, league.AppendRow("1", "Leeds", "46", "29", "13", "4", "95:30", "65", "100"))
	require.NoError(t, league.AppendRow("2", "Burnley", "46", "28", "16", "2", "69:16", "53", "100"))

	squad := table.New("squad", "players", "poss")
	require.NoError(t, squad.AppendRow("Leeds United", "28", "58.3"))
	require.NoError(t, squad.AppendRow("Burnley", "25", "61.0"))

	inSem, err := b.TransfersIn(transfersInFixture(t))
	require.NoError(t, err)

	outSemRaw := table.New("Club", "Out", "Age", "Nationality", "Position", "Market value", "Joined", "Fee")
	require.NoError(t, outSemRaw.AppendRow("Leeds United", "Crysencio Summerville", "22", "Netherlands", "RW", "€32.00m", "West Ham", "€27.00m"))
	outSem, err := b.TransfersOut(outSemRaw)
	require.NoError(t, err)

	enhanced, err := b.LeagueEnhanced(league, squad, inSem, outSem)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"club_id", "club", "#", "played", "w", "d", "l", "goals", "gd", "pts",
		"goals_for", "goals_against",
		"squad_players", "squad_poss",
		"transfers_in_count", "transfers_in_fees",
		"transfers_out_count", "transfers_out_fees",
		"net_spend_eur",
	}, enhanced.Columns())

	require.Equal(t, 2, enhanced.Len())

	assert.Equal(t, "Leeds United", enhanced.Get(0, "club"))
	assert.Equal(t, "95", enhanced.Get(0, "goals_for"))
	assert.Equal(t, "30", enhanced.Get(0, "goals_against"))
	assert.Equal(t, "28", enhanced.Get(0, "squad_players"))
	assert.Equal(t, "1", enhanced.Get(0, "transfers_in_count"))
	assert.Equal(t, "500000", enhanced.Get(0, "transfers_in_fees"))
	assert.Equal(t, "1", enhanced.Get(0, "transfers_out_count"))
	assert.Equal(t, "27000000", enhanced.Get(0, "transfers_out_fees"))
	assert.Equal(t, "-26500000", enhanced.Get(0, "net_spend_eur"))

	assert.Equal(t, "Burnley", enhanced.Get(1, "club"))
	assert.Equal(t, "0", enhanced.Get(1, "transfers_out_count"), "clubs without outgoings get zeros")
	assert.Equal(t, "0", enhanced.Get(1, "transfers_out_fees"))
	assert.Equal(t, "0", enhanced.Get(1, "net_spend_eur"))
}

func TestAggregateTransfers_DistinctPlayers(t *testing.T) {
	sem := table.New(registry.ColClubID, "player_name", "fee_eur")
	require.NoError(t, sem.AppendRow("8", "Manor Solomon", "500000"))
	require.NoError(t, sem.AppendRow("8", "Manor Solomon", "500000"))
	require.NoError(t, sem.AppendRow("8", "Joe Rothwell", "0"))
	require.NoError(t, sem.AppendRow("", "Unattached", "100"))

	agg := aggregateTransfers(sem, "transfers_in_count", "transfers_in_fees")
	require.Equal(t, 1, agg.Len(), "rows without club_id are excluded")
	assert.Equal(t, "2", agg.Get(0, "transfers_in_count"), "players count once")
	assert.Equal(t, "1000000", agg.Get(0, "transfers_in_fees"))
}
