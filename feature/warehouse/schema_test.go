package warehouse

import (
	"testing"

	"championship-pipeline/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferColumnKinds(t *testing.T) {
	tab := table.New("club", "pts", "xg", "fee_eur", "notes")
	require.NoError(t, tab.AppendRow("Leeds United", "100", "87.2", "", ""))
	require.NoError(t, tab.AppendRow("Burnley", "100", "64.8", "0", ""))

	kinds := InferColumnKinds(tab)
	assert.Equal(t, KindText, kinds["club"])
	assert.Equal(t, KindDouble, kinds["pts"])
	assert.Equal(t, KindDouble, kinds["xg"])
	assert.Equal(t, KindDouble, kinds["fee_eur"], "empty cells do not veto a numeric column")
	assert.Equal(t, KindText, kinds["notes"], "all-empty columns stay text")
}

func TestInferColumnKinds_MixedIsText(t *testing.T) {
	tab := table.New("age")
	require.NoError(t, tab.AppendRow("23"))
	require.NoError(t, tab.AppendRow("23-145"))

	kinds := InferColumnKinds(tab)
	assert.Equal(t, KindText, kinds["age"])
}

func TestCreateTableSQL(t *testing.T) {
	kinds := map[string]ColumnKind{"club_id": KindDouble, "club": KindText, "g+a": KindDouble}
	sql := CreateTableSQL("league_table_enhanced_2024_25", []string{"club_id", "club", "g+a"}, kinds)
	assert.Equal(t,
		"CREATE TABLE `league_table_enhanced_2024_25` (`club_id` DOUBLE, `club` VARCHAR(512), `g+a` DOUBLE)",
		sql)
}

func TestDropTableSQL(t *testing.T) {
	assert.Equal(t, "DROP TABLE IF EXISTS `player_stats_semantic_2024_25`",
		DropTableSQL("player_stats_semantic_2024_25"))
}

func TestInsertSQL(t *testing.T) {
	sql := InsertSQL("t", []string{"a", "b"}, 2)
	assert.Equal(t, "INSERT INTO `t` (`a`, `b`) VALUES (?, ?), (?, ?)", sql)
}

func TestRowArgs(t *testing.T) {
	tab := table.New("club", "pts", "note")
	require.NoError(t, tab.AppendRow("Leeds United", "100", ""))

	kinds := map[string]ColumnKind{"club": KindText, "pts": KindDouble, "note": KindText}
	args := rowArgs(tab, 0, tab.Columns(), kinds)
	assert.Equal(t, []any{"Leeds United", float64(100), nil}, args)
}
