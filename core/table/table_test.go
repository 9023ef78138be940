package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRow_LengthMismatch(t *testing.T) {
	tbl := New("a", "b")
	err := tbl.AppendRow("1")
	assert.Error(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestAppendRecord_MissingKeysAreEmpty(t *testing.T) {
	tbl := New("club", "pts")
	tbl.AppendRecord(map[string]string{"club": "Leeds"})

	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, "Leeds", tbl.Get(0, "club"))
	assert.Equal(t, "", tbl.Get(0, "pts"))
}

func TestAddDropRenameColumn(t *testing.T) {
	tbl := New("club")
	require.NoError(t, tbl.AppendRow("Leeds"))
	require.NoError(t, tbl.AppendRow("Burnley"))

	require.NoError(t, tbl.AddColumn("pts", []string{"100", "80"}))
	assert.Equal(t, []string{"club", "pts"}, tbl.Columns())
	assert.Equal(t, "80", tbl.Get(1, "pts"))

	// Duplicate and length mismatches are rejected
	assert.Error(t, tbl.AddColumn("pts", []string{"1", "2"}))
	assert.Error(t, tbl.AddColumn("gd", []string{"1"}))

	tbl.RenameColumn("pts", "points")
	assert.True(t, tbl.HasColumn("points"))
	assert.False(t, tbl.HasColumn("pts"))

	tbl.DropColumn("club")
	assert.Equal(t, []string{"points"}, tbl.Columns())
	assert.Equal(t, "100", tbl.Get(0, "points"))

	// Dropping an absent column is a no-op
	tbl.DropColumn("club")
	assert.Equal(t, []string{"points"}, tbl.Columns())
}

func TestReorder(t *testing.T) {
	tbl := New("pts", "club", "gd")
	require.NoError(t, tbl.AppendRow("100", "Leeds", "66"))

	tbl.Reorder("club", "missing")
	assert.Equal(t, []string{"club", "pts", "gd"}, tbl.Columns())
	assert.Equal(t, "Leeds", tbl.Get(0, "club"))
	assert.Equal(t, "100", tbl.Get(0, "pts"))
	assert.Equal(t, "66", tbl.Get(0, "gd"))
}

func TestJoinLeft(t *testing.T) {
	left := New("club_id", "club")
	require.NoError(t, left.AppendRow("1", "Leeds United"))
	require.NoError(t, left.AppendRow("2", "Burnley"))
	require.NoError(t, left.AppendRow("3", "Sunderland"))

	right := New("club_id", "net_spend_eur")
	require.NoError(t, right.AppendRow("1", "5000000"))
	require.NoError(t, right.AppendRow("2", "-1000000"))

	joined, err := left.JoinLeft(right, "club_id")
	require.NoError(t, err)
	assert.Equal(t, []string{"club_id", "club", "net_spend_eur"}, joined.Columns())
	assert.Equal(t, "5000000", joined.Get(0, "net_spend_eur"))
	assert.Equal(t, "-1000000", joined.Get(1, "net_spend_eur"))
	// Unmatched rows get empty cells
	assert.Equal(t, "", joined.Get(2, "net_spend_eur"))
}

func TestJoinLeft_Errors(t *testing.T) {
	left := New("club_id", "pts")
	right := New("club_id", "pts")

	_, err := left.JoinLeft(right, "missing")
	assert.Error(t, err)

	// Overlapping non-key column
	_, err = left.JoinLeft(right, "club_id")
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	tbl := New("club", "pts")
	require.NoError(t, tbl.AppendRow("Leeds United", "100"))
	require.NoError(t, tbl.AppendRow("Burnley", "100"))

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))

	parsed, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.True(t, tbl.Equal(parsed))
}

func TestWriteCSV_ByteStable(t *testing.T) {
	tbl := New("club", "pts")
	require.NoError(t, tbl.AppendRow("Leeds United", "100"))

	var a, b bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&a))
	require.NoError(t, tbl.WriteCSV(&b))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestReadCSV_RaggedRow(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1\n"))
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	a := New("x")
	require.NoError(t, a.AppendRow("1"))
	b := a.Clone()
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Set(0, "x", "2"))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(New("y")))
}
