package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Table is an ordered collection of named string columns.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]string
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	t := &Table{
		cols:  append([]string(nil), columns...),
		index: make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		t.index[c] = i
	}
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow appends a row of positional values.
func (t *Table) AppendRow(values ...string) error {
	if len(values) != len(t.cols) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.cols))
	}
	t.rows = append(t.rows, append([]string(nil), values...))
	return nil
}

// AppendRecord appends a row from a column-name keyed record.
// Columns absent from the record are filled with the empty string.
func (t *Table) AppendRecord(rec map[string]string) {
	row := make([]string, len(t.cols))
	for i, c := range t.cols {
		row[i] = rec[c]
	}
	t.rows = append(t.rows, row)
}

// Get returns the cell at the given row for the named column.
// It returns the empty string if the column does not exist.
func (t *Table) Get(row int, col string) string {
	i, ok := t.index[col]
	if !ok {
		return ""
	}
	return t.rows[row][i]
}

// Set overwrites the cell at the given row for the named column.
func (t *Table) Set(row int, col, value string) error {
	i, ok := t.index[col]
	if !ok {
		return fmt.Errorf("table has no column %q", col)
	}
	t.rows[row][i] = value
	return nil
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) []string {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	out := make([]string, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out
}

// AddColumn appends a new column with one value per existing row.
func (t *Table) AddColumn(name string, values []string) error {
	if _, ok := t.index[name]; ok {
		return fmt.Errorf("table already has column %q", name)
	}
	if len(values) != len(t.rows) {
		return fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), len(t.rows))
	}
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, name)
	for r := range t.rows {
		t.rows[r] = append(t.rows[r], values[r])
	}
	return nil
}

// DropColumn removes the named column. Dropping an absent column is a no-op.
func (t *Table) DropColumn(name string) {
	i, ok := t.index[name]
	if !ok {
		return
	}
	t.cols = append(t.cols[:i], t.cols[i+1:]...)
	for r := range t.rows {
		t.rows[r] = append(t.rows[r][:i], t.rows[r][i+1:]...)
	}
	t.index = make(map[string]int, len(t.cols))
	for j, c := range t.cols {
		t.index[c] = j
	}
}

// RenameColumn renames a column in place. Renaming an absent column is a no-op.
func (t *Table) RenameColumn(oldName, newName string) {
	i, ok := t.index[oldName]
	if !ok || oldName == newName {
		return
	}
	t.cols[i] = newName
	delete(t.index, oldName)
	t.index[newName] = i
}

// Reorder moves the named columns to the front, keeping the relative order of
// the remaining columns. Unknown names are ignored.
func (t *Table) Reorder(front ...string) {
	wanted := make([]string, 0, len(t.cols))
	seen := make(map[string]bool, len(front))
	for _, c := range front {
		if t.HasColumn(c) && !seen[c] {
			wanted = append(wanted, c)
			seen[c] = true
		}
	}
	for _, c := range t.cols {
		if !seen[c] {
			wanted = append(wanted, c)
		}
	}

	perm := make([]int, len(wanted))
	for i, c := range wanted {
		perm[i] = t.index[c]
	}
	for r, row := range t.rows {
		next := make([]string, len(row))
		for i, src := range perm {
			next[i] = row[src]
		}
		t.rows[r] = next
	}
	t.cols = wanted
	t.index = make(map[string]int, len(t.cols))
	for j, c := range t.cols {
		t.index[c] = j
	}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := New(t.cols...)
	for _, row := range t.rows {
		c.rows = append(c.rows, append([]string(nil), row...))
	}
	return c
}

// Equal reports whether two tables have identical columns and cells.
func (t *Table) Equal(o *Table) bool {
	if o == nil || len(t.cols) != len(o.cols) || len(t.rows) != len(o.rows) {
		return false
	}
	for i, c := range t.cols {
		if o.cols[i] != c {
			return false
		}
	}
	for r, row := range t.rows {
		for i, v := range row {
			if o.rows[r][i] != v {
				return false
			}
		}
	}
	return true
}

// JoinLeft merges the other table into a copy of this one, matching rows by
// the shared key column. All non-key columns of the other table are appended;
// rows without a match get empty cells. Duplicate keys in the other table keep
// the first occurrence.
func (t *Table) JoinLeft(other *Table, on string) (*Table, error) {
	if !t.HasColumn(on) {
		return nil, fmt.Errorf("left table has no column %q", on)
	}
	if !other.HasColumn(on) {
		return nil, fmt.Errorf("right table has no column %q", on)
	}

	extra := make([]string, 0, len(other.cols))
	for _, c := range other.cols {
		if c == on {
			continue
		}
		if t.HasColumn(c) {
			return nil, fmt.Errorf("column %q exists in both tables", c)
		}
		extra = append(extra, c)
	}

	lookup := make(map[string]int, other.Len())
	for r := 0; r < other.Len(); r++ {
		key := other.Get(r, on)
		if _, ok := lookup[key]; !ok {
			lookup[key] = r
		}
	}

	out := New(append(t.Columns(), extra...)...)
	for r := 0; r < t.Len(); r++ {
		row := append([]string(nil), t.rows[r]...)
		if or, ok := lookup[t.Get(r, on)]; ok {
			for _, c := range extra {
				row = append(row, other.Get(or, c))
			}
		} else {
			for range extra {
				row = append(row, "")
			}
		}
		out.rows = append(out.rows, row)
	}
	return out, nil
}

// WriteCSV encodes the table as CSV with a header row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.cols); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV decodes a CSV document with a header row into a table.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	t := New(header...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if err := t.AppendRow(rec...); err != nil {
			return nil, err
		}
	}
	return t, nil
}
