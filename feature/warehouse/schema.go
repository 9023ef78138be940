package warehouse

import (
	"fmt"
	"strconv"
	"strings"

	"championship-pipeline/core/table"
)

// ColumnKind is the inferred warehouse type of one CSV column.
type ColumnKind int

const (
	// KindText maps to VARCHAR(512).
	KindText ColumnKind = iota
	// KindDouble maps to DOUBLE.
	KindDouble
)

// InferColumnKinds decides a warehouse type per column: DOUBLE when every
// non-empty cell parses as a number and at least one cell is non-empty,
// VARCHAR otherwise. Empty cells stay NULL either way.
func InferColumnKinds(t *table.Table) map[string]ColumnKind {
	kinds := make(map[string]ColumnKind, len(t.Columns()))
	for _, col := range t.Columns() {
		kinds[col] = inferKind(t.Column(col))
	}
	return kinds
}

func inferKind(values []string) ColumnKind {
	nonEmpty := 0
	for _, v := range values {
		if v == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return KindText
		}
	}
	if nonEmpty == 0 {
		return KindText
	}
	return KindDouble
}

// quoteIdent backtick-quotes an identifier for MySQL. Curated column names
// carry characters like '#' and '+', so quoting is not optional.
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// CreateTableSQL renders the DDL for one curated table.
func CreateTableSQL(name string, cols []string, kinds map[string]ColumnKind) string {
	defs := make([]string, 0, len(cols))
	for _, col := range cols {
		typ := "VARCHAR(512)"
		if kinds[col] == KindDouble {
			typ = "DOUBLE"
		}
		defs = append(defs, fmt.Sprintf("%s %s", quoteIdent(col), typ))
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), strings.Join(defs, ", "))
}

// DropTableSQL renders the DROP statement preceding a full reload.
func DropTableSQL(name string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdent(name))
}

// InsertSQL renders a multi-row INSERT with one placeholder per cell.
func InsertSQL(name string, cols []string, rowCount int) string {
	quoted := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = quoteIdent(col)
	}
	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"
	rows := make([]string, rowCount)
	for i := range rows {
		rows[i] = row
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		quoteIdent(name), strings.Join(quoted, ", "), strings.Join(rows, ", "))
}

// rowArgs converts one table row into insert arguments: empty cells become
// NULL, numeric columns are bound as floats.
func rowArgs(t *table.Table, row int, cols []string, kinds map[string]ColumnKind) []any {
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		v := t.Get(row, col)
		switch {
		case v == "":
			args = append(args, nil)
		case kinds[col] == KindDouble:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				args = append(args, v)
			} else {
				args = append(args, f)
			}
		default:
			args = append(args, v)
		}
	}
	return args
}
