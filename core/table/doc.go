// Package table provides the in-memory tabular structure passed between
// pipeline stages.
//
// A Table is an ordered set of named columns over string-typed cells, which
// matches the CSV files the pipeline reads and writes; numeric interpretation
// is left to the consumers that need it (curated aggregation, warehouse type
// inference).
//
// # Operations
//
// Tables support the column operations the transform stage needs:
//   - AddColumn / DropColumn / RenameColumn
//   - Reorder (move key columns to the front)
//   - JoinLeft (merge another table on a shared key column)
//   - CSV encoding and decoding with byte-stable output
//
// Tables are not safe for concurrent mutation; the pipeline builds each table
// in a single goroutine.
package table
