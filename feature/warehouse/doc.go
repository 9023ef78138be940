// Package warehouse loads curated tables from object storage into MySQL.
//
// Each curated CSV becomes one warehouse table named after the object's base
// name. Loads are full replacements: the table is dropped, recreated with
// inferred column types (DOUBLE for all-numeric columns, VARCHAR otherwise)
// and repopulated inside a single transaction, so readers never observe a
// half-loaded season.
package warehouse
