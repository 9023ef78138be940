// Package database manages the connection to the MySQL warehouse that the
// load stage writes curated tables into.
package database
