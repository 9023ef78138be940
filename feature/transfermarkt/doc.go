// Package transfermarkt scrapes the Championship league table and transfer
// windows from Transfermarkt.
//
// Transfermarkt's robots.txt permits generic user agents on these pages; the
// client still identifies itself, applies a per-request timeout and sleeps a
// polite delay between requests. Three tables come out of the extract: the
// league table (from the tabelle page) and the transfers-in/transfers-out
// tables (from the transfers page, one In and one Out block per club).
package transfermarkt
