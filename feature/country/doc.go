// Package country normalizes player nationality strings to canonical
// English country names.
//
// The upstream sources disagree on spelling: FBRef emits "eng" style
// trigram codes, Transfermarkt emits full names with ISO quirks like
// "Korea, South" or "Türkiye". Normalization is a single hand-maintained
// alias table keyed by the lowercased raw string; anything the table does
// not know passes through unchanged so new nationalities never break the
// pipeline.
package country
