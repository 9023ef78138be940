// Package curated builds the semantic tables of the transform stage.
//
// Inputs are the raw extracts (FBRef player and squad stats, Transfermarkt
// league table and transfer windows). Outputs carry canonical club identity:
// every table gets club_id and the canonical club name in front, raw club
// spellings are dropped, transfer fees are parsed to EUR, and the league
// table is enhanced with squad stats and transfer-window aggregates.
package curated
