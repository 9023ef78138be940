package fbref

import (
	"strconv"
	"strings"

	"championship-pipeline/core/table"
)

// playerRenames maps FBRef data-stat keys to the tidy player schema.
var playerRenames = map[string]string{
	"ranker":      "rk",
	"player":      "player",
	"nationality": "nation",
	"position":    "pos",
	"team":        "squad",
	"age":         "age",
	"birth_year":  "born",

	"games":        "mp",
	"games_starts": "starts",
	"minutes":      "min",
	"minutes_90s":  "90s",

	"goals":         "gls",
	"assists":       "ast",
	"goals_assists": "g+a",
	"goals_pens":    "g-pk",
	"pens_made":     "pk",
	"pens_att":      "pkatt",
	"cards_yellow":  "crdy",
	"cards_red":     "crdr",

	"xg":             "xg",
	"npxg":           "npxg",
	"xg_assist":      "xag",
	"npxg_xg_assist": "npxg+xag",

	"progressive_carries":         "prgc",
	"progressive_passes":          "prgp",
	"progressive_passes_received": "prgr",

	"goals_per90":              "p90_gls",
	"assists_per90":            "p90_ast",
	"goals_assists_per90":      "p90_g+a",
	"goals_pens_per90":         "p90_g-pk",
	"goals_assists_pens_per90": "p90_g+a-pk",
	"xg_per90":                 "p90_xg",
	"xg_assist_per90":          "p90_xag",
	"xg_xg_assist_per90":       "p90_xg+xag",
	"npxg_per90":               "p90_npxg",
	"npxg_xg_assist_per90":     "p90_npxg+xag",

	"matches": "matches",
}

var playerOrder = []string{
	"rk", "player", "nation", "pos", "squad", "age", "born",
	"mp", "starts", "min", "90s",
	"gls", "ast", "g+a", "g-pk", "pk", "pkatt", "crdy", "crdr",
	"xg", "npxg", "xag", "npxg+xag",
	"prgc", "prgp", "prgr",
	"p90_gls", "p90_ast", "p90_g+a", "p90_g-pk", "p90_g+a-pk",
	"p90_xg", "p90_xag", "p90_xg+xag", "p90_npxg", "p90_npxg+xag",
	"matches",
}

var playerTextCols = map[string]bool{
	"player": true, "nation": true, "pos": true, "squad": true, "matches": true,
}

// squadRenames maps FBRef data-stat keys to the tidy squad schema.
var squadRenames = map[string]string{
	"team":         "squad",
	"players_used": "players",
	"players":      "players",
	"avg_age":      "age",
	"possession":   "poss",

	"games":        "mp",
	"games_starts": "starts",
	"minutes":      "min",
	"minutes_90s":  "90s",

	"goals":         "gls",
	"assists":       "ast",
	"goals_assists": "g+a",
	"goals_pens":    "g-pk",
	"pens_made":     "pk",
	"pens_att":      "pkatt",
	"cards_yellow":  "crdy",
	"cards_red":     "crdr",

	"xg":             "xg",
	"npxg":           "npxg",
	"xg_assist":      "xag",
	"npxg_xg_assist": "npxg+xag",

	"progressive_carries":         "prgc",
	"progressive_passes":          "prgp",
	"progressive_passes_received": "prgr",

	"goals_per90":              "p90_gls",
	"assists_per90":            "p90_ast",
	"goals_assists_per90":      "p90_g+a",
	"goals_pens_per90":         "p90_g-pk",
	"goals_assists_pens_per90": "p90_g+a-pk",
	"xg_per90":                 "p90_xg",
	"xg_assist_per90":          "p90_xag",
	"xg_xg_assist_per90":       "p90_xg+xag",
	"npxg_per90":               "p90_npxg",
	"npxg_xg_assist_per90":     "p90_npxg+xag",
}

var squadOrder = []string{
	"squad", "players", "age", "poss",
	"mp", "starts", "min", "90s",
	"gls", "ast", "g+a", "g-pk", "pk", "pkatt", "crdy", "crdr",
	"xg", "npxg", "xag", "npxg+xag",
	"prgc", "prgp", "prgr",
	"p90_gls", "p90_ast", "p90_g+a", "p90_g-pk", "p90_g+a-pk",
	"p90_xg", "p90_xag", "p90_xg+xag", "p90_npxg", "p90_npxg+xag",
}

var squadTextCols = map[string]bool{"squad": true}

// normalizeNation reduces FBRef's "us USA" flag-plus-code cells to the
// upper-cased trigram.
func normalizeNation(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[len(fields)-1])
}

// cleanNumeric strips thousands separators and blanks anything that is not a
// number, mirroring a coercing numeric parse.
func cleanNumeric(raw string) string {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return ""
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return ""
	}
	return s
}

// tidyColumns renames raw data-stat keys and resolves the final column order:
// the desired schema first, then any unmapped keys in first-seen order.
func tidyColumns(parsed *rows, renames map[string]string, order []string) ([]string, map[string]string) {
	renamed := make(map[string]string, len(parsed.keys))
	present := make(map[string]bool, len(parsed.keys))
	for _, key := range parsed.keys {
		name := key
		if mapped, ok := renames[key]; ok {
			name = mapped
		}
		renamed[key] = name
		present[name] = true
	}

	var cols []string
	taken := make(map[string]bool)
	for _, name := range order {
		if present[name] && !taken[name] {
			cols = append(cols, name)
			taken[name] = true
		}
	}
	for _, key := range parsed.keys {
		name := renamed[key]
		if !taken[name] {
			cols = append(cols, name)
			taken[name] = true
		}
	}
	return cols, renamed
}

func tidyPlayers(parsed *rows) (*table.Table, error) {
	cols, renamed := tidyColumns(parsed, playerRenames, playerOrder)
	out := table.New(cols...)
	for _, rec := range parsed.records {
		row := make(map[string]string, len(rec))
		for key, value := range rec {
			name := renamed[key]
			switch {
			case name == "nation":
				row[name] = normalizeNation(value)
			case playerTextCols[name]:
				row[name] = value
			default:
				row[name] = cleanNumeric(value)
			}
		}
		out.AppendRecord(row)
	}
	return out, nil
}

func tidySquads(parsed *rows) (*table.Table, error) {
	cols, renamed := tidyColumns(parsed, squadRenames, squadOrder)
	out := table.New(cols...)
	for _, rec := range parsed.records {
		row := make(map[string]string, len(rec))
		for key, value := range rec {
			name := renamed[key]
			if squadTextCols[name] {
				row[name] = value
			} else {
				row[name] = cleanNumeric(value)
			}
		}
		out.AppendRecord(row)
	}
	return out, nil
}
