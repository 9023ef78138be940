package registry

// Championship2024_25 defines the club roster and source vocabularies for the
// EFL Championship 2024/25 season.
//
// The roster is closed-world: exactly these 24 clubs exist for the season.
// Aliases are hand-maintained per source; canonical spellings are implicit
// self-aliases and only the divergent forms are listed here. The list drifts
// with promotion and relegation, so each season gets its own definition.
func Championship2024_25() Definition {
	return Definition{
		Clubs: []string{
			"Blackburn Rovers",
			"Bristol City",
			"Burnley",
			"Cardiff City",
			"Coventry City",
			"Derby County",
			"Hull City",
			"Leeds United",
			"Luton Town",
			"Middlesbrough",
			"Millwall",
			"Norwich City",
			"Oxford United",
			"Plymouth Argyle",
			"Portsmouth",
			"Preston North End",
			"Queens Park Rangers",
			"Sheffield United",
			"Sheffield Wednesday",
			"Stoke City",
			"Sunderland",
			"Swansea City",
			"Watford",
			"West Bromwich Albion",
		},
		Vocab: map[Source]map[string][]string{
			// Transfermarkt league table "club" column.
			SourceLeague: {
				"Blackburn Rovers":     {"Blackburn"},
				"Cardiff City":         {"Cardiff"},
				"Coventry City":        {"Coventry"},
				"Derby County":         {"Derby"},
				"Leeds United":         {"Leeds"},
				"Luton Town":           {"Luton"},
				"Norwich City":         {"Norwich"},
				"Plymouth Argyle":      {"Plymouth"},
				"Preston North End":    {"Preston"},
				"Queens Park Rangers":  {"QPR"},
				"Sheffield United":     {"Sheff Utd"},
				"Sheffield Wednesday":  {"Sheff Wed"},
				"Swansea City":         {"Swansea"},
				"West Bromwich Albion": {"West Brom"},
			},
			// FBRef squad standard stats "squad" column.
			SourceFBRefSquad: {
				"Blackburn Rovers":     {"Blackburn"},
				"Preston North End":    {"Preston"},
				"Queens Park Rangers":  {"QPR"},
				"Sheffield United":     {"Sheffield Utd"},
				"Sheffield Wednesday":  {"Sheffield Weds"},
				"West Bromwich Albion": {"West Brom"},
			},
			// Transfermarkt transfers "Club" column, which suffixes some
			// club names with FC/AFC.
			SourceTransfers: {
				"Burnley":       {"Burnley FC"},
				"Middlesbrough": {"Middlesbrough FC"},
				"Millwall":      {"Millwall FC"},
				"Portsmouth":    {"Portsmouth FC"},
				"Sunderland":    {"Sunderland AFC"},
				"Watford":       {"Watford FC"},
			},
		},
	}
}

// NewChampionship2024_25 builds the registry for the 2024/25 season.
// The definition is maintained by hand, so construction failures are
// programmer errors and callers may treat them as fatal.
func NewChampionship2024_25() (*Registry, error) {
	return New(Championship2024_25())
}
