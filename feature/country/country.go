package country

import "strings"

// rawToCanonical maps lowercased raw nationality strings to their canonical
// English country name. It covers the UK home nations (which have no ISO
// entry), football-federation trigrams, and the ISO long-form names the
// sources occasionally emit.
var rawToCanonical = map[string]string{
	// UK home nations, football-specific.
	"eng":              "England",
	"england":          "England",
	"sco":              "Scotland",
	"scotland":         "Scotland",
	"wal":              "Wales",
	"wales":            "Wales",
	"nir":              "Northern Ireland",
	"northern ireland": "Northern Ireland",

	// Ireland.
	"irl":                 "Republic of Ireland",
	"ireland":             "Republic of Ireland",
	"republic of ireland": "Republic of Ireland",

	// United States.
	"usa":                      "United States",
	"us":                       "United States",
	"u.s.":                     "United States",
	"united states":            "United States",
	"united states of america": "United States",

	// DR Congo vs Republic of the Congo.
	"cod":                                  "Democratic Republic of the Congo",
	"dr congo":                             "Democratic Republic of the Congo",
	"democratic republic of the congo":     "Democratic Republic of the Congo",
	"congo, democratic republic of the":    "Democratic Republic of the Congo",
	"congo, the democratic republic of the": "Democratic Republic of the Congo",
	"cgo":                                  "Republic of the Congo",
	"congo":                                "Republic of the Congo",

	// Ivory Coast.
	"civ":           "Ivory Coast",
	"ivory coast":   "Ivory Coast",
	"côte d'ivoire": "Ivory Coast",
	"cote d'ivoire": "Ivory Coast",

	// The Gambia.
	"gam":         "The Gambia",
	"gambia":      "The Gambia",
	"the gambia":  "The Gambia",
	"gambia, the": "The Gambia",

	// Curaçao.
	"cuw":     "Curaçao",
	"curacao": "Curaçao",

	// Guinea and Guinea-Bissau.
	"gui":           "Guinea",
	"guinea":        "Guinea",
	"gnb":           "Guinea-Bissau",
	"guinea bissau": "Guinea-Bissau",
	"guinea-bissau": "Guinea-Bissau",

	// South Africa.
	"rsa":          "South Africa",
	"south africa": "South Africa",

	// Cape Verde.
	"cpv":        "Cape Verde",
	"cape verde": "Cape Verde",
	"cabo verde": "Cape Verde",

	// Hong Kong.
	"hkg":       "Hong Kong",
	"hk china":  "Hong Kong",
	"hong kong": "Hong Kong",

	// Kosovo.
	"kos":    "Kosovo",
	"kosovo": "Kosovo",

	// Czech Republic.
	"czech republic": "Czech Republic",
	"czechia":        "Czech Republic",

	// Bosnia and Herzegovina.
	"bosnia-herzegovina":     "Bosnia and Herzegovina",
	"bosnia and herzegovina": "Bosnia and Herzegovina",

	"ecu": "Ecuador",

	// South Korea variants.
	"kor":                "South Korea",
	"korea, south":       "South Korea",
	"korea, republic of": "South Korea",

	"tanzania, united republic of": "Tanzania",

	// Federation trigrams.
	"alb": "Albania",
	"alg": "Algeria",
	"ang": "Angola",
	"aus": "Australia",
	"aut": "Austria",
	"ban": "Bangladesh",
	"bel": "Belgium",
	"ben": "Benin",
	"ber": "Bermuda",
	"bih": "Bosnia and Herzegovina",
	"bra": "Brazil",
	"bul": "Bulgaria",
	"cam": "Cameroon",
	"cmr": "Cameroon",
	"can": "Canada",
	"chi": "Chile",
	"col": "Colombia",
	"cro": "Croatia",
	"cze": "Czech Republic",
	"den": "Denmark",
	"egy": "Egypt",
	"est": "Estonia",
	"eth": "Ethiopia",
	"fin": "Finland",
	"fra": "France",
	"gab": "Gabon",
	"geo": "Georgia",
	"ger": "Germany",
	"gha": "Ghana",
	"gre": "Greece",
	"grn": "Grenada",
	"gua": "Guatemala",
	"hun": "Hungary",
	"isl": "Iceland",
	"isr": "Israel",
	"ita": "Italy",
	"jam": "Jamaica",
	"jpn": "Japan",
	"ken": "Kenya",
	"ltu": "Lithuania",
	"lux": "Luxembourg",
	"mar": "Morocco",
	"mex": "Mexico",
	"mli": "Mali",
	"mlt": "Malta",
	"mne": "Montenegro",
	"ned": "Netherlands",
	"nga": "Nigeria",
	"nor": "Norway",
	"pol": "Poland",
	"por": "Portugal",
	"rou": "Romania",
	"sen": "Senegal",
	"srb": "Serbia",
	"svk": "Slovakia",
	"svn": "Slovenia",
	"esp": "Spain",
	"swe": "Sweden",
	"sui": "Switzerland",
	"tun": "Tunisia",
	"tur": "Turkey",
	"türkiye": "Turkey",
	"tür":     "Turkey",
	"ukr": "Ukraine",
	"zim": "Zimbabwe",

	"saint kitts and nevis": "Saint Kitts and Nevis",
	"st. kitts & nevis":     "Saint Kitts and Nevis",
}

// Normalize maps a raw nationality string to its canonical country name.
// Unknown values pass through trimmed but otherwise unchanged.
func Normalize(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return raw
	}
	if canonical, ok := rawToCanonical[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}
