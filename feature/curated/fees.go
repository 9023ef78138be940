package curated

import (
	"regexp"
	"strconv"
	"strings"
)

var feePattern = regexp.MustCompile(`(?i)€\s*([0-9.]+)\s*([mk])?`)

// ParseFee converts a Transfermarkt fee string to a EUR amount.
//
//	"€1.80m"          -> 1_800_000
//	"€400k"           -> 400_000
//	"Loan fee: €500k" -> 500_000
//	"free transfer"   -> 0
//	"-", "?", "–"     -> 0
//	"End of loan"     -> 0 (returns are not new spending)
//
// Anything unparseable is zero, never an error: a fee column always sums.
func ParseFee(value string) float64 {
	s := strings.TrimSpace(value)
	switch s {
	case "", "-", "?", "–":
		return 0
	}

	low := strings.ToLower(s)
	if strings.Contains(low, "end of loan") {
		return 0
	}
	if strings.Contains(low, "free") && !strings.Contains(s, "€") {
		return 0
	}

	m := feePattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	number, err := strconv.ParseFloat(strings.Trim(m[1], "."), 64)
	if err != nil {
		return 0
	}

	switch strings.ToLower(m[2]) {
	case "m":
		return number * 1_000_000
	case "k":
		return number * 1_000
	}
	return number
}

// ParseGoals splits the league table's "95:30" scored:conceded cell.
// Both sides must be numeric; otherwise ok is false.
func ParseGoals(value string) (goalsFor, goalsAgainst string, ok bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return "", "", false
	}
	gf, ga := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if _, err := strconv.ParseFloat(gf, 64); err != nil {
		return "", "", false
	}
	if _, err := strconv.ParseFloat(ga, 64); err != nil {
		return "", "", false
	}
	return gf, ga, true
}

// formatEUR renders a EUR amount without a spurious exponent or trailing
// zeros, so CSV cells stay stable.
func formatEUR(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
