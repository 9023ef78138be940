package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"eng", "England"},
		{"ENG", "England"},
		{"sco", "Scotland"},
		{"wal", "Wales"},
		{"nir", "Northern Ireland"},
		{"irl", "Republic of Ireland"},
		{"USA", "United States"},
		{"Korea, South", "South Korea"},
		{"Türkiye", "Turkey"},
		{"Czechia", "Czech Republic"},
		{"Cote d'Ivoire", "Ivory Coast"},
		{"ned", "Netherlands"},
		{"  fra  ", "France"},
		// Already canonical values survive.
		{"England", "England"},
		{"France", "France"},
		// Unknown values pass through trimmed.
		{"Atlantis", "Atlantis"},
		{" Atlantis ", "Atlantis"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.raw), "raw %q", tc.raw)
	}
}
