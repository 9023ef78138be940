package registry

import (
	"fmt"
	"regexp"
	"strings"
)

// Source identifies one upstream alias vocabulary.
type Source string

const (
	// SourceLeague is the Transfermarkt league table "club" column.
	SourceLeague Source = "league"
	// SourceFBRefSquad is the FBRef standard stats "squad" column.
	SourceFBRefSquad Source = "fbref_squad"
	// SourceTransfers is the Transfermarkt transfers "Club" column.
	SourceTransfers Source = "tm_transfers"
)

// Club is the canonical representation of one real-world club for a season.
type Club struct {
	// ID is a stable small integer, assigned in definition order starting at 1.
	ID int
	// Name is the unique canonical display name.
	Name string
	// Slug is a URL/file-safe key derived from Name.
	Slug string
}

// Definition declares the clubs of one season and the alias vocabulary each
// source uses for them. Vocab is keyed by source, then by canonical club name,
// with the aliases that source uses in definition order.
type Definition struct {
	Clubs []string
	Vocab map[Source]map[string][]string
}

// Registry is the validated, immutable club roster with per-source lookup
// tables. Construct it with New; the zero value is not usable.
type Registry struct {
	clubs  []Club
	byName map[string]Club
	vocab  map[Source]map[string]Club
	// preferred holds the first declared alias per source and club,
	// used as the raw-name column in the dim table.
	preferred map[Source]map[string]string
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL/file-safe key for a canonical club name.
func Slugify(name string) string {
	s := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// New validates a definition and builds the registry.
//
// Validation is eager: an alias claimed by two clubs within one source fails
// with AmbiguousAliasError, and an alias declared for a club missing from the
// roster is a configuration error. The canonical name of every club is
// injected into every vocabulary as a self-alias, since a source may already
// emit the canonical spelling.
func New(def Definition) (*Registry, error) {
	r := &Registry{
		byName:    make(map[string]Club, len(def.Clubs)),
		vocab:     make(map[Source]map[string]Club, len(def.Vocab)),
		preferred: make(map[Source]map[string]string, len(def.Vocab)),
	}

	for i, name := range def.Clubs {
		if _, ok := r.byName[name]; ok {
			return nil, fmt.Errorf("duplicate canonical club name %q", name)
		}
		club := Club{ID: i + 1, Name: name, Slug: Slugify(name)}
		r.clubs = append(r.clubs, club)
		r.byName[name] = club
	}

	for source, byClub := range def.Vocab {
		lookup := make(map[string]Club)
		preferred := make(map[string]string, len(byClub))
		for canonical, aliases := range byClub {
			club, ok := r.byName[canonical]
			if !ok {
				return nil, fmt.Errorf("source %q declares aliases for unknown club %q", source, canonical)
			}
			for _, alias := range aliases {
				if prev, ok := lookup[alias]; ok && prev.Name != canonical {
					return nil, &AmbiguousAliasError{
						Alias:  alias,
						Source: source,
						First:  prev.Name,
						Second: canonical,
					}
				}
				lookup[alias] = club
			}
			if len(aliases) > 0 {
				preferred[canonical] = aliases[0]
			}
		}
		// Canonical names self-resolve in every vocabulary.
		for _, club := range r.clubs {
			if prev, ok := lookup[club.Name]; ok && prev.Name != club.Name {
				return nil, &AmbiguousAliasError{
					Alias:  club.Name,
					Source: source,
					First:  prev.Name,
					Second: club.Name,
				}
			}
			lookup[club.Name] = club
		}
		r.vocab[source] = lookup
		r.preferred[source] = preferred
	}

	return r, nil
}

// Clubs returns all clubs in definition order.
func (r *Registry) Clubs() []Club {
	return append([]Club(nil), r.clubs...)
}

// ClubByID returns the club with the given identifier.
func (r *Registry) ClubByID(id int) (Club, bool) {
	if id < 1 || id > len(r.clubs) {
		return Club{}, false
	}
	return r.clubs[id-1], true
}

// Resolve maps a raw club name from the given source to its canonical club.
//
// The input is trimmed of surrounding whitespace; lookup is case-sensitive and
// exact. Empty input, an unknown source, or a name absent from the source's
// vocabulary all fail with UnknownClubNameError. Resolution never guesses.
func (r *Registry) Resolve(raw string, source Source) (Club, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Club{}, &UnknownClubNameError{Name: name, Source: source}
	}
	lookup, ok := r.vocab[source]
	if !ok {
		return Club{}, &UnknownClubNameError{Name: name, Source: source}
	}
	club, ok := lookup[name]
	if !ok {
		return Club{}, &UnknownClubNameError{Name: name, Source: source}
	}
	return club, nil
}

// Standardize returns the canonical name for a raw string if any vocabulary
// knows it. Used for open-world columns (transfer counterparties) where an
// unknown club is legitimate and the raw string is kept.
func (r *Registry) Standardize(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}
	for _, lookup := range r.vocab {
		if club, ok := lookup[name]; ok {
			return club.Name, true
		}
	}
	return "", false
}

// rawName returns the preferred raw spelling of a club under a source, falling
// back to the canonical name when the source declares no shorter form.
func (r *Registry) rawName(source Source, club Club) string {
	if preferred, ok := r.preferred[source]; ok {
		if raw, ok := preferred[club.Name]; ok {
			return raw
		}
	}
	return club.Name
}
