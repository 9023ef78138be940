package registry

import (
	"strconv"

	"championship-pipeline/core/table"
)

// Column names of the dim_club table.
const (
	ColClubID        = "club_id"
	ColCanonicalName = "canonical_club_name"
	ColLeagueRaw     = "league_raw_name"
	ColFBRefRaw      = "fbref_raw_name"
	ColTransfersRaw  = "tm_transfers_raw_name"
	ColClubKey       = "club_key"
)

// BuildTable materializes the registry as the dim_club table: one row per
// club with its stable identifier, canonical name, the preferred raw spelling
// under each source, and the slug key.
//
// The output is a pure function of the definition and is byte-identical
// across calls, which lets callers detect stale cached copies by comparison.
func (r *Registry) BuildTable() *table.Table {
	t := table.New(
		ColClubID,
		ColCanonicalName,
		ColLeagueRaw,
		ColFBRefRaw,
		ColTransfersRaw,
		ColClubKey,
	)
	for _, club := range r.clubs {
		t.AppendRecord(map[string]string{
			ColClubID:        strconv.Itoa(club.ID),
			ColCanonicalName: club.Name,
			ColLeagueRaw:     r.rawName(SourceLeague, club),
			ColFBRefRaw:      r.rawName(SourceFBRefSquad, club),
			ColTransfersRaw:  r.rawName(SourceTransfers, club),
			ColClubKey:       club.Slug,
		})
	}
	return t
}
