package registry

import (
	"strconv"

	"championship-pipeline/core/table"
)

// CoverageResult reports, for one club, which attached source tables carry at
// least one row for it.
type CoverageResult struct {
	ClubID int    `json:"club_id"`
	Club   string `json:"club"`

	// LeaguePresent indicates a league-table row for the club.
	LeaguePresent bool `json:"league_present"`
	// SquadPresent indicates an FBRef squad stats row for the club.
	SquadPresent bool `json:"squad_present"`
	// TransfersPresent indicates at least one transfer row for the club.
	TransfersPresent bool `json:"transfers_present"`
}

// CoverageSummary aggregates coverage results.
type CoverageSummary struct {
	TotalClubs       int `json:"total_clubs"`
	MissingLeague    int `json:"missing_league"`
	MissingSquad     int `json:"missing_squad"`
	MissingTransfers int `json:"missing_transfers"`
}

// Coverage checks every club of the registry against the attached source
// tables (each must already carry a club_id column) and reports per-club
// presence plus aggregate gaps. A club missing from any source usually means
// its alias vocabulary entry is wrong for the new season.
func (r *Registry) Coverage(league, squad, transfers *table.Table) ([]CoverageResult, CoverageSummary) {
	results := make([]CoverageResult, 0, len(r.clubs))
	summary := CoverageSummary{TotalClubs: len(r.clubs)}

	leagueIDs := idSet(league)
	squadIDs := idSet(squad)
	transferIDs := idSet(transfers)

	for _, club := range r.clubs {
		key := strconv.Itoa(club.ID)
		res := CoverageResult{
			ClubID:           club.ID,
			Club:             club.Name,
			LeaguePresent:    leagueIDs[key],
			SquadPresent:     squadIDs[key],
			TransfersPresent: transferIDs[key],
		}
		if !res.LeaguePresent {
			summary.MissingLeague++
		}
		if !res.SquadPresent {
			summary.MissingSquad++
		}
		if !res.TransfersPresent {
			summary.MissingTransfers++
		}
		results = append(results, res)
	}
	return results, summary
}

func idSet(t *table.Table) map[string]bool {
	set := make(map[string]bool)
	if t == nil {
		return set
	}
	for _, id := range t.Column(ColClubID) {
		if id != "" {
			set[id] = true
		}
	}
	return set
}
