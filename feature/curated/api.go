package curated

import (
	"context"
	"fmt"
	"regexp"

	"championship-pipeline/core/storage"
	"championship-pipeline/core/table"
	"championship-pipeline/feature/registry"
)

var curatedNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// List returns the object names of all curated tables in storage.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return storage.ListCSVObjects(ctx, s.client, s.bucket, s.cfg.CuratedPrefix())
}

// Get loads one curated table by base name (for example
// "league_table_enhanced").
func (s *Service) Get(ctx context.Context, name string) (*table.Table, error) {
	if !curatedNamePattern.MatchString(name) {
		return nil, fmt.Errorf("invalid curated table name %q", name)
	}
	return storage.GetTable(ctx, s.client, s.bucket, s.cfg.CuratedObject(name))
}

// DimTable returns the authoritative dim_club table.
func (s *Service) DimTable() *table.Table {
	return s.reg.BuildTable()
}

// Coverage recomputes club coverage from the curated tables in storage.
func (s *Service) Coverage(ctx context.Context) ([]registry.CoverageResult, registry.CoverageSummary, error) {
	league, err := s.Get(ctx, LeagueName)
	if err != nil {
		return nil, registry.CoverageSummary{}, err
	}
	players, err := s.Get(ctx, PlayerStatsName)
	if err != nil {
		return nil, registry.CoverageSummary{}, err
	}
	transfersIn, err := s.Get(ctx, TransfersInName)
	if err != nil {
		return nil, registry.CoverageSummary{}, err
	}
	transfersOut, err := s.Get(ctx, TransfersOutName)
	if err != nil {
		return nil, registry.CoverageSummary{}, err
	}

	transfers := table.New(registry.ColClubID)
	for _, id := range transfersIn.Column(registry.ColClubID) {
		_ = transfers.AppendRow(id)
	}
	for _, id := range transfersOut.Column(registry.ColClubID) {
		_ = transfers.AppendRow(id)
	}

	results, summary := s.reg.Coverage(league, players, transfers)
	return results, summary, nil
}

// Records flattens a table into JSON-friendly row maps.
func Records(t *table.Table) []map[string]string {
	cols := t.Columns()
	out := make([]map[string]string, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		rec := make(map[string]string, len(cols))
		for _, col := range cols {
			rec[col] = t.Get(row, col)
		}
		out = append(out, rec)
	}
	return out
}
