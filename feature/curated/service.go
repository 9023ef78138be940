package curated

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"championship-pipeline/core/config"
	"championship-pipeline/core/storage"
	"championship-pipeline/core/table"
	"championship-pipeline/feature/registry"

	"go.uber.org/zap"
)

// Curated table base names; object names are <curated prefix>/<name>_<season>.csv.
const (
	PlayerStatsName  = "player_stats_semantic"
	TransfersInName  = "transfers_in_semantic"
	TransfersOutName = "transfers_out_semantic"
	LeagueName       = "league_table_enhanced"
)

// Service runs the transform stage: raw extracts in, semantic tables out.
type Service struct {
	cfg    config.Pipeline
	client storage.Client
	bucket string
	reg    *registry.Registry
	log    *zap.Logger
}

// NewService creates the transform service.
func NewService(cfg config.Pipeline, client storage.Client, bucket string, reg *registry.Registry, log *zap.Logger) *Service {
	return &Service{cfg: cfg, client: client, bucket: bucket, reg: reg, log: log}
}

// CuratedDir is the local directory curated tables are mirrored to.
func (s *Service) CuratedDir() string {
	return filepath.Join(filepath.Dir(s.cfg.RawDataDir), "curated")
}

// Transform builds all four semantic tables from the raw extracts in object
// storage, refreshes the dim_club cache, and reports club coverage across
// the sources.
func (s *Service) Transform(ctx context.Context) error {
	if _, err := registry.LoadOrBuild(ctx, s.client, s.bucket, s.cfg.DimClubObjectName(), s.reg, s.log); err != nil {
		return err
	}

	players, err := storage.GetTable(ctx, s.client, s.bucket, s.cfg.FBRefPlayerObject())
	if err != nil {
		return err
	}
	squad, err := storage.GetTable(ctx, s.client, s.bucket, s.cfg.FBRefSquadObject())
	if err != nil {
		return err
	}
	league, err := storage.GetTable(ctx, s.client, s.bucket, s.cfg.LeagueTableObject())
	if err != nil {
		return err
	}
	transfersIn, err := storage.GetTable(ctx, s.client, s.bucket, s.cfg.TransfersInObject())
	if err != nil {
		return err
	}
	transfersOut, err := storage.GetTable(ctx, s.client, s.bucket, s.cfg.TransfersOutObject())
	if err != nil {
		return err
	}

	builder := NewBuilder(s.reg, s.log)

	playerSem, err := builder.PlayerStats(players)
	if err != nil {
		return err
	}
	inSem, err := builder.TransfersIn(transfersIn)
	if err != nil {
		return err
	}
	outSem, err := builder.TransfersOut(transfersOut)
	if err != nil {
		return err
	}
	enhanced, err := builder.LeagueEnhanced(league, squad, inSem, outSem)
	if err != nil {
		return err
	}

	s.reportCoverage(enhanced, playerSem, inSem, outSem)

	outputs := map[string]*table.Table{
		PlayerStatsName:  playerSem,
		TransfersInName:  inSem,
		TransfersOutName: outSem,
		LeagueName:       enhanced,
	}
	for name, t := range outputs {
		if err := s.persist(ctx, name, t); err != nil {
			return err
		}
	}

	s.log.Info("transform complete",
		zap.Int("players", playerSem.Len()),
		zap.Int("transfers_in", inSem.Len()),
		zap.Int("transfers_out", outSem.Len()),
		zap.Int("league_rows", enhanced.Len()),
	)
	return nil
}

// reportCoverage logs which clubs are missing from any source; a gap usually
// means an alias vocabulary entry went stale.
func (s *Service) reportCoverage(league, playerStats, transfersIn, transfersOut *table.Table) {
	transfers := table.New(registry.ColClubID)
	for _, id := range transfersIn.Column(registry.ColClubID) {
		_ = transfers.AppendRow(id)
	}
	for _, id := range transfersOut.Column(registry.ColClubID) {
		_ = transfers.AppendRow(id)
	}

	results, summary := s.reg.Coverage(league, playerStats, transfers)
	s.log.Info("club coverage",
		zap.Int("total_clubs", summary.TotalClubs),
		zap.Int("missing_league", summary.MissingLeague),
		zap.Int("missing_squad", summary.MissingSquad),
		zap.Int("missing_transfers", summary.MissingTransfers),
	)
	for _, res := range results {
		if res.LeaguePresent && res.SquadPresent && res.TransfersPresent {
			continue
		}
		s.log.Warn("club missing from a source",
			zap.Int("club_id", res.ClubID),
			zap.String("club", res.Club),
			zap.Bool("league", res.LeaguePresent),
			zap.Bool("squad", res.SquadPresent),
			zap.Bool("transfers", res.TransfersPresent),
		)
	}
}

func (s *Service) persist(ctx context.Context, name string, t *table.Table) error {
	if err := os.MkdirAll(s.CuratedDir(), 0o755); err != nil {
		return fmt.Errorf("create curated dir: %w", err)
	}
	dest := filepath.Join(s.CuratedDir(), name+"_"+s.cfg.Season+".csv")
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dest, err)
	}

	return storage.PutTable(ctx, s.client, s.bucket, s.cfg.CuratedObject(name), t)
}
