package fbref

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"championship-pipeline/core/config"
	"championship-pipeline/core/storage"
	"championship-pipeline/core/table"

	"go.uber.org/zap"
)

// Service runs the FBRef extract stage: snapshot in, two tidy raw tables out,
// both written locally and uploaded to object storage.
type Service struct {
	cfg    config.Pipeline
	client storage.Client
	bucket string
	log    *zap.Logger
}

// NewService creates the FBRef extract service.
func NewService(cfg config.Pipeline, client storage.Client, bucket string, log *zap.Logger) *Service {
	return &Service{cfg: cfg, client: client, bucket: bucket, log: log}
}

// SnapshotPath is the expected location of the hand-downloaded FBRef page.
func (s *Service) SnapshotPath() string {
	return filepath.Join(s.cfg.RawDataDir, s.cfg.FBRefSnapshot)
}

// PlayerObjectName is the object key of the raw player stats extract.
func (s *Service) PlayerObjectName() string {
	return s.cfg.FBRefPlayerObject()
}

// SquadObjectName is the object key of the raw squad stats extract.
func (s *Service) SquadObjectName() string {
	return s.cfg.FBRefSquadObject()
}

// Extract parses both standard-stats tables out of the local snapshot and
// uploads them. A missing snapshot is an actionable error: the page has to be
// saved by hand because FBRef rejects automated requests.
func (s *Service) Extract(ctx context.Context) error {
	snapshot := s.SnapshotPath()
	data, err := os.ReadFile(snapshot)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf(
				"fbref snapshot not found at %s: download the Championship 'Player Standard Stats' page by hand and save its HTML there", snapshot)
		}
		return fmt.Errorf("read fbref snapshot: %w", err)
	}
	s.log.Info("loaded fbref snapshot", zap.String("path", snapshot), zap.Int("bytes", len(data)))

	players, err := ParsePlayerStats(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse player standard stats: %w", err)
	}
	squads, err := ParseSquadStats(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse squad standard stats: %w", err)
	}

	if err := s.writeLocal("fbref_championship_player_standard_stats_"+s.cfg.Season+".csv", players); err != nil {
		return err
	}
	if err := s.writeLocal("fbref_championship_squad_standard_stats_"+s.cfg.Season+".csv", squads); err != nil {
		return err
	}

	if err := storage.PutTable(ctx, s.client, s.bucket, s.PlayerObjectName(), players); err != nil {
		return err
	}
	if err := storage.PutTable(ctx, s.client, s.bucket, s.SquadObjectName(), squads); err != nil {
		return err
	}

	s.log.Info("fbref extract complete",
		zap.Int("players", players.Len()),
		zap.Int("squads", squads.Len()),
	)
	return nil
}

func (s *Service) writeLocal(name string, t *table.Table) error {
	if err := os.MkdirAll(s.cfg.RawDataDir, 0o755); err != nil {
		return fmt.Errorf("create raw data dir: %w", err)
	}
	dest := filepath.Join(s.cfg.RawDataDir, name)
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer f.Close()
	if err := t.WriteCSV(f); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}
