package transfermarkt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"championship-pipeline/core/config"
	"championship-pipeline/core/storage"
	"championship-pipeline/core/table"

	"go.uber.org/zap"
)

// Service runs the Transfermarkt extract stage: league table plus both
// transfer windows, written locally and uploaded to object storage.
type Service struct {
	cfg     config.Pipeline
	fetcher Fetcher
	client  storage.Client
	bucket  string
	log     *zap.Logger
}

// Fetcher downloads one page of HTML. Satisfied by *Client.
type Fetcher interface {
	FetchHTML(ctx context.Context, url string) (string, error)
}

// NewService creates the Transfermarkt extract service.
func NewService(cfg config.Pipeline, fetcher Fetcher, client storage.Client, bucket string, log *zap.Logger) *Service {
	return &Service{cfg: cfg, fetcher: fetcher, client: client, bucket: bucket, log: log}
}

// LeagueURL is the tabelle page for the configured competition and season.
func (s *Service) LeagueURL() string {
	return fmt.Sprintf("%s/championship/tabelle/wettbewerb/%s/saison_id/%s",
		strings.TrimRight(s.cfg.TransfermarktBaseURL, "/"), s.cfg.CompetitionCode, s.cfg.SeasonID)
}

// TransfersURL is the transfers page for the configured competition and season.
func (s *Service) TransfersURL() string {
	return fmt.Sprintf("%s/championship/transfers/wettbewerb/%s/saison_id/%s",
		strings.TrimRight(s.cfg.TransfermarktBaseURL, "/"), s.cfg.CompetitionCode, s.cfg.SeasonID)
}

// LeagueObjectName is the object key of the raw league table extract.
func (s *Service) LeagueObjectName() string {
	return s.cfg.LeagueTableObject()
}

// TransfersInObjectName is the object key of the raw transfers-in extract.
func (s *Service) TransfersInObjectName() string {
	return s.cfg.TransfersInObject()
}

// TransfersOutObjectName is the object key of the raw transfers-out extract.
func (s *Service) TransfersOutObjectName() string {
	return s.cfg.TransfersOutObject()
}

// Extract fetches and parses both pages and persists the three raw tables.
func (s *Service) Extract(ctx context.Context) error {
	leagueHTML, err := s.fetcher.FetchHTML(ctx, s.LeagueURL())
	if err != nil {
		return err
	}
	transfersHTML, err := s.fetcher.FetchHTML(ctx, s.TransfersURL())
	if err != nil {
		return err
	}

	league, err := ParseLeagueTable(strings.NewReader(leagueHTML))
	if err != nil {
		return fmt.Errorf("parse league table: %w", err)
	}
	in, out, err := ParseTransfers(strings.NewReader(transfersHTML))
	if err != nil {
		return fmt.Errorf("parse transfers: %w", err)
	}

	locals := map[string]*table.Table{
		"transfermarkt_league_table_" + s.cfg.Season + ".csv":  league,
		"transfermarkt_transfers_in_" + s.cfg.Season + ".csv":  in,
		"transfermarkt_transfers_out_" + s.cfg.Season + ".csv": out,
	}
	for name, t := range locals {
		if err := s.writeLocal(name, t); err != nil {
			return err
		}
	}

	if err := storage.PutTable(ctx, s.client, s.bucket, s.LeagueObjectName(), league); err != nil {
		return err
	}
	if err := storage.PutTable(ctx, s.client, s.bucket, s.TransfersInObjectName(), in); err != nil {
		return err
	}
	if err := storage.PutTable(ctx, s.client, s.bucket, s.TransfersOutObjectName(), out); err != nil {
		return err
	}

	s.log.Info("transfermarkt extract complete",
		zap.Int("league_rows", league.Len()),
		zap.Int("transfers_in", in.Len()),
		zap.Int("transfers_out", out.Len()),
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
