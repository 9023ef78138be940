package cmd

import (
	"context"
	"fmt"

	"championship-pipeline/core/config"
	"championship-pipeline/core/database"
	"championship-pipeline/core/logger"
	"championship-pipeline/core/storage"
	"championship-pipeline/feature/curated"
	"championship-pipeline/feature/fbref"
	"championship-pipeline/feature/registry"
	"championship-pipeline/feature/transfermarkt"
	"championship-pipeline/feature/warehouse"

	"go.uber.org/zap"
)

// pipelineEnv bundles the dependencies shared by every stage command.
type pipelineEnv struct {
	cfg   *config.Config
	log   *zap.Logger
	store storage.Client
	reg   *registry.Registry
}

func newPipelineEnv() (*pipelineEnv, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	reg, err := registry.NewChampionship2024_25()
	if err != nil {
		return nil, fmt.Errorf("invalid club registry: %w", err)
	}

	return &pipelineEnv{cfg: cfg, log: l, store: store, reg: reg}, nil
}

func (e *pipelineEnv) bucket() string {
	return e.cfg.Storage.Bucket
}

func (e *pipelineEnv) ensureBucket(ctx context.Context) error {
	return storage.EnsureBucket(ctx, e.store, e.bucket(), e.cfg.Storage.Region)
}

func (e *pipelineEnv) runExtract(ctx context.Context) error {
	if err := e.ensureBucket(ctx); err != nil {
		return err
	}

	fb := fbref.NewService(e.cfg.Pipeline, e.store, e.bucket(), e.log)
	if err := fb.Extract(ctx); err != nil {
		return err
	}

	tm := transfermarkt.NewService(
		e.cfg.Pipeline,
		transfermarkt.NewClient(e.cfg.Pipeline, e.log),
		e.store,
		e.bucket(),
		e.log,
	)
	return tm.Extract(ctx)
}

func (e *pipelineEnv) runTransform(ctx context.Context) error {
	if err := e.ensureBucket(ctx); err != nil {
		return err
	}
	return curated.NewService(e.cfg.Pipeline, e.store, e.bucket(), e.reg, e.log).Transform(ctx)
}

func (e *pipelineEnv) runLoad(ctx context.Context) error {
	db, err := database.Connect(e.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	return warehouse.NewService(e.cfg.Pipeline, e.store, e.bucket(), db, e.log).Load(ctx)
}
