package warehouse

import (
	"context"
	"fmt"
	"path"
	"strings"

	"championship-pipeline/core/config"
	"championship-pipeline/core/storage"
	"championship-pipeline/core/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// insertBatchSize bounds placeholders per INSERT statement.
const insertBatchSize = 500

// Service runs the load stage.
type Service struct {
	cfg    config.Pipeline
	client storage.Client
	bucket string
	db     *gorm.DB
	log    *zap.Logger
}

// NewService creates the warehouse load service.
func NewService(cfg config.Pipeline, client storage.Client, bucket string, db *gorm.DB, log *zap.Logger) *Service {
	return &Service{cfg: cfg, client: client, bucket: bucket, db: db, log: log}
}

// Load replaces one warehouse table per curated CSV in object storage. A
// missing curated prefix is not an error; it just means transform has not
// run yet.
func (s *Service) Load(ctx context.Context) error {
	names, err := storage.ListCSVObjects(ctx, s.client, s.bucket, s.cfg.CuratedPrefix())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		s.log.Warn("no curated tables to load; run the transform stage first",
			zap.String("prefix", s.cfg.CuratedPrefix()),
		)
		return nil
	}

	for _, objectName := range names {
		t, err := storage.GetTable(ctx, s.client, s.bucket, objectName)
		if err != nil {
			return err
		}
		tableName := strings.TrimSuffix(path.Base(objectName), ".csv")
		if err := s.LoadTable(ctx, tableName, t); err != nil {
			return fmt.Errorf("load %q into %q: %w", objectName, tableName, err)
		}
	}

	s.log.Info("warehouse load complete", zap.Int("tables", len(names)))
	return nil
}

// LoadTable fully replaces one warehouse table with the given rows.
func (s *Service) LoadTable(ctx context.Context, name string, t *table.Table) error {
	cols := t.Columns()
	if len(cols) == 0 {
		return fmt.Errorf("table %q has no columns", name)
	}
	kinds := InferColumnKinds(t)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(DropTableSQL(name)).Error; err != nil {
			return err
		}
		if err := tx.Exec(CreateTableSQL(name, cols, kinds)).Error; err != nil {
			return err
		}

		for start := 0; start < t.Len(); start += insertBatchSize {
			end := start + insertBatchSize
			if end > t.Len() {
				end = t.Len()
			}
			args := make([]any, 0, (end-start)*len(cols))
			for row := start; row < end; row++ {
				args = append(args, rowArgs(t, row, cols, kinds)...)
			}
			if err := tx.Exec(InsertSQL(name, cols, end-start), args...).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("loaded warehouse table",
		zap.String("table", name),
		zap.Int("rows", t.Len()),
		zap.Int("columns", len(cols)),
	)
	return nil
}
