package registry

import (
	"context"
	"fmt"

	"championship-pipeline/core/storage"
	"championship-pipeline/core/table"

	"go.uber.org/zap"
)

// LoadOrBuild returns the dim_club table, keeping the cached copy in object
// storage in sync with the in-code definition.
//
// The definition is always authoritative: when the cached object is missing,
// unreadable, or diverges from a fresh BuildTable, the cache is rewritten and
// the freshly built table is returned. A stale cache is never served.
func LoadOrBuild(ctx context.Context, client storage.Client, bucket, objectName string, reg *Registry, log *zap.Logger) (*table.Table, error) {
	authoritative := reg.BuildTable()

	cached, err := storage.GetTable(ctx, client, bucket, objectName)
	switch {
	case err == nil && authoritative.Equal(cached):
		log.Debug("dim_club cache is current",
			zap.String("object", objectName),
			zap.Int("clubs", cached.Len()),
		)
		return cached, nil
	case err != nil && !storage.IsNotFound(err):
		// Unreadable cache (corrupt CSV, transport error): rebuild below,
		// but surface what happened.
		log.Warn("dim_club cache unreadable, rebuilding",
			zap.String("object", objectName),
			zap.Error(err),
		)
	case err == nil:
		log.Warn("dim_club cache diverges from definition, rebuilding",
			zap.String("object", objectName),
		)
	}

	if err := storage.PutTable(ctx, client, bucket, objectName, authoritative); err != nil {
		return nil, fmt.Errorf("write dim_club cache: %w", err)
	}
	log.Info("dim_club table rebuilt",
		zap.String("object", objectName),
		zap.Int("clubs", authoritative.Len()),
	)
	return authoritative, nil
}
