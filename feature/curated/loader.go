package curated

import (
	"championship-pipeline/core/config"
	"championship-pipeline/core/storage"
	"championship-pipeline/feature/registry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the curated-tables feature.
func NewFeature(cfg config.Pipeline, client storage.Client, bucket string, reg *registry.Registry, logger *zap.Logger) *Feature {
	svc := NewService(cfg, client, bucket, reg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "curated"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
