package games

import (
	"context"

	"eshop-catalog/core/catalog"
	"eshop-catalog/core/eshop"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new games feature.
func NewFeature(provider eshop.Provider, store *catalog.Store, logger *zap.Logger, cfg eshop.Config) *Feature {
	svc := NewService(provider, store, logger, cfg)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "games"
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

// Init loads the catalog.
func (f *Feature) Init(ctx context.Context) error {
	return f.service.Init(ctx)
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
