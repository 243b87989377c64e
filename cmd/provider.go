package cmd

import (
	"fmt"

	"eshop-catalog/core/config"
	"eshop-catalog/core/eshop"
	"eshop-catalog/core/storage"

	"go.uber.org/zap"
)

// newProvider builds the storefront provider selected by ESHOP_SOURCE.
// The storage client is only created for the bucket mirror.
func newProvider(cfg *config.Config, logg *zap.Logger) (eshop.Provider, error) {
	var client storage.Client
	if cfg.Eshop.Source == eshop.SourceStorage {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	provider, err := eshop.NewProvider(cfg.Eshop, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	logg.Info("Storefront provider ready", zap.String("source", cfg.Eshop.Source))
	return provider, nil
}
