package eshop

import (
	"fmt"

	"eshop-catalog/core/storage"
)

// NewProvider builds the provider selected by cfg.Source. The storage
// client is only used by the "storage" source and may be nil otherwise.
func NewProvider(cfg Config, client storage.Client, bucket string) (Provider, error) {
	switch cfg.Source {
	case "", SourceAPI:
		return NewClient(cfg), nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("storage source requires a storage client")
		}
		return NewBucketProvider(client, bucket, cfg.StoragePrefix), nil
	default:
		return nil, fmt.Errorf("unknown eshop source %q", cfg.Source)
	}
}
