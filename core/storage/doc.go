// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface. The catalog service
// only reads from storage: when the storefront source is set to "storage",
// the regional catalog feeds and price lists are read from a bucket that
// mirrors the storefront APIs (see core/eshop.BucketProvider).
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "eshop-feeds")
package storage
