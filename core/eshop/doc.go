// Package eshop is the storefront data provider of the catalog service.
//
// It defines the Provider contract used by the catalog feature and two
// implementations of it:
//   - Client: reads the public storefront APIs (Americas listing, Europe
//     search, shared price endpoint) with rate limiting and optional retries.
//   - BucketProvider: reads the same responses mirrored into S3/MinIO.
//
// # Identity
//
// ResolveCode derives the cross-region game code from a record's product
// code, and ResolveNSUID extracts the numeric store id used to join prices.
// Both return false for malformed input instead of failing.
//
// # Prices
//
// Price values are opaque: only title_id is read, the rest of the entry is
// kept as raw JSON and written back unchanged.
package eshop
