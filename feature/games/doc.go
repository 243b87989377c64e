// Package games implements the game catalog feature.
//
// It builds the unified catalog from both storefront regions and serves it
// over HTTP.
//
// # Loading
//
// Service.Init fetches the Americas and Europe catalogs concurrently, merges
// them into the catalog store keyed by game code (Americas first, Europe
// second), then attaches prices for every configured country. The store's
// readiness barrier is released when loading finishes.
//
// # Listing
//
// GET /api/games/ filters titles case-insensitively, sorts by a record field
// and returns one page:
//
//	{"has_more": true, "total": 4200, "count": 37, "data": [...]}
//
// Listings are served from the current state of the catalog, so requests
// made while loading return partial results.
package games
