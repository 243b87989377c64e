package games

import (
	"context"
	"fmt"

	"eshop-catalog/core/catalog"
	"eshop-catalog/core/eshop"
)

// EnrichStats describes one price enrichment pass.
type EnrichStats struct {
	Region  eshop.Region `json:"region"`
	Country string       `json:"country"`
	// Requested is the number of store ids sent to the provider.
	Requested int `json:"requested"`
	// Priced is the number of returned prices attached to the catalog.
	Priced int `json:"priced"`
	// Unmatched is the number of returned prices dropped for lack of a record.
	Unmatched int `json:"unmatched"`
}

// EnrichPrices fetches the prices of every catalog title sold in region for
// country and attaches them in place. No request is made when the catalog
// holds no store id for the region.
func EnrichPrices(ctx context.Context, store *catalog.Store, provider eshop.Provider, region eshop.Region, country string) (EnrichStats, error) {
	stats := EnrichStats{Region: region, Country: country}

	nsuids := store.NSUIDs(region)
	stats.Requested = len(nsuids)
	if len(nsuids) == 0 {
		return stats, nil
	}

	prices, err := provider.FetchPrices(ctx, region, country, nsuids)
	if err != nil {
		return stats, fmt.Errorf("failed to fetch %s prices for %s: %w", region, country, err)
	}

	stats.Unmatched = store.SetPrices(region, country, prices)
	stats.Priced = len(prices) - stats.Unmatched
	return stats, nil
}
