package catalog

import (
	"maps"
	"time"

	"eshop-catalog/core/eshop"
)

// GameRecord is one title of the unified catalog.
type GameRecord struct {
	// Code is the cross-region game code; it is the catalog key.
	Code string `json:"code"`
	// ID is the storefront id of the region that created the record.
	ID    string `json:"id"`
	Art   string `json:"art,omitempty"`
	Title string `json:"title"`
	// ReleaseDate is nil when no region provided a parseable date.
	ReleaseDate *time.Time `json:"release_date"`
	// AmericasNSUID joins Americas prices; nil when not sold there.
	AmericasNSUID *string `json:"a_nsuid"`
	// EuropeNSUID joins Europe prices; nil when not sold there.
	EuropeNSUID *string `json:"e_nsuid"`
	// Prices maps a country code to the storefront price entry.
	Prices map[string]eshop.Price `json:"prices"`
}

// NSUID returns the record's store id for a region.
func (g *GameRecord) NSUID(region eshop.Region) (string, bool) {
	var id *string
	switch region {
	case eshop.RegionAmericas:
		id = g.AmericasNSUID
	case eshop.RegionEurope:
		id = g.EuropeNSUID
	}
	if id == nil {
		return "", false
	}
	return *id, true
}

// SetNSUID sets the record's store id for a region.
func (g *GameRecord) SetNSUID(region eshop.Region, nsuid string) {
	id := nsuid
	switch region {
	case eshop.RegionAmericas:
		g.AmericasNSUID = &id
	case eshop.RegionEurope:
		g.EuropeNSUID = &id
	}
}

// Clone returns a copy that shares no mutable state with g.
func (g *GameRecord) Clone() GameRecord {
	c := *g
	if g.ReleaseDate != nil {
		d := *g.ReleaseDate
		c.ReleaseDate = &d
	}
	if g.AmericasNSUID != nil {
		id := *g.AmericasNSUID
		c.AmericasNSUID = &id
	}
	if g.EuropeNSUID != nil {
		id := *g.EuropeNSUID
		c.EuropeNSUID = &id
	}
	c.Prices = maps.Clone(g.Prices)
	if c.Prices == nil {
		c.Prices = map[string]eshop.Price{}
	}
	return c
}
