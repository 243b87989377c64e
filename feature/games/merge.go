package games

import (
	"eshop-catalog/core/catalog"
	"eshop-catalog/core/eshop"

	"go.uber.org/zap"
)

// MergeStats counts the outcome of a merge pass.
type MergeStats struct {
	// FromAmericas counts Americas records written to the catalog.
	FromAmericas int `json:"from_americas"`
	// FromEurope counts records created from a Europe record.
	FromEurope int `json:"from_europe"`
	// Merged counts Europe records folded into an existing entry.
	Merged int `json:"merged"`
	// Skipped counts records without a resolvable code.
	Skipped int `json:"skipped"`
}

// Merge builds the unified catalog from both regional catalogs. Americas
// records are applied first; Europe records then either create new entries
// or attach their store id and art to the existing one. It returns once
// every record has been applied.
func Merge(store *catalog.Store, americas, europe []eshop.RawGame, logger *zap.Logger) MergeStats {
	var stats MergeStats

	store.Update(func(games map[string]*catalog.GameRecord) {
		for _, raw := range americas {
			code, ok := eshop.ResolveCode(raw, eshop.RegionAmericas)
			if !ok {
				stats.Skipped++
				logger.Debug("Skipping record without game code",
					zap.String("region", eshop.RegionAmericas.String()),
					zap.String("id", raw.ID),
					zap.String("title", raw.Title))
				continue
			}
			applyAmericas(games, code, raw)
			stats.FromAmericas++
		}

		for _, raw := range europe {
			code, ok := eshop.ResolveCode(raw, eshop.RegionEurope)
			if !ok {
				stats.Skipped++
				logger.Debug("Skipping record without game code",
					zap.String("region", eshop.RegionEurope.String()),
					zap.String("id", raw.ID),
					zap.String("title", raw.Title))
				continue
			}
			if applyEurope(games, code, raw) {
				stats.Merged++
			} else {
				stats.FromEurope++
			}
		}
	})

	return stats
}

// applyAmericas creates or overwrites the entry for code. Fields it does
// not own (the Europe store id) survive an overwrite.
func applyAmericas(games map[string]*catalog.GameRecord, code string, raw eshop.RawGame) {
	g, ok := games[code]
	if !ok {
		g = &catalog.GameRecord{Code: code}
		games[code] = g
	}
	g.ID = raw.ID
	g.Art = raw.Art
	g.Title = raw.Title
	g.ReleaseDate = eshop.ParseReleaseDate(raw.ReleaseDate)
	g.AmericasNSUID = nil
	if nsuid, ok := eshop.ResolveNSUID(raw, eshop.RegionAmericas); ok {
		g.SetNSUID(eshop.RegionAmericas, nsuid)
	}
	g.Prices = map[string]eshop.Price{}
}

// applyEurope reports whether raw was merged into an existing entry.
func applyEurope(games map[string]*catalog.GameRecord, code string, raw eshop.RawGame) bool {
	nsuid, hasNSUID := eshop.ResolveNSUID(raw, eshop.RegionEurope)

	g, ok := games[code]
	if !ok {
		g = &catalog.GameRecord{
			Code:        code,
			ID:          raw.ID,
			Art:         raw.Art,
			Title:       raw.Title,
			ReleaseDate: eshop.ParseReleaseDate(raw.ReleaseDate),
			Prices:      map[string]eshop.Price{},
		}
		if hasNSUID {
			g.SetNSUID(eshop.RegionEurope, nsuid)
		}
		games[code] = g
		return false
	}

	g.EuropeNSUID = nil
	if hasNSUID {
		g.SetNSUID(eshop.RegionEurope, nsuid)
	}
	// Square art wins; otherwise only fill art the Americas record left empty.
	if raw.SquareArt != "" {
		g.Art = raw.SquareArt
	}
	if g.Art == "" {
		g.Art = raw.Art
	}
	return true
}
