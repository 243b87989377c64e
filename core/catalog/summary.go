package catalog

import "sort"

// Summary provides aggregate counts over the merged catalog.
type Summary struct {
	// TotalGames is the number of unique codes.
	TotalGames int `json:"total_games"`
	// AmericasOnly counts records with an Americas store id only.
	AmericasOnly int `json:"americas_only"`
	// EuropeOnly counts records with a Europe store id only.
	EuropeOnly int `json:"europe_only"`
	// BothRegions counts records sold in both regions.
	BothRegions int `json:"both_regions"`
	// Unsold counts records with no store id in either region.
	Unsold int `json:"unsold"`
	// MissingReleaseDate counts records without a known release date.
	MissingReleaseDate int `json:"missing_release_date"`
	// MissingArt counts records without cover art.
	MissingArt int `json:"missing_art"`
	// PricedByCountry counts priced records per country.
	PricedByCountry map[string]int `json:"priced_by_country"`
}

// Countries returns the priced countries in sorted order.
func (s Summary) Countries() []string {
	countries := make([]string, 0, len(s.PricedByCountry))
	for c := range s.PricedByCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}

// Summarize computes the catalog summary.
func (s *Store) Summarize() Summary {
	summary := Summary{PricedByCountry: map[string]int{}}

	s.View(func(games map[string]*GameRecord) {
		summary.TotalGames = len(games)
		for _, g := range games {
			americas := g.AmericasNSUID != nil
			europe := g.EuropeNSUID != nil
			switch {
			case americas && europe:
				summary.BothRegions++
			case americas:
				summary.AmericasOnly++
			case europe:
				summary.EuropeOnly++
			default:
				summary.Unsold++
			}

			if g.ReleaseDate == nil {
				summary.MissingReleaseDate++
			}
			if g.Art == "" {
				summary.MissingArt++
			}
			for country := range g.Prices {
				summary.PricedByCountry[country]++
			}
		}
	})

	return summary
}
