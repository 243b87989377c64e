package eshop

// Config holds configuration for the storefront data provider.
type Config struct {
	// Source selects the provider implementation: "api" or "storage".
	Source string `mapstructure:"source" default:"api"`
	// AmericasURL is the Americas catalog listing endpoint.
	AmericasURL string `mapstructure:"americas_url" default:"https://www.nintendo.com/json/content/get/filter/game"`
	// EuropeURL is the Europe catalog search endpoint.
	EuropeURL string `mapstructure:"europe_url" default:"https://search.nintendo-europe.com/en/select"`
	// PriceURL is the price lookup endpoint shared by every region.
	PriceURL string `mapstructure:"price_url" default:"https://api.ec.nintendo.com/v1/price"`
	// Locale is the language sent to the price endpoint.
	Locale string `mapstructure:"locale" default:"en"`
	// AmericasCountries are the countries priced against Americas nsuids.
	AmericasCountries []string `mapstructure:"americas_countries" default:"US,CA"`
	// EuropeCountries are the countries priced against Europe nsuids.
	EuropeCountries []string `mapstructure:"europe_countries" default:"IE"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerSecond rate limits outgoing storefront requests.
	RequestsPerSecond int `mapstructure:"requests_per_second" default:"5"`
	// MaxRetries is the number of retries on 429/5xx and transport errors.
	MaxRetries int `mapstructure:"max_retries" default:"0"`
	// StoragePrefix is the object prefix of the mirrored feeds when Source is "storage".
	StoragePrefix string `mapstructure:"storage_prefix" default:"eshop"`
}

const (
	SourceAPI     = "api"
	SourceStorage = "storage"
)

// Countries returns the configured price countries for a region.
func (c Config) Countries(region Region) []string {
	switch region {
	case RegionAmericas:
		return c.AmericasCountries
	case RegionEurope:
		return c.EuropeCountries
	default:
		return nil
	}
}
