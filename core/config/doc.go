// Package config provides configuration management for the catalog service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, CORS origins, compression)
//   - Log: Logging level and format
//   - Eshop: Storefront provider source, endpoints, countries and limits
//   - Storage: S3/MinIO credentials and bucket for the mirrored storefront feeds
//
// Defaults live next to each field in a `default` struct tag. Nested keys map
// to environment variables by replacing dots with underscores, so
// eshop.americas_countries is read from ESHOP_AMERICAS_COUNTRIES.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
