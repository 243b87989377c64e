package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// CorsOrigins is the comma separated list of origins allowed by CORS.
	CorsOrigins string `mapstructure:"cors_origins" default:"*"`
	// Compression is the gzip/brotli level (-1 disabled, 0 default, 1 speed, 2 best).
	Compression int `mapstructure:"compression" default:"1"`
}

const (
	CompressionDisabled = -1
	CompressionDefault  = 0
	CompressionSpeed    = 1
	CompressionBest     = 2
)

// CompressionEnabled reports whether response compression should be installed.
func (c Config) CompressionEnabled() bool {
	return c.Compression >= CompressionDefault && c.Compression <= CompressionBest
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if c.Port == "" {
		return ":3000"
	}
	return ":" + c.Port
}
