// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the listen port, allowed CORS origins and the response compression level.
//
// # Configuration
//
// The Config struct defines the HTTP port (default 3000, also read from PORT),
// the CORS origin list and the compression level.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to configure the Fiber application.
package server
