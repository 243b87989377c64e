// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: assigns a request id (RayID) to every request, stores it in the
//     fiber locals and echoes it in the X-Ray-ID response header.
//   - requestlog: logs every request through zap with its RayID.
//
// CORS, compression and panic recovery use fiber's own middleware and are
// wired in the start command.
package middleware
