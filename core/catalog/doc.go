// Package catalog holds the unified, cross-region game catalog.
//
// The Store is the only owner of catalog state. It is created empty at
// startup, filled once by the merge of both regional catalogs and then
// enriched with prices in place. Records are never deleted.
//
// # Readiness
//
// Initialization runs in the background while the HTTP server is already
// listening. The store carries a readiness barrier (Ready, IsReady, Err) so
// handlers and commands can tell a partial catalog from a complete one;
// requests never wait on it.
//
// # Concurrency
//
// All access goes through a read/write mutex. Snapshot and Get return deep
// copies (the prices map included) so callers can use records freely.
//
// # Summary
//
// Summarize reports region coverage, missing data and priced titles per
// country. It backs the status endpoint and the catalog command.
package catalog
