// Package status exposes operational endpoints for the indexer.
//
// # HTTP Endpoints
//
//   - GET /status/health : liveness probe.
//   - GET /status/runs : recent sync runs from the history store
//     (supports ?limit=N). Returns 503 when no history database is
//     configured.
package status
