// Package webhook receives content-change notifications and triggers
// single-entry syncs.
//
// The content backend is configured to POST to /webhooks/content whenever an
// entry is published or updated. The handler runs a sync restricted to that
// entry id, which by construction never deletes sibling documents.
//
// # HTTP Endpoints
//
//   - POST /webhooks/content : body {"contentType", "entryId", "index"};
//     fetches the entry and reconciles its documents into the index.
package webhook
