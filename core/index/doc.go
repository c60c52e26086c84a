// Package index defines the contract for the destination document index.
//
// The index is an opaque collaborator supporting a full scan (used once per
// reconciler to snapshot the current index contents), batched create/upsert/
// delete operations, and an ad-hoc search used outside the reconciliation
// path. The elastic subpackage implements the contract on Elasticsearch.
//
// Batch operations called with empty input must return an empty identifier
// list without issuing a network call.
package index
