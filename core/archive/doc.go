// Package archive writes the flattened documents of each sync run to object
// storage as an audit trail.
//
// One JSONL object is written per (run, content type) under
// runs/<runID>/<contentType>.jsonl, before indexing happens, so the exact
// pre-write state of every run can be inspected or replayed later. No-value
// markers are dropped by document marshaling and never reach the archive.
//
// Archiving is optional; the orchestrator skips it when no archiver is
// configured.
package archive
