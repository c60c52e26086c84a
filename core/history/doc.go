// Package history records sync runs to the relational database.
//
// Every (content type, sync run) pair produces one SyncRun row carrying the
// created/updated/deleted counts, the duration, and the error text if the
// type failed. Recording is optional: the orchestrator skips it entirely
// when no recorder is configured, so the pipeline runs fine without a
// database.
package history
