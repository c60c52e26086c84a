// Package syncer orchestrates full sync runs: fetch, flatten, archive,
// observe, reconcile.
//
// One Sync call drives one or more content types against one index. All
// types share a single reconciler, and with it a single index snapshot;
// deletion scoping depends on every type diffing against the same snapshot.
// Types run concurrently and fail in isolation: one type's failure is logged
// and joined into the returned error without aborting the others.
//
// A caller-supplied observer sees each type's flattened documents strictly
// before indexing. It is fire-and-forget: a panicking observer is recovered
// and logged, and the indexing path is unaffected.
//
// Setting an entry id restricts the run to that one entry and suppresses
// deletion for every type in the run.
package syncer
