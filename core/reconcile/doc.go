// Package reconcile diffs freshly flattened documents against the current
// contents of the destination index and applies the difference.
//
// A Reconciler is bound to one index. Its snapshot of the index is fetched
// at most once per instance via a full scan and shared by every content type
// reconciled through it; deletion scoping depends on all types seeing the
// same snapshot. The snapshot load is single-flight: the first caller
// triggers the scan, concurrent callers await the same in-flight result,
// and the outcome (including a failure) is cached rather than retried.
//
// # Diffing
//
// Documents are matched by a deterministic hash of (id, locale). For every
// snapshot entry of the reconciled content type:
//
//   - a matching incoming document adopts the entry's objectID and, when the
//     two differ (ignoring no-value fields), lands in the updated set;
//   - an entry with no matching document lands in the deleted set, unless
//     the run is a single-entry sync, which never deletes.
//
// Incoming documents left without an objectID are created fresh.
//
// # Applying
//
// The three batch operations run concurrently and independently: one failing
// batch is logged and does not stop its siblings. Empty batches never reach
// the network.
package reconcile
