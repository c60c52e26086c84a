package reconcile

import (
	"crypto/md5"
	"encoding/hex"

	"content-indexer/core/content"
)

// Options controls a single reconcile pass.
type Options struct {
	// SingleEntry marks a sync restricted to one source entry. Deletion is
	// suppressed entirely: a single-entry sync must never delete siblings it
	// didn't fetch.
	SingleEntry bool

	// DryRun computes and reports the diff without applying it.
	DryRun bool
}

// Diff partitions one reconcile pass into three disjoint sets.
type Diff struct {
	// Created holds documents with no existing index-side identifier.
	Created []content.Document

	// Updated holds documents whose content differs from the matching index
	// entry. Every document here already carries that entry's objectID.
	Updated []content.Document

	// Deleted holds objectIDs of index entries whose source entry is gone,
	// scoped to the reconciled content type.
	Deleted []string
}

// Empty reports whether the diff plans no work at all.
func (d *Diff) Empty() bool {
	return len(d.Created) == 0 && len(d.Updated) == 0 && len(d.Deleted) == 0
}

// Result is the outcome of one reconcile pass.
type Result struct {
	// Created, Updated, and Deleted hold the identifiers produced or touched
	// by the three batch operations. On a dry run all three stay empty.
	Created []string
	Updated []string
	Deleted []string

	// Planned is the diff the pass was computed from, populated on dry runs
	// and real runs alike.
	Planned *Diff
}

// All returns the concatenation of all identifiers touched by the pass.
func (r *Result) All() []string {
	all := make([]string, 0, len(r.Created)+len(r.Updated)+len(r.Deleted))
	all = append(all, r.Created...)
	all = append(all, r.Updated...)
	all = append(all, r.Deleted...)
	return all
}

// documentKey builds the deterministic lookup key documents are matched by.
// Collisions across distinct locales are guarded against at match time, not
// here.
func documentKey(id, locale string) string {
	sum := md5.Sum([]byte(id + locale))
	return hex.EncodeToString(sum[:])
}
