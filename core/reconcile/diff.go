package reconcile

import (
	"content-indexer/core/content"
)

// computeDiff classifies incoming documents against the index snapshot.
// It is pure apart from assigning matched objectIDs onto the incoming
// documents, which callers rely on: every document in Updated already
// carries the objectID of its index twin.
func computeDiff(snapshot, docs []content.Document, contentType string, singleEntry bool) *Diff {
	incoming := make(map[string]content.Document, len(docs))
	for _, doc := range docs {
		incoming[documentKey(doc.ID(), doc.Locale())] = doc
	}

	diff := &Diff{}

	for _, existing := range snapshot {
		// Deletes are scoped to the reconciled content type; other types'
		// documents in the shared index are not ours to touch.
		if existing.ContentType() != contentType {
			continue
		}

		doc, ok := incoming[documentKey(existing.ID(), existing.Locale())]
		if !ok {
			if !singleEntry {
				diff.Deleted = append(diff.Deleted, existing.ObjectID())
			}
			continue
		}

		// Key collision guard: only adopt the objectID when the locales
		// genuinely match.
		if existing.Locale() != doc.Locale() {
			continue
		}

		doc.SetObjectID(existing.ObjectID())
		if !doc.Equal(existing) {
			diff.Updated = append(diff.Updated, doc)
		}
	}

	for _, doc := range docs {
		if doc.ObjectID() == "" {
			diff.Created = append(diff.Created, doc)
		}
	}

	return diff
}
