// Package flatten turns hierarchical, multi-locale entries into flat,
// single-locale documents ready for indexing.
//
// Each configured locale group produces one document per entry. Within a
// group, codes are tried in order and the first defined value wins; the
// group's first code becomes the document's canonical locale tag. Linked
// entries (single or in lists) are resolved inline for the current group
// before the outer field value is taken.
//
// # Cycle Guard
//
// Linked entries may reference an ancestor. Traversal carries a stack of
// entry ids for the current path; a repeated id is not re-descended and
// collapses to its identity envelope instead.
//
// # Usage
//
//	locales, _ := flatten.ParseLocales("en,en-US;de")
//	docs := flatten.Flatten(entry, locales)
//	// len(docs) == 2, docs[0].Locale() == "en", docs[1].Locale() == "de"
package flatten
