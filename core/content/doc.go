// Package content defines the data model shared by the indexing pipeline.
//
// It owns the two shapes that flow through the system:
//
//   - Entry: a hierarchical, multi-locale record as delivered by the content
//     source. Field values are decoded once, at the API boundary, into a
//     tagged union (Value) so downstream code never has to re-inspect raw
//     JSON shapes.
//   - Document: a flat, single-locale, search-index-ready representation of
//     one entry. Documents are what gets written to the index.
//
// # The NoValue Marker
//
// A field that is configured for a locale group but has no value in any of
// the group's codes resolves to the NoValue marker rather than being omitted
// or raising an error. Equal treats NoValue and a missing key as the same
// thing, and JSON marshaling drops NoValue fields, so the marker never
// reaches the index.
package content
