package content

import (
	"encoding/json"
	"reflect"

	"content-indexer/core/utils"
)

// Reserved document keys. Everything else on a Document is a flattened
// source field.
const (
	KeyID          = "id"
	KeyLocale      = "locale"
	KeyContentType = "contentType"
	KeyObjectID    = "objectID"
)

// noValue is the type of the NoValue marker.
type noValue struct{}

// NoValue marks a field that is configured for a locale group but undefined
// in every code of that group. It is distinct from the field being absent so
// the flattener can always emit every configured field, yet equality and
// marshaling treat it as absence.
var NoValue = noValue{}

// Document is a flat, single-locale representation of one source entry,
// ready to be written to the index. The reserved keys identify it; all
// other keys are locale-resolved field values.
type Document map[string]any

// ID returns the originating entry id.
func (d Document) ID() string { return utils.ToString(d[KeyID]) }

// Locale returns the canonical locale code the document was resolved to.
func (d Document) Locale() string { return utils.ToString(d[KeyLocale]) }

// ContentType returns the content-type tag of the originating entry.
func (d Document) ContentType() string { return utils.ToString(d[KeyContentType]) }

// ObjectID returns the index-side identifier, or "" if the document has not
// been matched against an index entry yet.
func (d Document) ObjectID() string { return utils.ToString(d[KeyObjectID]) }

// SetObjectID assigns the index-side identifier.
func (d Document) SetObjectID(id string) { d[KeyObjectID] = id }

// Equal reports whether two documents carry the same content.
// NoValue fields and missing fields are treated as the same thing on either
// side, so a document that gained an explicit "no value" for a field still
// equals its previously indexed twin that never had the field.
func (d Document) Equal(other Document) bool {
	return reflect.DeepEqual(normalize(map[string]any(d)), normalize(map[string]any(other)))
}

// MarshalJSON drops NoValue fields so the marker never reaches the index or
// the archive.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(normalize(map[string]any(d)))
}

// normalize returns a copy of v with NoValue fields removed, descending into
// nested maps and slices (nested linked entries resolve fields the same way
// top-level ones do, so NoValue can appear at any depth).
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if _, skip := item.(noValue); skip {
				continue
			}
			out[k] = normalize(item)
		}
		return out
	case Document:
		return normalize(map[string]any(val))
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, normalize(item))
		}
		return out
	default:
		return v
	}
}
