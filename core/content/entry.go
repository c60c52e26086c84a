package content

import (
	"encoding/json"
	"fmt"
)

// LocaleField maps locale codes to the value a field holds in that locale.
// When the source is queried with locale "*" every field arrives in this
// shape, even if only one locale is populated.
type LocaleField map[string]Value

// Entry represents a hierarchical record from the content source.
// Timestamps are kept as the wire strings so equality against previously
// indexed documents stays exact.
type Entry struct {
	// ID is the stable identifier of the record, unique within the source.
	ID string

	// ContentType is the content-type tag of the record.
	ContentType string

	// CreatedAt is the creation timestamp as delivered by the source.
	CreatedAt string

	// UpdatedAt is the last-update timestamp as delivered by the source.
	UpdatedAt string

	// Fields maps field names to their per-locale values.
	Fields map[string]LocaleField
}

// UnmarshalJSON decodes a raw source entry, classifying every field value
// into the Value tagged union exactly once.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	entry, err := DecodeEntry(raw)
	if err != nil {
		return err
	}

	*e = *entry
	return nil
}

// DecodeEntry builds an Entry from a decoded JSON object.
// The source envelope carries bookkeeping (space and content-type
// back-references, revision numbers) that is stripped here; only the
// identity envelope (id, content type, timestamps) is retained.
func DecodeEntry(raw map[string]any) (*Entry, error) {
	sys, ok := raw["sys"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("entry has no sys envelope")
	}

	id, _ := sys["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("entry has no id")
	}

	entry := &Entry{
		ID:          id,
		ContentType: sysContentType(sys),
		CreatedAt:   stringAt(sys, "createdAt"),
		UpdatedAt:   stringAt(sys, "updatedAt"),
		Fields:      map[string]LocaleField{},
	}

	fields, _ := raw["fields"].(map[string]any)
	for name, byLocale := range fields {
		locales, ok := byLocale.(map[string]any)
		if !ok {
			// Field not keyed by locale (single-locale delivery); treat the
			// whole value as belonging to an unnamed locale.
			entry.Fields[name] = LocaleField{"": DecodeValue(byLocale)}
			continue
		}

		lf := LocaleField{}
		for code, value := range locales {
			lf[code] = DecodeValue(value)
		}
		entry.Fields[name] = lf
	}

	return entry, nil
}

// sysContentType digs the content-type id out of the sys back-reference.
func sysContentType(sys map[string]any) string {
	ct, ok := sys["contentType"].(map[string]any)
	if !ok {
		return ""
	}
	ref, ok := ct["sys"].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := ref["id"].(string)
	return id
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
