package flatten

import (
	"content-indexer/core/content"
)

// Flatten converts one hierarchical entry into flat documents, one per
// configured locale group. With no locales configured the entry is assumed
// single-locale and flattens to exactly one document.
//
// Fields configured but undefined across a whole group resolve to the
// content.NoValue marker, never an error.
func Flatten(entry *content.Entry, locales Locales) []content.Document {
	if entry == nil {
		return nil
	}

	// The top-level entry is on the traversal path from the start, so a link
	// straight back to it collapses immediately.
	visited := map[string]struct{}{entry.ID: {}}

	if len(locales) == 0 {
		doc := content.Document(identity(entry))
		for name, field := range entry.Fields {
			doc[name] = resolveField(field, nil, visited)
		}
		return []content.Document{doc}
	}

	docs := make([]content.Document, 0, len(locales))
	for _, group := range locales {
		doc := content.Document(identity(entry))
		doc[content.KeyLocale] = group[0]
		for name, field := range entry.Fields {
			doc[name] = resolveField(field, group, visited)
		}
		docs = append(docs, doc)
	}
	return docs
}

// identity builds the minimal identity envelope retained from the source
// envelope after bookkeeping is stripped.
func identity(entry *content.Entry) map[string]any {
	m := map[string]any{
		content.KeyID:          entry.ID,
		content.KeyContentType: entry.ContentType,
	}
	if entry.CreatedAt != "" {
		m["createdAt"] = entry.CreatedAt
	}
	if entry.UpdatedAt != "" {
		m["updatedAt"] = entry.UpdatedAt
	}
	return m
}

// resolveField selects a field's value for the locale group and resolves it.
// Selection is first-match-wins across the group's codes; a field undefined
// in every code resolves to the NoValue marker.
func resolveField(field content.LocaleField, group []string, visited map[string]struct{}) any {
	value, ok := selectValue(field, group)
	if !ok {
		return content.NoValue
	}
	return resolveValue(value, group, visited)
}

// selectValue picks the value at the first code in the group that has a
// defined entry. An empty group means single-locale delivery: the field's
// sole value is taken.
func selectValue(field content.LocaleField, group []string) (content.Value, bool) {
	if len(group) == 0 {
		for _, value := range field {
			if defined(value) {
				return value, true
			}
		}
		return content.Value{}, false
	}

	for _, code := range group {
		value, ok := field[code]
		if ok && defined(value) {
			return value, true
		}
	}
	return content.Value{}, false
}

// defined reports whether a decoded value actually carries something; a
// locale key holding JSON null counts as undefined.
func defined(v content.Value) bool {
	return v.Kind != content.KindScalar || v.Scalar != nil
}

// resolveValue resolves a selected value for the current locale group,
// descending into linked entries and lists.
func resolveValue(v content.Value, group []string, visited map[string]struct{}) any {
	switch v.Kind {
	case content.KindEntry:
		return resolveEntry(v.Entry, group, visited)
	case content.KindList:
		list := make([]any, 0, len(v.List))
		for _, item := range v.List {
			list = append(list, resolveValue(item, group, visited))
		}
		return list
	default:
		return v.Scalar
	}
}

// resolveEntry inlines a linked entry for the current locale group: strip
// bookkeeping, merge the identity envelope, resolve every field. A repeated
// id on the current path collapses to the identity envelope alone.
func resolveEntry(entry *content.Entry, group []string, visited map[string]struct{}) map[string]any {
	if _, seen := visited[entry.ID]; seen {
		return identity(entry)
	}
	visited[entry.ID] = struct{}{}
	defer delete(visited, entry.ID)

	m := identity(entry)
	for name, field := range entry.Fields {
		m[name] = resolveField(field, group, visited)
	}
	return m
}
