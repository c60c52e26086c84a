package content

// ValueKind discriminates the variants of the Value union.
type ValueKind int

const (
	// KindScalar marks plain values: strings, numbers, booleans, maps that
	// are not linked entries, and unresolved link stubs.
	KindScalar ValueKind = iota
	// KindEntry marks an expanded linked entry.
	KindEntry
	// KindList marks a list of values.
	KindList
)

// Value is the tagged union a field value is decoded into at the source
// boundary. Exactly one of Scalar, Entry, or List is meaningful depending
// on Kind; downstream code switches on Kind and never re-inspects raw
// JSON shapes.
type Value struct {
	Kind   ValueKind
	Scalar any
	Entry  *Entry
	List   []Value
}

// DecodeValue classifies a decoded JSON value.
// A map carrying a sys envelope with an id and a fields object is an
// expanded linked entry. A bare link stub (sys without fields, i.e. a link
// past the expansion depth) stays scalar so it round-trips unchanged.
func DecodeValue(raw any) Value {
	switch v := raw.(type) {
	case []any:
		list := make([]Value, 0, len(v))
		for _, item := range v {
			list = append(list, DecodeValue(item))
		}
		return Value{Kind: KindList, List: list}
	case map[string]any:
		if _, hasFields := v["fields"]; hasFields {
			if entry, err := DecodeEntry(v); err == nil {
				return Value{Kind: KindEntry, Entry: entry}
			}
		}
		return Value{Kind: KindScalar, Scalar: v}
	default:
		return Value{Kind: KindScalar, Scalar: raw}
	}
}
