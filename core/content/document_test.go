package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Accessors(t *testing.T) {
	doc := Document{
		KeyID:          "e1",
		KeyLocale:      "en",
		KeyContentType: "article",
		"title":        "Hello",
	}

	assert.Equal(t, "e1", doc.ID())
	assert.Equal(t, "en", doc.Locale())
	assert.Equal(t, "article", doc.ContentType())
	assert.Equal(t, "", doc.ObjectID())

	doc.SetObjectID("X1")
	assert.Equal(t, "X1", doc.ObjectID())
}

func TestDocument_Equal(t *testing.T) {
	tests := []struct {
		name string
		a    Document
		b    Document
		want bool
	}{
		{
			name: "Reflexive",
			a:    Document{"id": "e1", "title": "Hello"},
			b:    Document{"id": "e1", "title": "Hello"},
			want: true,
		},
		{
			name: "NoValue equals missing key",
			a:    Document{"id": "e1", "subtitle": NoValue},
			b:    Document{"id": "e1"},
			want: true,
		},
		{
			name: "NoValue equals missing key, either side",
			a:    Document{"id": "e1"},
			b:    Document{"id": "e1", "subtitle": NoValue},
			want: true,
		},
		{
			name: "Different values",
			a:    Document{"id": "e1", "title": "Hello"},
			b:    Document{"id": "e1", "title": "Hallo"},
			want: false,
		},
		{
			name: "Defined value vs missing key",
			a:    Document{"id": "e1", "title": "Hello"},
			b:    Document{"id": "e1"},
			want: false,
		},
		{
			name: "Nested NoValue",
			a:    Document{"id": "e1", "author": map[string]any{"name": "Ada", "bio": NoValue}},
			b:    Document{"id": "e1", "author": map[string]any{"name": "Ada"}},
			want: true,
		},
		{
			name: "Nested list",
			a:    Document{"id": "e1", "tags": []any{"a", "b"}},
			b:    Document{"id": "e1", "tags": []any{"a", "b"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestDocument_MarshalJSON_DropsNoValue(t *testing.T) {
	doc := Document{
		"id":       "e1",
		"title":    "Hello",
		"subtitle": NoValue,
		"author":   map[string]any{"name": "Ada", "bio": NoValue},
	}

	data, err := json.Marshal(doc)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "e1", decoded["id"])
	assert.Equal(t, "Hello", decoded["title"])
	assert.NotContains(t, decoded, "subtitle")

	author := decoded["author"].(map[string]any)
	assert.Equal(t, "Ada", author["name"])
	assert.NotContains(t, author, "bio")
}
