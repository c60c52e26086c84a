package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawEntry = `{
	"sys": {
		"id": "e1",
		"contentType": {"sys": {"id": "article"}},
		"createdAt": "2024-01-01T00:00:00Z",
		"updatedAt": "2024-02-01T00:00:00Z",
		"revision": 7,
		"space": {"sys": {"id": "s1"}}
	},
	"fields": {
		"title": {"en": "Hello", "de": "Hallo"},
		"rating": {"en": 4.5},
		"author": {
			"en": {
				"sys": {"id": "a1", "contentType": {"sys": {"id": "author"}}},
				"fields": {"name": {"en": "Ada"}}
			}
		},
		"related": {
			"en": [
				{
					"sys": {"id": "e2", "contentType": {"sys": {"id": "article"}}},
					"fields": {"title": {"en": "Other"}}
				}
			]
		},
		"unresolved": {"en": {"sys": {"type": "Link", "linkType": "Entry", "id": "e9"}}}
	}
}`

func TestEntry_UnmarshalJSON(t *testing.T) {
	var entry Entry
	require.NoError(t, json.Unmarshal([]byte(rawEntry), &entry))

	assert.Equal(t, "e1", entry.ID)
	assert.Equal(t, "article", entry.ContentType)
	assert.Equal(t, "2024-01-01T00:00:00Z", entry.CreatedAt)
	assert.Equal(t, "2024-02-01T00:00:00Z", entry.UpdatedAt)

	t.Run("Scalar", func(t *testing.T) {
		title := entry.Fields["title"]["en"]
		assert.Equal(t, KindScalar, title.Kind)
		assert.Equal(t, "Hello", title.Scalar)
		assert.Equal(t, KindScalar, entry.Fields["rating"]["en"].Kind)
	})

	t.Run("Linked entry", func(t *testing.T) {
		author := entry.Fields["author"]["en"]
		require.Equal(t, KindEntry, author.Kind)
		assert.Equal(t, "a1", author.Entry.ID)
		assert.Equal(t, "author", author.Entry.ContentType)
		assert.Equal(t, "Ada", author.Entry.Fields["name"]["en"].Scalar)
	})

	t.Run("List of linked entries", func(t *testing.T) {
		related := entry.Fields["related"]["en"]
		require.Equal(t, KindList, related.Kind)
		require.Len(t, related.List, 1)
		assert.Equal(t, KindEntry, related.List[0].Kind)
		assert.Equal(t, "e2", related.List[0].Entry.ID)
	})

	t.Run("Bare link stub stays scalar", func(t *testing.T) {
		stub := entry.Fields["unresolved"]["en"]
		assert.Equal(t, KindScalar, stub.Kind)
		m, ok := stub.Scalar.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, m, "sys")
	})
}

func TestDecodeEntry_Errors(t *testing.T) {
	t.Run("Missing sys", func(t *testing.T) {
		_, err := DecodeEntry(map[string]any{"fields": map[string]any{}})
		assert.Error(t, err)
	})

	t.Run("Missing id", func(t *testing.T) {
		_, err := DecodeEntry(map[string]any{"sys": map[string]any{}})
		assert.Error(t, err)
	})
}

func TestDecodeValue_ScalarList(t *testing.T) {
	v := DecodeValue([]any{"a", 1.0})
	assert.Equal(t, KindList, v.Kind)
	assert.Len(t, v.List, 2)
	assert.Equal(t, "a", v.List[0].Scalar)
}
