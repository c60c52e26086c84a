package archive

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"content-indexer/core/content"
	"content-indexer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	assert.Equal(t, "runs/r1/article.jsonl", ObjectName("r1", "article"))
}

func TestArchiver_EnsureBucket(t *testing.T) {
	t.Run("Existing bucket", func(t *testing.T) {
		client := &mocks.Client{}
		client.On("BucketExists", mock.Anything, "archive").Return(true, nil)

		a := New(client, "archive", nil)
		assert.NoError(t, a.EnsureBucket(context.Background()))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing bucket is created", func(t *testing.T) {
		client := &mocks.Client{}
		client.On("BucketExists", mock.Anything, "archive").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "archive", mock.Anything).Return(nil)

		a := New(client, "archive", nil)
		assert.NoError(t, a.EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})
}

func TestArchiver_Archive(t *testing.T) {
	var uploaded string
	client := &mocks.Client{}
	client.On("PutObject", mock.Anything, "archive", "runs/r1/article.jsonl",
		mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			uploaded = string(data)
		}).
		Return(minio.UploadInfo{}, nil)

	docs := []content.Document{
		{"id": "e1", "locale": "en", "title": "Hello", "gap": content.NoValue},
		{"id": "e1", "locale": "de", "title": "Hallo"},
	}

	a := New(client, "archive", nil)
	require.NoError(t, a.Archive(context.Background(), "r1", "article", docs))

	lines := strings.Split(strings.TrimRight(uploaded, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"title":"Hello"`)
	assert.NotContains(t, lines[0], "gap")
	assert.Contains(t, lines[1], `"locale":"de"`)

	opts := client.Calls[0].Arguments.Get(5).(minio.PutObjectOptions)
	assert.Equal(t, "application/x-ndjson", opts.ContentType)
}

func TestArchiver_Fetch(t *testing.T) {
	body := `{"id":"e1","locale":"en","title":"Hello"}` + "\n" +
		`{"id":"e1","locale":"de","title":"Hallo"}` + "\n"

	client := &mocks.Client{}
	client.On("GetObject", mock.Anything, "archive", "runs/r1/article.jsonl", mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil)

	a := New(client, "archive", nil)
	docs, err := a.Fetch(context.Background(), "r1", "article")

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "e1", docs[0].ID())
	assert.Equal(t, "en", docs[0].Locale())
	assert.Equal(t, "Hallo", docs[1]["title"])
}

func TestArchiver_Fetch_Error(t *testing.T) {
	client := &mocks.Client{}
	client.On("GetObject", mock.Anything, "archive", mock.Anything, mock.Anything).
		Return(nil, errors.New("not found"))

	a := New(client, "archive", nil)
	_, err := a.Fetch(context.Background(), "r1", "article")
	assert.Error(t, err)
}

func TestArchiver_Prune(t *testing.T) {
	listed := make(chan minio.ObjectInfo, 2)
	listed <- minio.ObjectInfo{Key: "runs/r1/article.jsonl"}
	listed <- minio.ObjectInfo{Key: "runs/r1/page.jsonl"}
	close(listed)

	var removed []string
	client := &mocks.Client{}
	client.On("ListObjects", mock.Anything, "archive", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "runs/r1/" && opts.Recursive
	})).Return((<-chan minio.ObjectInfo)(listed))
	client.On("RemoveObjects", mock.Anything, "archive", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
				removed = append(removed, obj.Key)
			}
		}).
		Return(nil)

	a := New(client, "archive", nil)
	require.NoError(t, a.Prune(context.Background(), "r1"))

	assert.ElementsMatch(t, []string{"runs/r1/article.jsonl", "runs/r1/page.jsonl"}, removed)
	client.AssertExpectations(t)
}
