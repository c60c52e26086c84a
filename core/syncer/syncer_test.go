package syncer_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"content-indexer/core/content"
	"content-indexer/core/flatten"
	"content-indexer/core/history"
	indexmocks "content-indexer/core/index/mocks"
	"content-indexer/core/source"
	sourcemocks "content-indexer/core/source/mocks"
	"content-indexer/core/syncer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recorderMock captures recorded runs.
type recorderMock struct {
	mu   sync.Mutex
	runs []history.SyncRun
	err  error
}

func (r *recorderMock) Record(ctx context.Context, run *history.SyncRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, *run)
	return r.err
}

func (r *recorderMock) Recent(ctx context.Context, limit int) ([]history.SyncRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs, nil
}

// archiverMock captures archived documents per content type.
type archiverMock struct {
	mu       sync.Mutex
	archived map[string][]content.Document
	err      error
}

func (a *archiverMock) Archive(ctx context.Context, runID, contentType string, docs []content.Document) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.archived == nil {
		a.archived = map[string][]content.Document{}
	}
	a.archived[contentType] = docs
	return a.err
}

func searchResult(ids ...string) *source.SearchResult {
	items := make([]content.Entry, 0, len(ids))
	for _, id := range ids {
		items = append(items, content.Entry{
			ID:          id,
			ContentType: "article",
			Fields: map[string]content.LocaleField{
				"title": {"en": content.Value{Kind: content.KindScalar, Scalar: "T-" + id}},
			},
		})
	}
	return &source.SearchResult{Items: items, Total: len(items)}
}

func matchType(contentType string) any {
	return mock.MatchedBy(func(q source.Query) bool {
		return q.ContentType == contentType
	})
}

func TestSync_Validation(t *testing.T) {
	s := syncer.New(&sourcemocks.ContentSource{}, &indexmocks.Client{}, nil, "", nil)

	err := s.Sync(context.Background(), syncer.Request{IndexName: "posts"})
	assert.ErrorContains(t, err, "no content types")

	err = s.Sync(context.Background(), syncer.Request{ContentType: "article"})
	assert.ErrorContains(t, err, "index name")
}

func TestSync_EndToEnd(t *testing.T) {
	src := &sourcemocks.ContentSource{}
	src.On("Search", mock.Anything, matchType("article")).Return(searchResult("e1"), nil)

	idx := &indexmocks.Client{}
	idx.On("FullScan", mock.Anything, "dev_posts").Return([]content.Document{}, nil).Once()
	idx.On("BatchCreate", mock.Anything, "dev_posts", mock.MatchedBy(func(docs []content.Document) bool {
		return len(docs) == 1 && docs[0].ID() == "e1"
	})).Return([]string{"N1"}, nil).Once()

	rec := &recorderMock{}
	arc := &archiverMock{}

	s := syncer.New(src, idx, flatten.Locales{{"en"}}, "dev_", nil).
		WithRecorder(rec).
		WithArchiver(arc)

	var observed []content.Document
	err := s.Sync(context.Background(), syncer.Request{
		ContentType: "article",
		IndexName:   "posts",
		Observer: func(docs []content.Document) {
			observed = docs
		},
	})
	require.NoError(t, err)

	idx.AssertExpectations(t)
	require.Len(t, observed, 1)
	assert.Equal(t, "e1", observed[0].ID())

	require.Len(t, rec.runs, 1)
	run := rec.runs[0]
	assert.Equal(t, "article", run.ContentType)
	assert.Equal(t, "dev_posts", run.IndexName)
	assert.Equal(t, 1, run.Created)
	assert.NotEmpty(t, run.RunID)
	assert.Empty(t, run.Error)

	require.Len(t, arc.archived["article"], 1)
}

func TestSync_MultipleTypesShareOneSnapshot(t *testing.T) {
	src := &sourcemocks.ContentSource{}
	src.On("Search", mock.Anything, matchType("article")).Return(searchResult("e1"), nil)
	src.On("Search", mock.Anything, matchType("page")).Return(&source.SearchResult{Total: 0}, nil)

	idx := &indexmocks.Client{}
	// Both content types reconcile through the same snapshot; FullScan runs
	// exactly once for the run.
	idx.On("FullScan", mock.Anything, "posts").Return([]content.Document{}, nil).Once()
	idx.On("BatchCreate", mock.Anything, "posts", mock.Anything).Return([]string{"N1"}, nil).Once()

	s := syncer.New(src, idx, flatten.Locales{{"en"}}, "", nil)
	err := s.Sync(context.Background(), syncer.Request{
		ContentTypes: []string{"article", "page"},
		IndexName:    "posts",
	})

	require.NoError(t, err)
	idx.AssertExpectations(t)
}

func TestSync_TypeFailuresAreIsolated(t *testing.T) {
	src := &sourcemocks.ContentSource{}
	src.On("Search", mock.Anything, matchType("article")).Return(searchResult("e1"), nil)
	src.On("Search", mock.Anything, matchType("broken")).Return(nil, errors.New("fetch boom"))

	idx := &indexmocks.Client{}
	idx.On("FullScan", mock.Anything, "posts").Return([]content.Document{}, nil).Once()
	idx.On("BatchCreate", mock.Anything, "posts", mock.Anything).Return([]string{"N1"}, nil).Once()

	rec := &recorderMock{}
	s := syncer.New(src, idx, flatten.Locales{{"en"}}, "", nil).WithRecorder(rec)

	err := s.Sync(context.Background(), syncer.Request{
		ContentTypes: []string{"article", "broken"},
		IndexName:    "posts",
	})

	// The broken type fails the run, but the healthy one still indexed.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "fetch boom")
	idx.AssertExpectations(t)

	// Both outcomes are recorded, the failed one with its error.
	require.Len(t, rec.runs, 2)
	byType := map[string]history.SyncRun{}
	for _, run := range rec.runs {
		byType[run.ContentType] = run
	}
	assert.Empty(t, byType["article"].Error)
	assert.Contains(t, byType["broken"].Error, "fetch boom")
}

func TestSync_SingleEntrySuppressesDeletes(t *testing.T) {
	src := &sourcemocks.ContentSource{}
	src.On("Search", mock.Anything, mock.MatchedBy(func(q source.Query) bool {
		return q.EntryID == "e1"
	})).Return(searchResult("e1"), nil)

	snapshot := []content.Document{
		{
			content.KeyID:          "e2",
			content.KeyLocale:      "en",
			content.KeyContentType: "article",
			content.KeyObjectID:    "X2",
			"title":                "Sibling",
		},
	}

	idx := &indexmocks.Client{}
	idx.On("FullScan", mock.Anything, "posts").Return(snapshot, nil).Once()
	idx.On("BatchCreate", mock.Anything, "posts", mock.Anything).Return([]string{"N1"}, nil).Once()
	// No BatchDelete expectation: the unfetched sibling must survive.

	s := syncer.New(src, idx, flatten.Locales{{"en"}}, "", nil)
	err := s.Sync(context.Background(), syncer.Request{
		ContentType: "article",
		IndexName:   "posts",
		EntryID:     "e1",
	})

	require.NoError(t, err)
	idx.AssertExpectations(t)
}

func TestSync_ObserverPanicDoesNotStopIndexing(t *testing.T) {
	src := &sourcemocks.ContentSource{}
	src.On("Search", mock.Anything, mock.Anything).Return(searchResult("e1"), nil)

	idx := &indexmocks.Client{}
	idx.On("FullScan", mock.Anything, "posts").Return([]content.Document{}, nil).Once()
	idx.On("BatchCreate", mock.Anything, "posts", mock.Anything).Return([]string{"N1"}, nil).Once()

	s := syncer.New(src, idx, flatten.Locales{{"en"}}, "", nil)
	err := s.Sync(context.Background(), syncer.Request{
		ContentType: "article",
		IndexName:   "posts",
		Observer: func([]content.Document) {
			panic("observer boom")
		},
	})

	require.NoError(t, err)
	idx.AssertExpectations(t)
}

func TestSync_RecorderAndArchiverFailuresAreNonFatal(t *testing.T) {
	src := &sourcemocks.ContentSource{}
	src.On("Search", mock.Anything, mock.Anything).Return(searchResult("e1"), nil)

	idx := &indexmocks.Client{}
	idx.On("FullScan", mock.Anything, "posts").Return([]content.Document{}, nil).Once()
	idx.On("BatchCreate", mock.Anything, "posts", mock.Anything).Return([]string{"N1"}, nil).Once()

	s := syncer.New(src, idx, flatten.Locales{{"en"}}, "", nil).
		WithRecorder(&recorderMock{err: errors.New("db down")}).
		WithArchiver(&archiverMock{err: errors.New("bucket down")})

	err := s.Sync(context.Background(), syncer.Request{
		ContentType: "article",
		IndexName:   "posts",
	})

	require.NoError(t, err)
	idx.AssertExpectations(t)
}

func TestSync_DryRunWritesNothing(t *testing.T) {
	src := &sourcemocks.ContentSource{}
	src.On("Search", mock.Anything, mock.Anything).Return(searchResult("e1"), nil)

	idx := &indexmocks.Client{}
	idx.On("FullScan", mock.Anything, "posts").Return([]content.Document{}, nil).Once()
	// No write expectations at all.

	s := syncer.New(src, idx, flatten.Locales{{"en"}}, "", nil)
	err := s.Sync(context.Background(), syncer.Request{
		ContentType: "article",
		IndexName:   "posts",
		DryRun:      true,
	})

	require.NoError(t, err)
	idx.AssertExpectations(t)
}
