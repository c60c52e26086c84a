package source

import (
	"context"
	"fmt"

	"content-indexer/core/content"
	"content-indexer/core/flatten"

	"go.uber.org/zap"
)

const (
	// pageSize is the fixed page size for pagination.
	pageSize = 1000
	// includeDepth is the link-expansion depth, deep enough to materialize
	// nested entries inline for the flattener.
	includeDepth = 2
)

// Fetcher pages through all entries of a content type and flattens them.
type Fetcher struct {
	source  ContentSource
	locales flatten.Locales
	logger  *zap.Logger
}

// NewFetcher creates a fetcher bound to a content source and locale spec.
func NewFetcher(src ContentSource, locales flatten.Locales, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{source: src, locales: locales, logger: logger}
}

// FetchAll fetches every entry of the content type (or just one, when
// entryID is set), then flattens each into its per-locale documents.
// Pagination completes fully before flattening starts so the total count
// stays consistent; any page failure fails the whole call.
func (f *Fetcher) FetchAll(ctx context.Context, contentType, entryID string) ([]content.Document, error) {
	var entries []content.Entry

	skip := 0
	for {
		result, err := f.source.Search(ctx, Query{
			ContentType: contentType,
			EntryID:     entryID,
			Locale:      "*",
			Include:     includeDepth,
			Limit:       pageSize,
			Skip:        skip,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s page at offset %d: %w", contentType, skip, err)
		}

		entries = append(entries, result.Items...)

		if skip+pageSize >= result.Total {
			break
		}
		skip += pageSize
	}

	docs := make([]content.Document, 0, len(entries)*max(len(f.locales), 1))
	for i := range entries {
		docs = append(docs, flatten.Flatten(&entries[i], f.locales)...)
	}

	f.logger.Debug("Fetched content type",
		zap.String("content_type", contentType),
		zap.Int("entries", len(entries)),
		zap.Int("documents", len(docs)),
	)

	return docs, nil
}
