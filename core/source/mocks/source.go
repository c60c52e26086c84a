package mocks

import (
	"context"

	"content-indexer/core/source"

	"github.com/stretchr/testify/mock"
)

// ContentSource is a mock implementation of source.ContentSource
type ContentSource struct {
	mock.Mock
}

func (m *ContentSource) Search(ctx context.Context, q source.Query) (*source.SearchResult, error) {
	args := m.Called(ctx, q)
	if result, ok := args.Get(0).(*source.SearchResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}
