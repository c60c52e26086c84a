package mocks

import (
	"context"

	"content-indexer/core/content"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of index.Client
type Client struct {
	mock.Mock
}

func (m *Client) FullScan(ctx context.Context, index string) ([]content.Document, error) {
	args := m.Called(ctx, index)
	if docs, ok := args.Get(0).([]content.Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) BatchCreate(ctx context.Context, index string, docs []content.Document) ([]string, error) {
	args := m.Called(ctx, index, docs)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) BatchUpsert(ctx context.Context, index string, docs []content.Document) ([]string, error) {
	args := m.Called(ctx, index, docs)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) BatchDelete(ctx context.Context, index string, ids []string) ([]string, error) {
	args := m.Called(ctx, index, ids)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Search(ctx context.Context, index, query string) ([]content.Document, error) {
	args := m.Called(ctx, index, query)
	if docs, ok := args.Get(0).([]content.Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}
