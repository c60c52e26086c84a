package index

import (
	"context"
	"strings"

	"content-indexer/core/content"
)

// Client is the contract the destination index must satisfy.
type Client interface {
	// FullScan returns every document currently in the index. A missing
	// index reads as empty, not as an error.
	FullScan(ctx context.Context, index string) ([]content.Document, error)

	// BatchCreate writes documents that have no index-side identifier yet,
	// assigns each a fresh objectID, and returns the assigned identifiers.
	BatchCreate(ctx context.Context, index string, docs []content.Document) ([]string, error)

	// BatchUpsert writes documents by their existing objectID and returns
	// the touched identifiers.
	BatchUpsert(ctx context.Context, index string, docs []content.Document) ([]string, error)

	// BatchDelete removes documents by objectID and returns the removed
	// identifiers.
	BatchDelete(ctx context.Context, index string, ids []string) ([]string, error)

	// Search performs an ad-hoc query against the index. It is not used by
	// the reconciliation path.
	Search(ctx context.Context, index, query string) ([]content.Document, error)
}

// Config holds configuration for the document index.
type Config struct {
	// Addresses is a comma-separated list of index node URLs.
	Addresses string `mapstructure:"addresses" default:"http://localhost:9200"`
	// Username is the basic-auth user, if the index requires one.
	Username string `mapstructure:"username" default:""`
	// Password is the basic-auth password.
	Password string `mapstructure:"password" default:""`
	// Prefix is prepended to every index name this process touches.
	Prefix string `mapstructure:"prefix" default:""`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// AddressList splits the configured addresses into a slice.
func (c Config) AddressList() []string {
	var addrs []string
	for _, a := range strings.Split(c.Addresses, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			addrs = append(addrs, a)
		}
	}
	return addrs
}
