package source

import (
	"context"

	"content-indexer/core/content"
)

// Query describes one page request against the content source.
type Query struct {
	// ContentType filters entries by content-type tag.
	ContentType string

	// EntryID, when set, restricts the query to one entry by exact id.
	EntryID string

	// Locale selects which locales are delivered. "*" requests all.
	Locale string

	// Include is the link-expansion depth for nested entries.
	Include int

	// Limit is the maximum number of entries per page.
	Limit int

	// Skip is the offset of this page.
	Skip int
}

// SearchResult is one page of entries plus the paging envelope.
type SearchResult struct {
	Items []content.Entry `json:"items"`
	Total int             `json:"total"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
}

// ContentSource is the opaque contract the content backend must satisfy.
// Repeated calls with increasing Skip page through all matching entries.
type ContentSource interface {
	Search(ctx context.Context, q Query) (*SearchResult, error)
}

// Config holds configuration for the content source client.
type Config struct {
	// Host is the base URL of the content delivery API.
	Host string `mapstructure:"host" default:"https://cdn.contentful.com"`
	// Space is the content space identifier.
	Space string `mapstructure:"space" default:""`
	// Environment is the content environment within the space.
	Environment string `mapstructure:"environment" default:"master"`
	// Token is the delivery API access token.
	Token string `mapstructure:"token" default:""`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
