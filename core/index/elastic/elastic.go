package elastic

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"content-indexer/core/content"
	"content-indexer/core/index"
	"content-indexer/core/utils"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const (
	// scanPageSize is the page size used by the scroll-based full scan.
	scanPageSize = 1000
	// scrollKeepAlive is how long the scroll context stays open between pages.
	scrollKeepAlive = time.Minute
)

// client implements index.Client on Elasticsearch.
type client struct {
	es *elasticsearch.Client
}

// New creates an Elasticsearch-backed index client from the configuration.
func New(cfg index.Config) (index.Client, error) {
	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.AddressList(),
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &client{es: es}, nil
}

// FullScan reads every document of the index via the scroll API.
// A missing index reads as empty so the first sync against a fresh cluster
// starts from a clean snapshot.
func (c *client) FullScan(ctx context.Context, indexName string) ([]content.Document, error) {
	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(indexName),
		c.es.Search.WithSize(scanPageSize),
		c.es.Search.WithScroll(scrollKeepAlive),
	)
	if err != nil {
		return nil, fmt.Errorf("full scan of %s failed: %w", indexName, err)
	}

	if res.StatusCode == http.StatusNotFound {
		res.Body.Close()
		return nil, nil
	}

	docs, scrollID, err := decodeHits(res)
	if err != nil {
		return nil, fmt.Errorf("full scan of %s failed: %w", indexName, err)
	}

	for scrollID != "" {
		res, err := c.es.Scroll(
			c.es.Scroll.WithContext(ctx),
			c.es.Scroll.WithScrollID(scrollID),
			c.es.Scroll.WithScroll(scrollKeepAlive),
		)
		if err != nil {
			return nil, fmt.Errorf("full scan of %s failed: %w", indexName, err)
		}

		page, nextID, err := decodeHits(res)
		if err != nil {
			return nil, fmt.Errorf("full scan of %s failed: %w", indexName, err)
		}
		if len(page) == 0 {
			scrollID = nextID
			break
		}

		docs = append(docs, page...)
		scrollID = nextID
	}

	if scrollID != "" {
		// Best effort; the scroll context expires on its own otherwise.
		if res, err := c.es.ClearScroll(c.es.ClearScroll.WithScrollID(scrollID)); err == nil {
			res.Body.Close()
		}
	}

	return docs, nil
}

// BatchCreate assigns fresh objectIDs and writes the documents in one bulk
// request. Empty input returns an empty identifier list without a network
// call.
func (c *client) BatchCreate(ctx context.Context, indexName string, docs []content.Document) ([]string, error) {
	if len(docs) == 0 {
		return []string{}, nil
	}

	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = uuid.NewString()
		doc.SetObjectID(ids[i])
	}

	return ids, c.bulk(ctx, indexName, docs, ids)
}

// BatchUpsert writes the documents by their existing objectIDs in one bulk
// request. Empty input returns an empty identifier list without a network
// call.
func (c *client) BatchUpsert(ctx context.Context, indexName string, docs []content.Document) ([]string, error) {
	if len(docs) == 0 {
		return []string{}, nil
	}

	ids := make([]string, len(docs))
	for i, doc := range docs {
		if doc.ObjectID() == "" {
			return nil, fmt.Errorf("document %s/%s has no objectID for upsert", doc.ID(), doc.Locale())
		}
		ids[i] = doc.ObjectID()
	}

	return ids, c.bulk(ctx, indexName, docs, ids)
}

// BatchDelete removes documents by objectID in one bulk request. Empty input
// returns an empty identifier list without a network call.
func (c *client) BatchDelete(ctx context.Context, indexName string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	body, err := buildDeleteBody(indexName, ids)
	if err != nil {
		return nil, err
	}

	res, err := c.es.Bulk(body, c.es.Bulk.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("bulk delete on %s failed: %w", indexName, err)
	}
	if err := checkBulkResponse(res); err != nil {
		return nil, fmt.Errorf("bulk delete on %s failed: %w", indexName, err)
	}

	return ids, nil
}

// Search performs an ad-hoc query-string search against the index.
func (c *client) Search(ctx context.Context, indexName, query string) ([]content.Document, error) {
	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(indexName),
		c.es.Search.WithQuery(query),
		c.es.Search.WithSize(scanPageSize),
	)
	if err != nil {
		return nil, fmt.Errorf("search on %s failed: %w", indexName, err)
	}

	docs, _, err := decodeHits(res)
	if err != nil {
		return nil, fmt.Errorf("search on %s failed: %w", indexName, err)
	}
	return docs, nil
}

// bulk issues one bulk request of index actions and checks the response.
func (c *client) bulk(ctx context.Context, indexName string, docs []content.Document, ids []string) error {
	body, err := buildIndexBody(indexName, docs, ids)
	if err != nil {
		return err
	}

	res, err := c.es.Bulk(body, c.es.Bulk.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("bulk write on %s failed: %w", indexName, err)
	}
	if err := checkBulkResponse(res); err != nil {
		return fmt.Errorf("bulk write on %s failed: %w", indexName, err)
	}
	return nil
}

// decodeHits parses a search or scroll response into documents, restoring
// each document's objectID from its _id.
func decodeHits(res *esapi.Response) ([]content.Document, string, error) {
	defer res.Body.Close()

	if res.IsError() {
		return nil, "", fmt.Errorf("search request failed: %s", res.String())
	}

	var rb bytes.Buffer
	if _, err := rb.ReadFrom(res.Body); err != nil {
		return nil, "", err
	}

	body := make(map[string]any)
	if err := jsoniter.Unmarshal(rb.Bytes(), &body); err != nil {
		return nil, "", err
	}

	scrollID := utils.ToString(body["_scroll_id"])

	hits, ok := body["hits"].(map[string]any)
	if !ok {
		return nil, scrollID, nil
	}
	items, ok := hits["hits"].([]any)
	if !ok {
		return nil, scrollID, nil
	}

	docs := make([]content.Document, 0, len(items))
	for _, item := range items {
		hit, ok := item.(map[string]any)
		if !ok {
			continue
		}

		doc := content.Document{}
		if source, ok := hit["_source"].(map[string]any); ok {
			for k, v := range source {
				doc[k] = v
			}
		}
		doc.SetObjectID(utils.ToString(hit["_id"]))
		docs = append(docs, doc)
	}

	return docs, scrollID, nil
}
