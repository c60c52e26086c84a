package elastic

import (
	"bytes"
	"fmt"
	"strings"

	"content-indexer/core/content"

	"github.com/elastic/go-elasticsearch/v7/esapi"
	jsoniter "github.com/json-iterator/go"
)

// bulkMeta is the action line preceding each bulk payload line.
type bulkMeta struct {
	Index string `json:"_index"`
	ID    string `json:"_id"`
}

// buildIndexBody builds a bulk body of index actions for docs with their
// assigned ids. The objectID key is stripped from the stored source; the
// Elasticsearch _id carries it.
func buildIndexBody(index string, docs []content.Document, ids []string) (*bytes.Reader, error) {
	var buf bytes.Buffer
	for i, doc := range docs {
		meta, err := jsoniter.Marshal(map[string]bulkMeta{"index": {Index: index, ID: ids[i]}})
		if err != nil {
			return nil, err
		}

		source, err := jsoniter.Marshal(withoutObjectID(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal document %s: %w", doc.ID(), err)
		}

		buf.Write(meta)
		buf.WriteByte('\n')
		buf.Write(source)
		buf.WriteByte('\n')
	}
	return bytes.NewReader(buf.Bytes()), nil
}

// buildDeleteBody builds a bulk body of delete actions.
func buildDeleteBody(index string, ids []string) (*bytes.Reader, error) {
	var buf bytes.Buffer
	for _, id := range ids {
		meta, err := jsoniter.Marshal(map[string]bulkMeta{"delete": {Index: index, ID: id}})
		if err != nil {
			return nil, err
		}
		buf.Write(meta)
		buf.WriteByte('\n')
	}
	return bytes.NewReader(buf.Bytes()), nil
}

// withoutObjectID returns a shallow copy of the document minus the
// index-side identifier.
func withoutObjectID(doc content.Document) content.Document {
	out := make(content.Document, len(doc))
	for k, v := range doc {
		if k == content.KeyObjectID {
			continue
		}
		out[k] = v
	}
	return out
}

// checkBulkResponse fails if the transport-level response or any item in
// the bulk response reports an error.
func checkBulkResponse(r *esapi.Response) error {
	if r == nil {
		return fmt.Errorf("bulk response is nil")
	}
	defer r.Body.Close()

	if r.IsError() {
		return fmt.Errorf("bulk request failed: %s", r.String())
	}

	var rb bytes.Buffer
	if _, err := rb.ReadFrom(r.Body); err != nil {
		return err
	}

	body := make(map[string]any)
	if err := jsoniter.Unmarshal(rb.Bytes(), &body); err != nil {
		return err
	}

	hasErrors, ok := body["errors"].(bool)
	if !ok || !hasErrors {
		return nil
	}
	return itemErrors(body)
}

// itemErrors collects the failed items of a bulk response into one error.
func itemErrors(body map[string]any) error {
	var sb strings.Builder
	sb.WriteString("bulk request has item errors:")

	items, ok := body["items"].([]any)
	if !ok {
		return nil
	}

	for _, i := range items {
		item, ok := i.(map[string]any)
		if !ok {
			continue
		}
		for _, v := range item {
			iv, ok := v.(map[string]any)
			if !ok {
				continue
			}
			if iv["error"] != nil {
				sb.WriteString(fmt.Sprintf("\n%v", i))
			}
		}
	}
	return fmt.Errorf("%s", sb.String())
}
