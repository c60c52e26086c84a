package archive

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"content-indexer/core/content"
	"content-indexer/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver writes run documents to object storage.
type Archiver struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// New creates an archiver writing into the given bucket.
func New(client storage.Client, bucket string, logger *zap.Logger) *Archiver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archiver{client: client, bucket: bucket, logger: logger}
}

// ObjectName returns the storage object name for one run and content type.
func ObjectName(runID, contentType string) string {
	return fmt.Sprintf("runs/%s/%s.jsonl", runID, contentType)
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create archive bucket: %w", err)
	}
	return nil
}

// Archive writes one content type's documents as a JSONL object.
func (a *Archiver) Archive(ctx context.Context, runID, contentType string, docs []content.Document) error {
	var buf bytes.Buffer
	for _, doc := range docs {
		line, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document %s/%s: %w", doc.ID(), doc.Locale(), err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	name := ObjectName(runID, contentType)
	_, err := a.client.PutObject(ctx, a.bucket, name, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/x-ndjson",
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", name, err)
	}

	a.logger.Debug("Archived run documents",
		zap.String("object", name),
		zap.Int("documents", len(docs)),
	)
	return nil
}

// Fetch reads one archived object back into documents.
func (a *Archiver) Fetch(ctx context.Context, runID, contentType string) ([]content.Document, error) {
	name := ObjectName(runID, contentType)
	obj, err := a.client.GetObject(ctx, a.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch archive %s: %w", name, err)
	}
	defer obj.Close()

	var docs []content.Document
	scanner := bufio.NewScanner(obj)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		doc := content.Document{}
		if err := json.Unmarshal(line, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode archive %s: %w", name, err)
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", name, err)
	}

	return docs, nil
}

// Prune removes every archived object of one run.
func (a *Archiver) Prune(ctx context.Context, runID string) error {
	prefix := fmt.Sprintf("runs/%s/", runID)

	objects := a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	toRemove := make(chan minio.ObjectInfo)
	go func() {
		defer close(toRemove)
		for obj := range objects {
			if obj.Err != nil {
				a.logger.Warn("Skipping archive object during prune", zap.Error(obj.Err))
				continue
			}
			toRemove <- obj
		}
	}()

	for removeErr := range a.client.RemoveObjects(ctx, a.bucket, toRemove, minio.RemoveObjectsOptions{}) {
		if removeErr.Err != nil {
			return fmt.Errorf("failed to prune archive object %s: %w", removeErr.ObjectName, removeErr.Err)
		}
	}

	return nil
}
