package status_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"content-indexer/core/history"
	"content-indexer/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recorderMock serves canned runs.
type recorderMock struct {
	runs  []history.SyncRun
	limit int
}

func (r *recorderMock) Record(ctx context.Context, run *history.SyncRun) error {
	return nil
}

func (r *recorderMock) Recent(ctx context.Context, limit int) ([]history.SyncRun, error) {
	r.limit = limit
	return r.runs, nil
}

func newApp(recorder history.Recorder) *fiber.App {
	app := fiber.New()
	status.NewFeature(recorder, zap.NewNop()).Load(app)
	return app
}

func TestHandleHealth(t *testing.T) {
	app := newApp(nil)

	req := httptest.NewRequest("GET", "/status/health", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleRuns(t *testing.T) {
	rec := &recorderMock{runs: []history.SyncRun{
		{RunID: "r1", IndexName: "posts", ContentType: "article", Created: 2, StartedAt: time.Now()},
	}}
	app := newApp(rec)

	req := httptest.NewRequest("GET", "/status/runs?limit=5", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 5, rec.limit)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var runs []history.SyncRun
	require.NoError(t, json.Unmarshal(data, &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "r1", runs[0].RunID)
}

func TestHandleRuns_NoHistory(t *testing.T) {
	app := newApp(nil)

	req := httptest.NewRequest("GET", "/status/runs", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestFeature(t *testing.T) {
	f := status.NewFeature(nil, zap.NewNop())
	assert.Equal(t, "status", f.Name())
	assert.True(t, f.IsEnabled())
}
