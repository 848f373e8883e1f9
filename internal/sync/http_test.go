package sync_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haileyart/portfolio/internal/platform/image"
	"github.com/haileyart/portfolio/internal/sync"
)

func TestTrigger_ReportsSummaryStats(t *testing.T) {
	fx := newFixture(t)
	handler := sync.NewHandler(fx.pipeline)

	recorder := httptest.NewRecorder()
	handler.Trigger(recorder, httptest.NewRequest(http.MethodPost, "/api/sync", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Static site data synchronized successfully", body["message"])

	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "None", stats["profile"])
	assert.Equal(t, "None", stats["artistPick"])
}

func TestTrigger_FatalRunSurfacesCause(t *testing.T) {
	pipeline := sync.NewPipeline(failingSource{}, nil, image.Processor{}, t.TempDir(), slog.Default())
	handler := sync.NewHandler(pipeline)

	recorder := httptest.NewRecorder()
	handler.Trigger(recorder, httptest.NewRequest(http.MethodPost, "/api/sync", nil))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "SYNC_FAILED", body["code"])
	assert.Contains(t, body["error"], "store unavailable")
}
