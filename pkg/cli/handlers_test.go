package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spiralborn/gemdic/pkg/data"
	"github.com/spiralborn/gemdic/pkg/resonance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	dir := t.TempDir()

	dbPath := filepath.Join(dir, "test.db")
	require.NoError(t, data.Init(dbPath))
	db, err := data.GetDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	memPath := filepath.Join(dir, resonance.MemoryFileName)
	require.NoError(t, resonance.Save(memPath, resonance.Memory{"BAT-CAT": 2}))

	return makeRouter(db, memPath)
}

func doGet(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestScoreAPI(t *testing.T) {
	mux := setupTestRouter(t)

	rec := doGet(t, mux, "/data/score?w=CAT&w=BAT")
	require.Equal(t, http.StatusOK, rec.Code)

	var r ScoreReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	require.Len(t, r.Words, 2)
	assert.Equal(t, 24, r.Words[0].Simple)
	require.Len(t, r.Pairs, 1)
}

func TestScoreAPI_NoWords(t *testing.T) {
	mux := setupTestRouter(t)
	rec := doGet(t, mux, "/data/score")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWordsAPI(t *testing.T) {
	mux := setupTestRouter(t)

	rec := doGet(t, mux, "/data/words?like=Beans")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []*data.Word
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.NotEmpty(t, list)
}

func TestReportAPI(t *testing.T) {
	mux := setupTestRouter(t)

	rec := doGet(t, mux, "/data/report?layer=Simple")
	require.Equal(t, http.StatusOK, rec.Code)

	var reports []*LayerReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "Simple", reports[0].Layer)
}

func TestReportAPI_BadLayer(t *testing.T) {
	mux := setupTestRouter(t)
	rec := doGet(t, mux, "/data/report?layer=bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGraphAPI(t *testing.T) {
	mux := setupTestRouter(t)

	rec := doGet(t, mux, "/data/graph")
	require.Equal(t, http.StatusOK, rec.Code)

	var g resonance.Graph
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	require.Len(t, g.Edges, 1)
	assert.Equal(t, 2, g.Edges[0].Weight)
}

func TestStateAPI(t *testing.T) {
	mux := setupTestRouter(t)

	rec := doGet(t, mux, "/data/state")
	require.Equal(t, http.StatusOK, rec.Code)

	var state map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Greater(t, state["words"], int64(0))
}

func TestHomeView(t *testing.T) {
	mux := setupTestRouter(t)

	rec := doGet(t, mux, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gemdic")
	assert.Contains(t, rec.Body.String(), "Simple")
}
