package preview_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pistepick/pistepick/internal/preview"
	"github.com/pistepick/pistepick/internal/render"
	"github.com/pistepick/pistepick/internal/report"
)

func newServer(store *preview.Store) *httptest.Server {
	router := preview.NewRouter(preview.RouterConfig{
		Store:  store,
		Logger: zerolog.Nop(),
	})
	return httptest.NewServer(router)
}

func TestHealthz(t *testing.T) {
	server := newServer(&preview.Store{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestReportBeforeFirstRun(t *testing.T) {
	server := newServer(&preview.Store{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/report")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(server.URL + "/report.html")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReportAfterRun(t *testing.T) {
	store := &preview.Store{}
	store.Set(
		&report.Report{RunID: "run-1", Days: []report.DayOutlook{{Date: "2026-01-15"}}},
		&render.RenderedReport{BodyHTML: "<html><body>hello</body></html>"},
	)

	server := newServer(store)
	defer server.Close()

	resp, err := http.Get(server.URL + "/report")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rep report.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	assert.Equal(t, "run-1", rep.RunID)
	require.Len(t, rep.Days, 1)
	assert.Equal(t, "2026-01-15", rep.Days[0].Date)

	resp, err = http.Get(server.URL + "/report.html")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
}
