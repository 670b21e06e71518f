package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/EmersonKing1/Teamdle-Project/internal/app/games"
	"github.com/EmersonKing1/Teamdle-Project/internal/app/teams"
	"github.com/EmersonKing1/Teamdle-Project/internal/http/handlers"
	"github.com/EmersonKing1/Teamdle-Project/internal/metrics"
	"github.com/EmersonKing1/Teamdle-Project/internal/store"
	"github.com/EmersonKing1/Teamdle-Project/internal/testutil"
)

func newTestRouter(rec *metrics.Recorder) http.Handler {
	holder := testutil.SampleHolder()
	gameSvc := games.NewService(store.NewMemoryStore(), holder, 3, time.Hour, nil, rec)
	h := handlers.NewHandler(gameSvc, teams.NewService(holder), time.UTC, nil, nil)
	logger, _ := testutil.NewBufferLogger()
	return NewRouter(h, RouterOptions{Logger: logger, Metrics: rec, CORSOrigin: "http://localhost:5173"})
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(nil)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{method: http.MethodGet, path: "/health", want: http.StatusOK},
		{method: http.MethodGet, path: "/ready", want: http.StatusOK},
		{method: http.MethodGet, path: "/teams?q=boston", want: http.StatusOK},
		{method: http.MethodGet, path: "/teams/Boston%20Celtics", want: http.StatusOK},
		{method: http.MethodPost, path: "/games", body: `{"date":"2024-01-01"}`, want: http.StatusCreated},
		{method: http.MethodGet, path: "/games/3f1c9f64-1d1b-4c1e-9a59-0d4a3c1e7a10", want: http.StatusNotFound},
		{method: http.MethodPost, path: "/games/3f1c9f64-1d1b-4c1e-9a59-0d4a3c1e7a10/guesses", body: `{"team":"Boston Celtics"}`, want: http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(nil)

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected JSON 404, got content type %q", got)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter(nil)
	rr := testutil.Serve(router, http.MethodDelete, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterPreflight(t *testing.T) {
	router := newTestRouter(nil)
	rr := testutil.Serve(router, http.MethodOptions, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusNoContent)
}

func TestRouterRecordsRoutePatterns(t *testing.T) {
	rec := metrics.NewRecorder()
	router := newTestRouter(rec)

	rr := testutil.Serve(router, http.MethodPost, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var view games.View
	testutil.DecodeJSON(t, rr, &view)

	testutil.Serve(router, http.MethodGet, "/games/"+view.ID, nil)

	snap := rec.Snapshot()
	if snap.HTTPRequests["GET /games/{id}"] != 1 {
		t.Fatalf("expected templated route metric, got %+v", snap.HTTPRequests)
	}
	if snap.SessionsStarted != 1 {
		t.Fatalf("expected session start recorded, got %d", snap.SessionsStarted)
	}
}
