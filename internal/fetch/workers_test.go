package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dtnitsch/opengraph-parser/models"
	"github.com/dtnitsch/opengraph-parser/pkg/db"
	"github.com/dtnitsch/opengraph-parser/pkg/fetcher"
	"github.com/dtnitsch/opengraph-parser/pkg/opengraph"
)

const pageHTML = `<html><head>
<meta property="og:title" content="The Rock">
<meta property="og:type" content="video.movie">
<meta property="og:url" content="http://www.imdb.com/title/tt0117500/">
</head></html>`

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantType   string
		wantStatus int
	}{
		{"status", &fetcher.StatusError{URL: "http://x", StatusCode: 503}, "status_error", 503},
		{"wrapped status", fmt.Errorf("get: %w", &fetcher.StatusError{StatusCode: 404}), "status_error", 404},
		{"deadline", context.DeadlineExceeded, "timeout", 0},
		{"canceled", context.Canceled, "canceled", 0},
		{"other", errors.New("connection refused"), "fetch_error", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotStatus := classifyError(tt.err)
			if gotType != tt.wantType || gotStatus != tt.wantStatus {
				t.Errorf("classifyError() = (%q, %d), want (%q, %d)", gotType, gotStatus, tt.wantType, tt.wantStatus)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	results := []models.PageResult{
		{Status: models.StatusSuccess, Schema: "video"},
		{Status: models.StatusSuccess, Schema: "video"},
		{Status: models.StatusSuccess, Schema: "product"},
		{Status: models.StatusRejected},
		{Status: models.StatusFailed},
	}

	stats := summarize(results, 2*time.Second)
	if stats.TotalURLs != 5 || stats.Successful != 3 || stats.Rejected != 1 || stats.Failed != 1 {
		t.Errorf("summarize() = %+v", stats)
	}
	if stats.Schemas["video"] != 2 || stats.Schemas["product"] != 1 {
		t.Errorf("Schemas = %v", stats.Schemas)
	}
	if stats.TotalTimeSeconds != 2 {
		t.Errorf("TotalTimeSeconds = %v, want 2", stats.TotalTimeSeconds)
	}
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			w.Write([]byte(pageHTML))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	config := &models.FetchConfig{
		URLs:        []string{srv.URL + "/ok", srv.URL + "/broken", srv.URL + "/ok?again=1"},
		WorkerCount: 2,
		Timeout:     5 * time.Second,
		Save:        true,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	results := run(context.Background(), logger, config, []opengraph.Option{opengraph.WithStrict(true)}, database)
	if len(results) != 3 {
		t.Fatalf("run() returned %d results, want 3", len(results))
	}

	for i, want := range []string{models.StatusSuccess, models.StatusFailed, models.StatusSuccess} {
		if results[i].URL != config.URLs[i] {
			t.Errorf("results[%d].URL = %q, want %q", i, results[i].URL, config.URLs[i])
		}
		if results[i].Status != want {
			t.Errorf("results[%d].Status = %q, want %q", i, results[i].Status, want)
		}
	}
	if results[0].Schema != "video" || results[0].Type != "video.movie" {
		t.Errorf("results[0] type/schema = %q/%q", results[0].Type, results[0].Schema)
	}
	if results[1].ErrorType != "status_error" || results[1].StatusCode != http.StatusInternalServerError {
		t.Errorf("results[1] error = %q/%d", results[1].ErrorType, results[1].StatusCode)
	}

	urls, err := database.QueryURLs(db.NamespaceClass, "type", "video.movie")
	if err != nil {
		t.Fatalf("QueryURLs() error = %v", err)
	}
	if len(urls) != 2 {
		t.Errorf("saved video.movie URLs = %d, want 2", len(urls))
	}

	urlID, err := database.GetURLID(srv.URL + "/broken")
	if err != nil {
		t.Fatalf("GetURLID() error = %v", err)
	}
	last, err := database.GetLastAccess(urlID)
	if err != nil || last == nil {
		t.Fatalf("GetLastAccess() = %v, %v", last, err)
	}
	if last.StatusCode != http.StatusInternalServerError {
		t.Errorf("last access status = %d, want 500", last.StatusCode)
	}
}

func TestRecord_ClassNamespace(t *testing.T) {
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	const url = "http://www.imdb.com/title/tt0117500/"
	obj, ok := opengraph.ParseString(pageHTML)
	if !ok {
		t.Fatal("fixture page should parse")
	}
	accepted := models.NewPageResult(obj, ok)
	accepted.StatusCode = http.StatusOK

	if err := record(database, url, opengraph.ModeStrict, accepted); err != nil {
		t.Fatalf("record() error = %v", err)
	}

	urlID, err := database.GetURLID(url)
	if err != nil {
		t.Fatalf("GetURLID() error = %v", err)
	}
	assertClass := func(want map[string]string) {
		t.Helper()
		class, err := database.GetURLMetadata(urlID, db.NamespaceClass)
		if err != nil {
			t.Fatalf("GetURLMetadata() error = %v", err)
		}
		got := map[string]string{}
		for _, kv := range class {
			got[kv.Key] = kv.Value
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("class[%s] = %q, want %q", k, got[k], v)
			}
		}
	}
	assertClass(map[string]string{"type": "video.movie", "schema": "video", "valid": "true", "mode": "strict"})

	rejected := models.NewPageResult(nil, false)
	rejected.StatusCode = http.StatusOK
	if err := record(database, url, opengraph.ModeLenient, rejected); err != nil {
		t.Fatalf("record() error = %v", err)
	}
	assertClass(map[string]string{"type": "video.movie", "valid": "false", "mode": "lenient"})

	props, err := database.GetURLMetadata(urlID, db.NamespaceOpenGraph)
	if err != nil || len(props) != 3 {
		t.Errorf("og properties = %v, %v; want the 3 accepted properties kept", props, err)
	}
}
