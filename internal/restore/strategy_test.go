package restore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/restore"
)

func sampleSnapshot() []project.Project {
	return []project.Project{
		{ID: "p-1", Name: "one", Client: "c1"},
		{ID: "p-2", Name: "two", Client: "c2"},
	}
}

func TestRunBulkSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/backup/projects" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "secret" {
			t.Errorf("missing api key header")
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true, "count": 2, "failCount": 0,
		})
	}))
	defer srv.Close()

	client := restore.NewClient(srv.URL, "secret")
	result := restore.Run(context.Background(), sampleSnapshot(), []restore.Strategy{
		&restore.Bulk{Client: client},
		&restore.PerItem{Client: client},
	}, nil)

	if result.Outcome != restore.OutcomeSuccess {
		t.Fatalf("outcome = %v, message %s", result.Outcome, result.Message)
	}
	if result.Strategy != "bulk restore" || result.Restored != 2 {
		t.Errorf("unexpected result: %+v", result)
	}
}

// Bulk endpoint returns a server error; the runner warns and falls through to
// per-item creates.
func TestRunDegradesToPerItem(t *testing.T) {
	var perItemCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/backup/projects":
			http.Error(w, "bulk import disabled", http.StatusInternalServerError)
		case "/api/projects":
			perItemCalls++
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := restore.NewClient(srv.URL, "")
	var warnings []string
	result := restore.Run(context.Background(), sampleSnapshot(), []restore.Strategy{
		&restore.Bulk{Client: client},
		&restore.PerItem{Client: client},
	}, func(msg string) { warnings = append(warnings, msg) })

	if result.Outcome != restore.OutcomeSuccess {
		t.Fatalf("outcome = %v, message %s", result.Outcome, result.Message)
	}
	if result.Strategy != "per-item restore" || result.Restored != 2 {
		t.Errorf("unexpected result: %+v", result)
	}
	if perItemCalls != 2 {
		t.Errorf("per-item calls = %d, want 2", perItemCalls)
	}
	if len(warnings) != 1 {
		t.Errorf("expected one degradation warning, got %v", warnings)
	}
}

func TestPerItemPartialSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p project.Project
		_ = json.NewDecoder(r.Body).Decode(&p)
		if p.ID == "p-2" {
			http.Error(w, "duplicate", http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := restore.NewClient(srv.URL, "")
	result := (&restore.PerItem{Client: client}).Restore(context.Background(), sampleSnapshot())

	if result.Outcome != restore.OutcomeSuccess {
		t.Fatalf("partial success should still succeed: %+v", result)
	}
	if result.Restored != 1 || result.Failed != 1 {
		t.Errorf("unexpected counts: %+v", result)
	}
}

// A rejected payload is a hard failure: later strategies must not run.
func TestRunStopsOnHardFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "malformed snapshot", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := restore.NewClient(srv.URL, "")
	cachePath := filepath.Join(t.TempDir(), "snapshot.json")
	result := restore.Run(context.Background(), sampleSnapshot(), []restore.Strategy{
		&restore.Bulk{Client: client},
		&restore.LocalCache{Path: cachePath},
	}, nil)

	if result.Outcome != restore.OutcomeHardFail {
		t.Fatalf("outcome = %v, want hard fail", result.Outcome)
	}
	if result.Strategy != "bulk restore" {
		t.Errorf("hard fail should come from the bulk attempt, got %s", result.Strategy)
	}
	if _, err := restore.LoadCache(cachePath); err == nil {
		t.Error("cache must not be written after a hard failure")
	}
}

// Server fully down: the chain ends at the local cache and the snapshot stays
// readable.
func TestRunFallsBackToLocalCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := restore.NewClient(srv.URL, "")
	cachePath := filepath.Join(t.TempDir(), "nested", "snapshot.json")

	var warnings []string
	result := restore.Run(context.Background(), sampleSnapshot(), []restore.Strategy{
		&restore.Bulk{Client: client},
		&restore.PerItem{Client: client},
		&restore.LocalCache{Path: cachePath},
	}, func(msg string) { warnings = append(warnings, msg) })

	if result.Outcome != restore.OutcomeSuccess {
		t.Fatalf("outcome = %v, message %s", result.Outcome, result.Message)
	}
	if result.Strategy != "local snapshot cache" || result.Restored != 2 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(warnings) != 2 {
		t.Errorf("expected two degradation warnings, got %v", warnings)
	}

	cached, err := restore.LoadCache(cachePath)
	if err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	if len(cached) != 2 || cached[0].ID != "p-1" {
		t.Errorf("cached snapshot = %+v", cached)
	}
}

func TestClientBackup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/backup/projects" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(sampleSnapshot())
	}))
	defer srv.Close()

	client := restore.NewClient(srv.URL+"/", "")
	snapshot, err := client.Backup(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(snapshot) != 2 || snapshot[1].Name != "two" {
		t.Errorf("snapshot = %+v", snapshot)
	}
}
