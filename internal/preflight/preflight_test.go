package preflight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forge3d/internal/config"
	"forge3d/internal/forge3d"
	"forge3d/internal/logging"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	result := CheckDirectoryAccess("Staging directory", dir)
	if !result.Passed {
		t.Fatalf("expected pass for writable dir: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "read/write ok") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}

	result = CheckDirectoryAccess("Staging directory", filepath.Join(dir, "missing"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	result = CheckDirectoryAccess("Staging directory", file)
	if result.Passed {
		t.Fatal("expected failure for regular file")
	}

	result = CheckDirectoryAccess("Staging directory", "")
	if result.Passed || result.Detail != "not configured" {
		t.Fatalf("unexpected result for empty path: %+v", result)
	}
}

func TestCheckBridge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/forge3d/bridge" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := forge3d.New(forge3d.Config{BaseURL: server.URL, Logger: logging.NewNop()})
	result := CheckBridge(context.Background(), client)
	if !result.Passed {
		t.Fatalf("expected bridge check to pass: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "/api/forge3d") {
		t.Fatalf("detail should name the bridge URL: %s", result.Detail)
	}

	server.Close()
	result = CheckBridge(context.Background(), client)
	if result.Passed {
		t.Fatal("expected bridge check to fail after shutdown")
	}
	if !strings.Contains(result.Detail, "Connection failed") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestRunAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Paths.StagingDir = t.TempDir()
	cfg.History.Enabled = false

	client := forge3d.New(forge3d.Config{BaseURL: server.URL, Logger: logging.NewNop()})
	results := RunAll(context.Background(), &cfg, client)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, result := range results {
		if !result.Passed {
			t.Fatalf("%s failed: %s", result.Name, result.Detail)
		}
	}

	if got := RunAll(context.Background(), nil, client); got != nil {
		t.Fatalf("nil config should yield no results, got %d", len(got))
	}
}
