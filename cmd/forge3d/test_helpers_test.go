package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"forge3d/internal/config"
	"forge3d/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	server     *httptest.Server
	requests   *requestLog
}

type requestLog struct {
	mu    sync.Mutex
	paths []string
}

func (l *requestLog) record(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, path)
}

func (l *requestLog) count(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0
	for _, p := range l.paths {
		if p == path {
			total++
		}
	}
	return total
}

// newBridgeHandler serves a small fixed Forge3D API: two projects, two assets
// under project p1, and FBX payloads keyed by asset id.
func newBridgeHandler(log *requestLog) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/forge3d/bridge", func(w http.ResponseWriter, r *http.Request) {
		log.record(r.URL.Path)
		fmt.Fprint(w, `{"status":"ok"}`)
	})
	mux.HandleFunc("/api/forge3d/projects", func(w http.ResponseWriter, r *http.Request) {
		log.record(r.URL.Path)
		fmt.Fprint(w, `{"projects":[{"id":"p1","name":"Lobby"},{"id":"p2","name":"Warehouse"}]}`)
	})
	mux.HandleFunc("/api/forge3d/projects/p1/assets", func(w http.ResponseWriter, r *http.Request) {
		log.record(r.URL.Path)
		fmt.Fprint(w, `{"assets":[`+
			`{"id":"a1","name":"Chair","type":"static_mesh","created_at":"2026-08-01"},`+
			`{"id":"a2","name":"Lamp","type":"light","created_at":"2026-08-02"}]}`)
	})
	mux.HandleFunc("/api/forge3d/assets/", func(w http.ResponseWriter, r *http.Request) {
		log.record(r.URL.Path)
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) < 5 || parts[4] != "download" {
			http.NotFound(w, r)
			return
		}
		assetID := parts[3]
		if assetID == "missing" {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, "FBX-DATA-%s", assetID)
	})
	mux.HandleFunc("/api/forge3d/material-presets", func(w http.ResponseWriter, r *http.Request) {
		log.record(r.URL.Path)
		fmt.Fprint(w, `{"presets":[{"name":"Brushed Steel"}]}`)
	})
	return mux
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	log := &requestLog{}
	server := httptest.NewServer(newBridgeHandler(log))
	t.Cleanup(server.Close)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FORGE3D_URL", "")

	cfg := testsupport.NewConfig(t, testsupport.WithServerURL(server.URL))

	configPath := filepath.Join(home, ".config", "forge3d", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		server:     server,
		requests:   log,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = []string{"--config", configPath}
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[server]\nurl = %q\n\n[paths]\nstaging_dir = %q\nlog_dir = %q\n\n[history]\nenabled = %v\npath = %q\n\n[logging]\nformat = \"console\"\nlevel = \"info\"\n",
		cfg.Server.URL,
		cfg.Paths.StagingDir,
		cfg.Paths.LogDir,
		cfg.History.Enabled,
		cfg.History.Path,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
