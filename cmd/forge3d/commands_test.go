package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"forge3d/internal/testsupport"
)

func TestProjectsCommandListsProjects(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"projects"}, env.configPath)
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	requireContains(t, out, "Lobby")
	requireContains(t, out, "Warehouse")
	requireContains(t, out, "p1")
}

func TestAssetsCommandRendersTypeLabels(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"assets", "p1"}, env.configPath)
	if err != nil {
		t.Fatalf("assets: %v", err)
	}
	requireContains(t, out, "Chair")
	requireContains(t, out, "Static Mesh")
	requireContains(t, out, "2026-08-01")
}

func TestConnectCommandReportsChecks(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"connect"}, env.configPath)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	requireContains(t, out, "Forge3D bridge")
	requireContains(t, out, "Staging directory")
	requireContains(t, out, "2 available")
}

func TestConnectCommandFailsWhenBridgeDown(t *testing.T) {
	env := setupCLITestEnv(t)
	env.server.Close()

	out, _, err := runCLI(t, []string{"connect"}, env.configPath)
	if err == nil {
		t.Fatal("expected connect to fail with the bridge down")
	}
	requireContains(t, out, "Connection failed")
}

func TestDownloadCommandWritesFileAndHistory(t *testing.T) {
	env := setupCLITestEnv(t)

	dest := filepath.Join(env.cfg.Paths.StagingDir, "a1.fbx")
	testsupport.WriteFile(t, dest, 64)

	out, _, err := runCLI(t, []string{"download", "a1"}, env.configPath)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	requireContains(t, out, dest)

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != "FBX-DATA-a1" {
		t.Fatalf("stale content not replaced: %q", data)
	}

	store := testsupport.MustOpenHistory(t, env.cfg)
	entries, err := store.ByAsset(context.Background(), "a1")
	if err != nil {
		t.Fatalf("history lookup: %v", err)
	}
	if len(entries) != 1 || !entries[0].Succeeded {
		t.Fatalf("expected one successful history entry, got %+v", entries)
	}
	if entries[0].Bytes != int64(len("FBX-DATA-a1")) {
		t.Fatalf("unexpected byte count: %d", entries[0].Bytes)
	}
}

func TestDownloadCommandRecordsFailure(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"download", "missing"}, env.configPath)
	if err == nil {
		t.Fatal("expected download of unknown asset to fail")
	}
	requireContains(t, err.Error(), "404")

	if _, statErr := os.Stat(filepath.Join(env.cfg.Paths.StagingDir, "missing.fbx")); statErr == nil {
		t.Fatal("failed download should not leave a file behind")
	}

	store := testsupport.MustOpenHistory(t, env.cfg)
	entries, lookupErr := store.ByAsset(context.Background(), "missing")
	if lookupErr != nil {
		t.Fatalf("history lookup: %v", lookupErr)
	}
	if len(entries) != 1 || entries[0].Succeeded {
		t.Fatalf("expected one failed history entry, got %+v", entries)
	}
}

func TestImportAllDownloadsEveryAsset(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"import-all", "p1"}, env.configPath)
	if err != nil {
		t.Fatalf("import-all: %v", err)
	}
	requireContains(t, out, "Imported 2 of 2 assets")

	for _, assetID := range []string{"a1", "a2"} {
		path := filepath.Join(env.cfg.Paths.StagingDir, assetID+".fbx")
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			t.Fatalf("read %s: %v", path, readErr)
		}
		if string(data) != "FBX-DATA-"+assetID {
			t.Fatalf("unexpected payload for %s: %q", assetID, data)
		}
		if got := env.requests.count("/api/forge3d/assets/" + assetID + "/download"); got != 1 {
			t.Fatalf("expected exactly one download request for %s, got %d", assetID, got)
		}
	}
}

func TestPresetsCommandPrintsDocument(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"presets"}, env.configPath)
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	requireContains(t, out, "Brushed Steel")
}

func TestHistoryCommandListsDownloads(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"download", "a1"}, env.configPath); err != nil {
		t.Fatalf("download: %v", err)
	}
	store := testsupport.MustOpenHistory(t, env.cfg)
	testsupport.RecordDownload(t, store, "seeded", "/tmp/seeded.fbx")

	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "a1")
	requireContains(t, out, "seeded")
	requireContains(t, out, "yes")
}

func TestHistoryCommandRequiresEnabledLedger(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.History.Enabled = false
	writeTestConfig(t, env.configPath, env.cfg)

	_, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err == nil {
		t.Fatal("expected history to fail when disabled")
	}
	requireContains(t, err.Error(), "disabled")
}

func TestServerFlagOverridesConfig(t *testing.T) {
	env := setupCLITestEnv(t)

	good := env.cfg.Server.URL
	env.cfg.Server.URL = "http://127.0.0.1:1"
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"--server", good, "projects"}, env.configPath)
	if err != nil {
		t.Fatalf("projects with --server: %v", err)
	}
	requireContains(t, out, "Lobby")
}
