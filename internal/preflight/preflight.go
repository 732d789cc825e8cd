package preflight

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"forge3d/internal/config"
	"forge3d/internal/forge3d"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable check for the given config.
func RunAll(ctx context.Context, cfg *config.Config, client *forge3d.Client) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	results = append(results, CheckDirectoryAccess("Staging directory", cfg.Paths.StagingDir))
	if cfg.History.Enabled {
		results = append(results, CheckDirectoryAccess("History directory", historyDir(cfg)))
	}
	if client != nil {
		results = append(results, CheckBridge(ctx, client))
	}
	return results
}

// CheckBridge verifies that the Forge3D bridge endpoint answers.
func CheckBridge(ctx context.Context, client *forge3d.Client) Result {
	const name = "Forge3D bridge"
	if client == nil {
		return Result{Name: name, Detail: "no client configured"}
	}
	if _, err := client.Get(ctx, forge3d.HealthPath()); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: client.BaseURL()}
}

// CheckDirectoryAccess verifies the path exists, is a directory, and grants
// read/write/traverse permission.
func CheckDirectoryAccess(name, path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func historyDir(cfg *config.Config) string {
	path := cfg.HistoryPath()
	if idx := strings.LastIndexByte(path, '/'); idx > 0 {
		return path[:idx]
	}
	return path
}
