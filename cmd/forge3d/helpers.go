package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"forge3d/internal/forge3d"
)

var titleCaser = cases.Title(language.Und)

// assetTypeLabel normalizes the server's free-form asset type for display.
// Unknown or empty types render as "Unknown".
func assetTypeLabel(assetType string) string {
	trimmed := strings.TrimSpace(assetType)
	if trimmed == "" {
		return "Unknown"
	}
	trimmed = strings.ReplaceAll(trimmed, "_", " ")
	trimmed = strings.ReplaceAll(trimmed, "-", " ")
	return titleCaser.String(trimmed)
}

// stagingDestination maps an asset to its FBX file inside the staging
// directory.
func stagingDestination(stagingDir string, asset forge3d.Asset) string {
	return filepath.Join(stagingDir, asset.ID+".fbx")
}

func formatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

func truncateText(value string, limit int) string {
	if limit <= 0 || len(value) <= limit {
		return value
	}
	if limit <= 3 {
		return value[:limit]
	}
	return value[:limit-3] + "..."
}
