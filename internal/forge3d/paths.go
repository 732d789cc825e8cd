package forge3d

import "net/url"

// API paths, relative to the normalized base endpoint. Callers pass these to
// Get / DownloadToFile and must not duplicate the base prefix.

// HealthPath is the lightweight reachability probe endpoint.
func HealthPath() string { return "/bridge" }

// ProjectsPath lists every project visible to the bridge.
func ProjectsPath() string { return "/projects" }

// AssetsPath lists the assets belonging to a project.
func AssetsPath(projectID string) string {
	return "/projects/" + url.PathEscape(projectID) + "/assets"
}

// DownloadPath fetches an asset's FBX payload.
func DownloadPath(assetID string) string {
	return "/assets/" + url.PathEscape(assetID) + "/download?format=fbx"
}

// MaterialPresetsPath returns the server's material preset collection.
func MaterialPresetsPath() string { return "/material-presets" }
