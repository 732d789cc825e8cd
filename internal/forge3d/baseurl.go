package forge3d

import "strings"

const (
	// APISuffix is the path prefix every Forge3D endpoint hangs off of.
	APISuffix = "/api/forge3d"

	// DefaultBaseURL targets a bridge server running on the local machine.
	DefaultBaseURL = "http://localhost:3847"
)

// NormalizeBaseURL canonicalizes a configured server URL so it targets the
// Forge3D API path exactly once: surrounding whitespace and one trailing
// slash are stripped, then APISuffix is appended unless already present.
// Applying the function twice yields the same result as applying it once.
func NormalizeBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasSuffix(base, APISuffix) {
		base += APISuffix
	}
	return base
}
