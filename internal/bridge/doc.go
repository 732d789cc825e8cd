// Package bridge sequences asynchronous requests against the Forge3D
// service and correlates their results.
//
// A Session exposes the logical operations the editor plugin needs: health
// check, project and asset listing, material presets, and asset download.
// Each operation performs exactly one transport call on a worker goroutine
// and delivers its Outcome exactly once, marshaled onto the session's
// Dispatcher so that the catalog cache and any UI-facing state only ever see
// a single writer. Duplicate concurrent downloads of the same asset id are
// refused before they reach the network.
//
// The package offers no cancellation primitive: a dispatched request runs to
// completion or failure. Sequencing across operations, such as "health check
// then list projects", is caller composition over delivered Outcomes.
package bridge
