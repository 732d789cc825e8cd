// Package catalog holds the client-side snapshot of the last-fetched
// Forge3D project and asset lists.
//
// Snapshots are replaced wholesale on every successful fetch, never merged,
// and live for the session. Selections are generation-checked so an index
// taken against one project list can never silently point into a newer one.
package catalog
