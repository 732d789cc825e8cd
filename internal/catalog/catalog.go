package catalog

import (
	"sync"

	"forge3d/internal/forge3d"
)

// Catalog owns the current project list and the currently selected project's
// asset list. All methods are safe for concurrent use, though the intended
// discipline is single-writer via the bridge dispatcher.
type Catalog struct {
	mu         sync.RWMutex
	projects   []forge3d.Project
	assets     []forge3d.Asset
	generation uint64
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// SetProjects replaces the project snapshot and invalidates outstanding
// selections. The asset list is untouched; assets change only through
// SetAssets and ClearAssets.
func (c *Catalog) SetProjects(projects []forge3d.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projects = append([]forge3d.Project(nil), projects...)
	c.generation++
}

// SetAssets replaces the asset snapshot.
func (c *Catalog) SetAssets(assets []forge3d.Asset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assets = append([]forge3d.Asset(nil), assets...)
}

// ClearAssets drops the asset snapshot, typically when project selection
// changes before the replacement list has arrived.
func (c *Catalog) ClearAssets() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assets = nil
}

// ProjectAt returns the project at index, if the index is valid.
func (c *Catalog) ProjectAt(index int) (forge3d.Project, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.projects) {
		return forge3d.Project{}, false
	}
	return c.projects[index], true
}

// AssetAt returns the asset at index, if the index is valid.
func (c *Catalog) AssetAt(index int) (forge3d.Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.assets) {
		return forge3d.Asset{}, false
	}
	return c.assets[index], true
}

// Projects returns a copy of the project snapshot.
func (c *Catalog) Projects() []forge3d.Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]forge3d.Project(nil), c.projects...)
}

// Assets returns a copy of the asset snapshot.
func (c *Catalog) Assets() []forge3d.Asset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]forge3d.Asset(nil), c.assets...)
}

// ProjectCount reports the size of the project snapshot.
func (c *Catalog) ProjectCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.projects)
}

// AssetCount reports the size of the asset snapshot.
func (c *Catalog) AssetCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.assets)
}

// Selection binds a project index to the snapshot generation it was taken
// against. The zero value is "no selection".
type Selection struct {
	index      int
	generation uint64
	valid      bool
}

// Select captures a selection of the project at index in the current
// snapshot. Selecting an out-of-range index yields "no selection".
func (c *Catalog) Select(index int) Selection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.projects) {
		return Selection{}
	}
	return Selection{index: index, generation: c.generation, valid: true}
}

// Resolve maps a selection back to its project. A selection made against a
// snapshot that has since been replaced resolves to nothing.
func (c *Catalog) Resolve(sel Selection) (forge3d.Project, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !sel.valid || sel.generation != c.generation {
		return forge3d.Project{}, false
	}
	if sel.index < 0 || sel.index >= len(c.projects) {
		return forge3d.Project{}, false
	}
	return c.projects[sel.index], true
}
