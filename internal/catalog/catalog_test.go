package catalog

import (
	"testing"

	"forge3d/internal/forge3d"
)

func sampleProjects() []forge3d.Project {
	return []forge3d.Project{
		{ID: "p1", Name: "Alpha"},
		{ID: "p2", Name: "Beta"},
	}
}

func TestSetProjectsReplacesWholesale(t *testing.T) {
	c := New()
	c.SetProjects(sampleProjects())
	c.SetProjects([]forge3d.Project{{ID: "p3", Name: "Gamma"}})

	if got := c.ProjectCount(); got != 1 {
		t.Fatalf("expected 1 project after replacement, got %d", got)
	}
	project, ok := c.ProjectAt(0)
	if !ok || project.ID != "p3" {
		t.Fatalf("unexpected project: %+v ok=%v", project, ok)
	}
	if _, ok := c.ProjectAt(1); ok {
		t.Fatal("stale index should not resolve")
	}
}

func TestSetProjectsLeavesAssetsAlone(t *testing.T) {
	c := New()
	c.SetAssets([]forge3d.Asset{{ID: "a1", Name: "Crate"}})
	c.SetProjects(sampleProjects())

	if got := c.AssetCount(); got != 1 {
		t.Fatalf("asset snapshot should survive project refresh, got %d assets", got)
	}
	c.ClearAssets()
	if got := c.AssetCount(); got != 0 {
		t.Fatalf("expected empty assets after clear, got %d", got)
	}
}

func TestIndexLookupsOutOfRange(t *testing.T) {
	c := New()
	c.SetProjects(sampleProjects())
	for _, index := range []int{-1, 2, 100} {
		if _, ok := c.ProjectAt(index); ok {
			t.Fatalf("index %d should not resolve", index)
		}
	}
	if _, ok := c.AssetAt(0); ok {
		t.Fatal("empty asset snapshot should not resolve")
	}
}

func TestSelectionSurvivesWithinGeneration(t *testing.T) {
	c := New()
	c.SetProjects(sampleProjects())

	sel := c.Select(1)
	project, ok := c.Resolve(sel)
	if !ok || project.ID != "p2" {
		t.Fatalf("selection should resolve: %+v ok=%v", project, ok)
	}
}

func TestSelectionInvalidatedByReplacement(t *testing.T) {
	c := New()
	c.SetProjects(sampleProjects())
	sel := c.Select(0)

	c.SetProjects(sampleProjects()) // same contents, new snapshot
	if _, ok := c.Resolve(sel); ok {
		t.Fatal("selection must not survive a snapshot replacement")
	}
}

func TestSelectOutOfRangeIsNoSelection(t *testing.T) {
	c := New()
	c.SetProjects(sampleProjects())
	if _, ok := c.Resolve(c.Select(5)); ok {
		t.Fatal("out-of-range selection should resolve to nothing")
	}
	if _, ok := c.Resolve(Selection{}); ok {
		t.Fatal("zero selection should resolve to nothing")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	c := New()
	source := sampleProjects()
	c.SetProjects(source)
	source[0].Name = "mutated"

	project, _ := c.ProjectAt(0)
	if project.Name != "Alpha" {
		t.Fatalf("catalog shares backing array with caller: %+v", project)
	}

	snapshot := c.Projects()
	snapshot[0].Name = "mutated again"
	project, _ = c.ProjectAt(0)
	if project.Name != "Alpha" {
		t.Fatalf("returned snapshot aliases catalog state: %+v", project)
	}
}
