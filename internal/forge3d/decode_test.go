package forge3d

import (
	"errors"
	"testing"
)

func TestDecodeProjectsSkipsMalformedRecords(t *testing.T) {
	body := `{"projects":[{"id":"a","name":"Alpha"},{"bad":"record"}]}`
	projects, err := DecodeProjects(body)
	if err != nil {
		t.Fatalf("decode returned error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].ID != "a" || projects[0].Name != "Alpha" {
		t.Fatalf("unexpected project: %+v", projects[0])
	}
}

func TestDecodeProjectsPreservesOrder(t *testing.T) {
	body := `{"projects":[{"id":"b","name":"Beta"},{"id":"a","name":"Alpha"},{"id":"c","name":"Gamma"}]}`
	projects, err := DecodeProjects(body)
	if err != nil {
		t.Fatalf("decode returned error: %v", err)
	}
	want := []string{"b", "a", "c"}
	if len(projects) != len(want) {
		t.Fatalf("expected %d projects, got %d", len(want), len(projects))
	}
	for i, id := range want {
		if projects[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, projects[i].ID, id)
		}
	}
}

func TestDecodeAssetsMissingFieldIsEmpty(t *testing.T) {
	assets, err := DecodeAssets(`{}`)
	if err != nil {
		t.Fatalf("decode returned error: %v", err)
	}
	if len(assets) != 0 {
		t.Fatalf("expected empty result, got %d assets", len(assets))
	}
}

func TestDecodeAssetsFields(t *testing.T) {
	body := `{"assets":[{"id":"x1","name":"Crate","type":"mesh","created_at":"2026-07-01T10:00:00Z"},{"id":"x2","name":"Rock"}]}`
	assets, err := DecodeAssets(body)
	if err != nil {
		t.Fatalf("decode returned error: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	first := assets[0]
	if first.ID != "x1" || first.Name != "Crate" || first.Type != "mesh" || first.CreatedAt != "2026-07-01T10:00:00Z" {
		t.Fatalf("unexpected asset: %+v", first)
	}
	if assets[1].Type != "" || assets[1].CreatedAt != "" {
		t.Fatalf("optional fields should default to empty: %+v", assets[1])
	}
}

func TestDecodeRejectsNonObjectBodies(t *testing.T) {
	bodies := []string{
		"",
		"not json",
		"[]",
		`"a string"`,
		"null",
		"42",
		`{"projects":`,
	}
	for _, body := range bodies {
		if _, err := DecodeProjects(body); err == nil {
			t.Fatalf("DecodeProjects(%q) succeeded, want DecodeError", body)
		} else {
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("DecodeProjects(%q) returned %T, want *DecodeError", body, err)
			}
		}
		if _, err := DecodeAssets(body); err == nil {
			t.Fatalf("DecodeAssets(%q) succeeded, want DecodeError", body)
		}
	}
}

func TestDecodeRejectsWrongFieldType(t *testing.T) {
	if _, err := DecodeProjects(`{"projects":"nope"}`); err == nil {
		t.Fatal("expected DecodeError for non-array projects field")
	}
}

func TestDecodeNullFieldIsEmpty(t *testing.T) {
	projects, err := DecodeProjects(`{"projects":null}`)
	if err != nil {
		t.Fatalf("decode returned error: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("expected empty result, got %d", len(projects))
	}
}
