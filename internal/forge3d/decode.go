package forge3d

import "encoding/json"

// The service is permissive by contract: a missing array field means an
// empty result, and one malformed entry must not drop the rest of the list.
// Only a body that is not a JSON object at all yields a *DecodeError.

// DecodeProjects parses the body of a /projects response. Entries without a
// non-empty id and name are skipped; source order is preserved.
func DecodeProjects(body string) ([]Project, error) {
	entries, err := arrayField(body, "projects")
	if err != nil {
		return nil, err
	}
	projects := make([]Project, 0, len(entries))
	for _, entry := range entries {
		var record struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(entry, &record); err != nil {
			continue
		}
		if record.ID == "" || record.Name == "" {
			continue
		}
		projects = append(projects, Project{ID: record.ID, Name: record.Name})
	}
	return projects, nil
}

// DecodeAssets parses the body of a /projects/{id}/assets response. Entries
// need a non-empty id and name; type and created_at default to empty.
func DecodeAssets(body string) ([]Asset, error) {
	entries, err := arrayField(body, "assets")
	if err != nil {
		return nil, err
	}
	assets := make([]Asset, 0, len(entries))
	for _, entry := range entries {
		var record struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			Type      string `json:"type"`
			CreatedAt string `json:"created_at"`
		}
		if err := json.Unmarshal(entry, &record); err != nil {
			continue
		}
		if record.ID == "" || record.Name == "" {
			continue
		}
		assets = append(assets, Asset{
			ID:        record.ID,
			Name:      record.Name,
			Type:      record.Type,
			CreatedAt: record.CreatedAt,
		})
	}
	return assets, nil
}

// arrayField extracts the named array from a JSON object body. An absent or
// null field is an empty result; a field of the wrong type, or a body that is
// not an object, is a *DecodeError.
func arrayField(body, name string) ([]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil, &DecodeError{Reason: "response is not a JSON object", Err: err}
	}
	if fields == nil {
		// "null" parses into a nil map without error.
		return nil, &DecodeError{Reason: "response is not a JSON object"}
	}
	raw, ok := fields[name]
	if !ok {
		return nil, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &DecodeError{Reason: "field " + name + " is not an array", Err: err}
	}
	return entries, nil
}
