package forge3d

// Project identifies a Forge3D project. Decoded records are immutable;
// identity is the ID field.
type Project struct {
	ID   string
	Name string
}

// Asset describes a downloadable asset. An asset belongs to the project it
// was fetched under; the relationship is carried by the request path, not
// stored on the record. CreatedAt holds the server's created_at string
// verbatim since the service does not document its format.
type Asset struct {
	ID        string
	Name      string
	Type      string
	CreatedAt string
}
