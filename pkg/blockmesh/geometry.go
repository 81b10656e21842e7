package blockmesh

import "fmt"

// Geometry names an external surface description that projected
// vertices, edges, and faces reference. The file path is opaque to this
// package; it is handed to the mesh generator verbatim and never read or
// validated here. Geometries are deduplicated by name on registration.
type Geometry interface {
	// Name is the identifier other elements use to reference the surface.
	Name() string
	// Type is the geometry type keyword, e.g. "triSurfaceMesh".
	Type() string

	entry() string
}

// TriSurfaceMesh is a geometry backed by a triangulated surface file.
type TriSurfaceMesh struct {
	name string
	file string
}

// NewTriSurfaceMesh creates a named surface geometry referencing the
// given surface-description file.
func NewTriSurfaceMesh(name, file string) *TriSurfaceMesh {
	return &TriSurfaceMesh{name: name, file: file}
}

// Name returns the surface identifier.
func (g *TriSurfaceMesh) Name() string { return g.name }

// Type returns "triSurfaceMesh".
func (g *TriSurfaceMesh) Type() string { return "triSurfaceMesh" }

func (g *TriSurfaceMesh) entry() string {
	return fmt.Sprintf("%s { type %s; file %q; }", g.name, g.Type(), g.file)
}
