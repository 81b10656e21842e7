package blockmesh

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hexkit/hexmesh/pkg/geometry"
)

// unassigned marks an element that has not been registered with a mesh.
const unassigned = -1

// Vertex is a corner point of one or more blocks. Vertices are created
// detached; a mesh assigns the numeric identity on first registration and
// the identity never changes afterwards. Blocks that share a corner must
// share the *Vertex so the mesh can deduplicate by object identity.
//
// Coordinates used as topology lookup keys (block corners, edge
// endpoints) must not be mutated after first use; derive moved points
// with [Vertex.Translate] or [Vertex.Rotate] instead.
type Vertex struct {
	Coords r3.Vec

	// surfaces is non-empty for projected vertices only.
	surfaces []Geometry

	id int
}

// NewVertex creates a detached vertex at the given coordinates.
func NewVertex(x, y, z float64) *Vertex {
	return &Vertex{Coords: r3.Vec{X: x, Y: y, Z: z}, id: unassigned}
}

// VertexAt creates a detached vertex at point p.
func VertexAt(p r3.Vec) *Vertex {
	return &Vertex{Coords: p, id: unassigned}
}

// NewProjectedVertex creates a detached vertex that the mesh generator
// projects onto the given surfaces.
func NewProjectedVertex(p r3.Vec, surfaces ...Geometry) (*Vertex, error) {
	if len(surfaces) == 0 {
		return nil, fmt.Errorf("vertex at %s: %w", VertexAt(p), ErrNoSurface)
	}
	for _, s := range surfaces {
		if s == nil {
			return nil, fmt.Errorf("vertex at %s: %w", VertexAt(p), ErrNilElement)
		}
	}
	v := VertexAt(p)
	v.surfaces = append(v.surfaces, surfaces...)
	return v, nil
}

// ID returns the identity assigned by the owning mesh, or -1 while the
// vertex is detached.
func (v *Vertex) ID() int { return v.id }

// Name returns the symbolic reference used in rendered output, "v<id>".
func (v *Vertex) Name() string { return fmt.Sprintf("v%d", v.id) }

// Registered reports whether a mesh has assigned this vertex an identity.
func (v *Vertex) Registered() bool { return v.id >= 0 }

// Equal reports structural equality: exact coordinate match.
func (v *Vertex) Equal(other *Vertex) bool {
	if other == nil {
		return false
	}
	return v.Coords == other.Coords
}

// Translate returns a new detached vertex displaced by delta.
func (v *Vertex) Translate(delta r3.Vec) *Vertex {
	return VertexAt(r3.Add(v.Coords, delta))
}

// Scale returns a new detached vertex with coordinates scaled by f about
// the coordinate origin.
func (v *Vertex) Scale(f float64) *Vertex {
	return VertexAt(r3.Scale(f, v.Coords))
}

// Rotate returns a new detached vertex rotated about origin by the given
// yaw, pitch, and roll angles. Angles are in degrees when degrees is
// true.
func (v *Vertex) Rotate(yaw, pitch, roll float64, origin r3.Vec, degrees bool) *Vertex {
	return VertexAt(geometry.Rotate(v.Coords, yaw, pitch, roll, origin, degrees))
}

// String renders the bare coordinate triple, "(x y z)" with six decimal
// places per coordinate.
func (v *Vertex) String() string {
	return formatVec(v.Coords)
}

// entry renders the vertices-section line: the named coordinate entry,
// with the projection form for projected vertices.
func (v *Vertex) entry() string {
	var sb strings.Builder
	sb.WriteString("name ")
	sb.WriteString(v.Name())
	if len(v.surfaces) > 0 {
		sb.WriteString(" project")
	}
	sb.WriteString(" ")
	sb.WriteString(formatVec(v.Coords))
	if len(v.surfaces) > 0 {
		names := make([]string, len(v.surfaces))
		for i, s := range v.surfaces {
			names[i] = s.Name()
		}
		sb.WriteString(" (" + strings.Join(names, " ") + ")")
	}
	return sb.String()
}
