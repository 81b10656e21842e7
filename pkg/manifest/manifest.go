// Package manifest loads declarative mesh definitions from TOML files
// and compiles them into [blockmesh.Mesh] values.
//
// A manifest names vertices by their position in the vertices array;
// blocks, edges, and patches reference those indices. A minimal
// manifest:
//
//	[[vertices]]
//	coords = [0.0, 0.0, 0.0]
//	# ... seven more corners ...
//
//	[[blocks]]
//	vertices = [0, 1, 2, 3, 4, 5, 6, 7]
//	divisions = [10, 10, 10]
//
// Unknown keys are rejected so typos fail loudly instead of silently
// producing a different mesh.
package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hexkit/hexmesh/pkg/blockmesh"
)

var (
	// ErrNoVertices is returned by [Manifest.Build] when the manifest
	// defines no vertices at all.
	ErrNoVertices = errors.New("manifest defines no vertices")

	// ErrNoBlocks is returned by [Manifest.Build] when the manifest
	// defines no blocks; a mesh description without blocks is useless to
	// the generator.
	ErrNoBlocks = errors.New("manifest defines no blocks")

	// ErrBadCoords is returned for coordinate arrays that do not hold
	// exactly three components.
	ErrBadCoords = errors.New("coordinates require exactly 3 components")

	// ErrVertexIndex is returned for vertex references outside the
	// vertices array.
	ErrVertexIndex = errors.New("vertex index out of range")

	// ErrUnknownGeometry is returned for references to geometry names
	// the manifest does not define.
	ErrUnknownGeometry = errors.New("unknown geometry name")

	// ErrUnknownPatch is returned by merge pairs referencing patch names
	// the manifest does not define.
	ErrUnknownPatch = errors.New("unknown patch name")

	// ErrUnknownEdgeKind is returned for edge kinds outside arc, spline,
	// bspline, polyline, and project.
	ErrUnknownEdgeKind = errors.New("unknown edge kind")

	// ErrEdgeNotOnBlock is returned when an edge's endpoints are not
	// both corners of any defined block.
	ErrEdgeNotOnBlock = errors.New("edge endpoints are not corners of any block")

	// ErrUnknownKey is returned by [Load] for manifest keys this package
	// does not recognize.
	ErrUnknownKey = errors.New("unknown manifest key")
)

// Manifest is the decoded form of a TOML mesh definition.
type Manifest struct {
	Scale     float64 `toml:"scale"`
	FastMerge *bool   `toml:"fast_merge"`
	Header    string  `toml:"header"`
	Footer    string  `toml:"footer"`

	Vertices     []VertexDef      `toml:"vertices"`
	Geometry     []GeometryDef    `toml:"geometry"`
	Blocks       []BlockDef       `toml:"blocks"`
	Edges        []EdgeDef        `toml:"edges"`
	Patches      []PatchDef       `toml:"patches"`
	DefaultPatch *DefaultPatchDef `toml:"default_patch"`
	MergePairs   []MergePairDef   `toml:"merge_pairs"`
}

// VertexDef declares a corner point. Project lists geometry names for
// projected vertices.
type VertexDef struct {
	Coords  []float64 `toml:"coords"`
	Project []string  `toml:"project"`
}

// GeometryDef declares an external surface file.
type GeometryDef struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

// BlockDef declares a hex block from 8 vertex indices. Divisions and
// grading are optional; cell_size, when positive, derives divisions from
// the target cell size and wins over divisions.
type BlockDef struct {
	Vertices    []int     `toml:"vertices"`
	Divisions   []int     `toml:"divisions"`
	Grading     []float64 `toml:"grading"`
	CellSize    float64   `toml:"cell_size"`
	CellZone    string    `toml:"cell_zone"`
	Description string    `toml:"description"`
}

// EdgeDef declares a curved edge between two vertex indices. The fields
// used depend on kind: arcs take mid or origin (+factor), sequence kinds
// take points, project takes surfaces.
type EdgeDef struct {
	Kind     string      `toml:"kind"`
	V0       int         `toml:"v0"`
	V1       int         `toml:"v1"`
	Mid      []float64   `toml:"mid"`
	Origin   []float64   `toml:"origin"`
	Factor   float64     `toml:"factor"`
	Points   [][]float64 `toml:"points"`
	Surfaces []string    `toml:"surfaces"`
}

// PatchDef declares a boundary patch from faces of 4 vertex indices
// each, in outward-normal order.
type PatchDef struct {
	Name  string  `toml:"name"`
	Type  string  `toml:"type"`
	Faces [][]int `toml:"faces"`
}

// DefaultPatchDef declares the catch-all patch.
type DefaultPatchDef struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// MergePairDef declares a merge directive between two named patches.
type MergePairDef struct {
	Master string `toml:"master"`
	Slave  string `toml:"slave"`
}

// Load reads and decodes a TOML mesh definition. Unrecognized keys are
// an error.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	return &m, nil
}

// Build compiles the manifest into a registered mesh. Elements register
// in manifest order, so identities are stable across runs.
func (m *Manifest) Build() (*blockmesh.Mesh, error) {
	if len(m.Vertices) == 0 {
		return nil, ErrNoVertices
	}
	if len(m.Blocks) == 0 {
		return nil, ErrNoBlocks
	}

	surfaces := make(map[string]blockmesh.Geometry, len(m.Geometry))
	for _, g := range m.Geometry {
		surfaces[g.Name] = blockmesh.NewTriSurfaceMesh(g.Name, g.File)
	}

	vertices, err := m.buildVertices(surfaces)
	if err != nil {
		return nil, err
	}
	blocks, err := m.buildBlocks(vertices)
	if err != nil {
		return nil, err
	}
	if err := m.attachEdges(vertices, blocks, surfaces); err != nil {
		return nil, err
	}

	mesh := blockmesh.NewMesh()
	if m.Scale > 0 {
		mesh.SetScale(m.Scale)
	}
	if m.FastMerge != nil {
		mesh.SetFastMerge(*m.FastMerge)
	}
	for i, b := range blocks {
		if err := mesh.AddBlock(b); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}

	patches := make(map[string]*blockmesh.Patch, len(m.Patches))
	for i, def := range m.Patches {
		p, err := buildPatch(def, vertices)
		if err != nil {
			return nil, fmt.Errorf("patch %d (%s): %w", i, def.Name, err)
		}
		if err := mesh.AddPatch(p); err != nil {
			return nil, fmt.Errorf("patch %d (%s): %w", i, def.Name, err)
		}
		patches[def.Name] = p
	}

	if m.DefaultPatch != nil {
		mesh.SetDefaultPatch(blockmesh.NewDefaultPatch(m.DefaultPatch.Name, m.DefaultPatch.Type))
	}

	for i, pair := range m.MergePairs {
		master, ok := patches[pair.Master]
		if !ok {
			return nil, fmt.Errorf("merge pair %d: %w: %q", i, ErrUnknownPatch, pair.Master)
		}
		slave, ok := patches[pair.Slave]
		if !ok {
			return nil, fmt.Errorf("merge pair %d: %w: %q", i, ErrUnknownPatch, pair.Slave)
		}
		if err := mesh.MergePatches(master, slave); err != nil {
			return nil, fmt.Errorf("merge pair %d: %w", i, err)
		}
	}

	return mesh, nil
}

func (m *Manifest) buildVertices(surfaces map[string]blockmesh.Geometry) ([]*blockmesh.Vertex, error) {
	vertices := make([]*blockmesh.Vertex, len(m.Vertices))
	for i, def := range m.Vertices {
		p, err := vec(def.Coords)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		if len(def.Project) == 0 {
			vertices[i] = blockmesh.VertexAt(p)
			continue
		}
		geoms, err := resolveSurfaces(def.Project, surfaces)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		vertices[i], err = blockmesh.NewProjectedVertex(p, geoms...)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
	}
	return vertices, nil
}

func (m *Manifest) buildBlocks(vertices []*blockmesh.Vertex) ([]*blockmesh.Block, error) {
	blocks := make([]*blockmesh.Block, len(m.Blocks))
	for i, def := range m.Blocks {
		corners := make([]*blockmesh.Vertex, len(def.Vertices))
		for j, idx := range def.Vertices {
			v, err := lookupVertex(vertices, idx)
			if err != nil {
				return nil, fmt.Errorf("block %d corner %d: %w", i, j, err)
			}
			corners[j] = v
		}

		b, err := blockmesh.NewBlock(corners...)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		if len(def.Divisions) > 0 {
			if len(def.Divisions) != 3 {
				return nil, fmt.Errorf("block %d: divisions require 3 values, got %d", i, len(def.Divisions))
			}
			if err := b.SetDivisions(def.Divisions[0], def.Divisions[1], def.Divisions[2]); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
		}
		if def.CellSize > 0 {
			if err := b.SetCellSize(def.CellSize); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
		}
		if len(def.Grading) > 0 {
			if err := b.SetGrading(def.Grading); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
		}
		b.SetCellZone(def.CellZone)
		b.SetDescription(def.Description)
		blocks[i] = b
	}
	return blocks, nil
}

func (m *Manifest) attachEdges(vertices []*blockmesh.Vertex, blocks []*blockmesh.Block, surfaces map[string]blockmesh.Geometry) error {
	for i, def := range m.Edges {
		v0, err := lookupVertex(vertices, def.V0)
		if err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
		v1, err := lookupVertex(vertices, def.V1)
		if err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}

		e, err := buildEdge(def, v0, v1, surfaces)
		if err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}

		owner := -1
		for j, b := range m.Blocks {
			if containsIndex(b.Vertices, def.V0) && containsIndex(b.Vertices, def.V1) {
				owner = j
				break
			}
		}
		if owner < 0 {
			return fmt.Errorf("edge %d: %w", i, ErrEdgeNotOnBlock)
		}
		if err := blocks[owner].SetEdge(e); err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return nil
}

func buildEdge(def EdgeDef, v0, v1 *blockmesh.Vertex, surfaces map[string]blockmesh.Geometry) (blockmesh.Edge, error) {
	switch def.Kind {
	case "arc":
		if len(def.Origin) > 0 {
			origin, err := vec(def.Origin)
			if err != nil {
				return nil, err
			}
			factor := def.Factor
			if factor == 0 {
				factor = 1
			}
			return blockmesh.NewArcOriginEdge(v0, v1, origin, factor)
		}
		mid, err := vec(def.Mid)
		if err != nil {
			return nil, err
		}
		return blockmesh.NewArcMidEdge(v0, v1, mid)
	case "spline", "bspline", "polyline":
		points := make([]r3.Vec, len(def.Points))
		for i, c := range def.Points {
			p, err := vec(c)
			if err != nil {
				return nil, fmt.Errorf("point %d: %w", i, err)
			}
			points[i] = p
		}
		switch def.Kind {
		case "spline":
			return blockmesh.NewSplineEdge(v0, v1, points)
		case "bspline":
			return blockmesh.NewBSplineEdge(v0, v1, points)
		default:
			return blockmesh.NewPolyLineEdge(v0, v1, points)
		}
	case "project":
		geoms, err := resolveSurfaces(def.Surfaces, surfaces)
		if err != nil {
			return nil, err
		}
		return blockmesh.NewProjectEdge(v0, v1, geoms...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEdgeKind, def.Kind)
	}
}

func buildPatch(def PatchDef, vertices []*blockmesh.Vertex) (*blockmesh.Patch, error) {
	faces := make([][4]*blockmesh.Vertex, len(def.Faces))
	for i, indices := range def.Faces {
		if len(indices) != 4 {
			return nil, fmt.Errorf("face %d: requires 4 vertex indices, got %d", i, len(indices))
		}
		for j, idx := range indices {
			v, err := lookupVertex(vertices, idx)
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
			faces[i][j] = v
		}
	}
	return blockmesh.NewPatch(def.Name, def.Type, faces...)
}

func resolveSurfaces(names []string, surfaces map[string]blockmesh.Geometry) ([]blockmesh.Geometry, error) {
	geoms := make([]blockmesh.Geometry, len(names))
	for i, name := range names {
		g, ok := surfaces[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGeometry, name)
		}
		geoms[i] = g
	}
	return geoms, nil
}

func lookupVertex(vertices []*blockmesh.Vertex, idx int) (*blockmesh.Vertex, error) {
	if idx < 0 || idx >= len(vertices) {
		return nil, fmt.Errorf("%w: %d", ErrVertexIndex, idx)
	}
	return vertices[idx], nil
}

func containsIndex(indices []int, idx int) bool {
	for _, have := range indices {
		if have == idx {
			return true
		}
	}
	return false
}

func vec(coords []float64) (r3.Vec, error) {
	if len(coords) != 3 {
		return r3.Vec{}, fmt.Errorf("%w: got %d", ErrBadCoords, len(coords))
	}
	return r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
