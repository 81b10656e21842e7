package blockmesh

import (
	"fmt"
	"slices"
)

// Mesh is the aggregate root: it owns every registered element in
// insertion order and assigns the per-category identities used in the
// rendered document. Elements are deduplicated by object identity, not
// by structural equality; registering the same object twice is a no-op,
// while two structurally equal but distinct objects both register.
//
// A mesh is write-once, render-many: elements are never removed, and a
// failed registration leaves the mesh unchanged. Construction is
// single-threaded by design.
type Mesh struct {
	scale     float64
	fastMerge bool

	vertices   []*Vertex
	edges      []Edge
	blocks     []*Block
	geometries []Geometry
	faces      []*Face
	patches    []*Patch
	pairs      []*PatchPair

	defaultPatch *DefaultPatch

	nextVertex int
	nextEdge   int
	nextBlock  int
	nextPatch  int
}

// NewMesh creates an empty mesh with scale 1 and fast merging enabled.
func NewMesh() *Mesh {
	return &Mesh{scale: 1, fastMerge: true}
}

// SetScale sets the document scale factor applied to every coordinate by
// the mesh generator.
func (m *Mesh) SetScale(scale float64) { m.scale = scale }

// Scale returns the document scale factor.
func (m *Mesh) Scale() float64 { return m.scale }

// SetFastMerge toggles the generator's fast point-merge directive.
func (m *Mesh) SetFastMerge(enabled bool) { m.fastMerge = enabled }

// AddVertex registers a vertex. Already registered vertices keep their
// identity; the call is a no-op for them. Projection surfaces of
// projected vertices are registered first.
func (m *Mesh) AddVertex(v *Vertex) error {
	if v == nil {
		return fmt.Errorf("add vertex: %w", ErrNilElement)
	}
	for _, s := range v.surfaces {
		if err := m.AddGeometry(s); err != nil {
			return err
		}
	}
	if v.id < 0 {
		v.id = m.nextVertex
		m.nextVertex++
		m.vertices = append(m.vertices, v)
	}
	return nil
}

// AddEdge registers an edge. Straight lines are implicit in the output
// format and are skipped entirely. Both endpoints are registered first,
// then the edge itself if it has no identity yet. Geometrically equal
// but distinct edge objects are not deduplicated.
func (m *Mesh) AddEdge(e Edge) error {
	if e == nil {
		return fmt.Errorf("add edge: %w", ErrNilElement)
	}
	if e.Kind() == KindLine {
		return nil
	}

	v0, v1 := e.Ends()
	if err := m.AddVertex(v0); err != nil {
		return err
	}
	if err := m.AddVertex(v1); err != nil {
		return err
	}
	if pe, ok := e.(*ProjectEdge); ok {
		for _, s := range pe.surfaces {
			if err := m.AddGeometry(s); err != nil {
				return err
			}
		}
	}

	if e.ID() < 0 {
		e.setID(m.nextEdge)
		m.nextEdge++
		m.edges = append(m.edges, e)
	}
	return nil
}

// AddBlock registers a block: its 8 vertices first, then its 12 edges
// (each registering its own endpoints), then the block itself if it has
// no identity yet. The cascade order is deterministic and
// insertion-stable.
func (m *Mesh) AddBlock(b *Block) error {
	if b == nil {
		return fmt.Errorf("add block: %w", ErrNilElement)
	}
	if len(b.vertices) != 8 {
		return fmt.Errorf("add block: %w", ErrVertexCount)
	}

	for _, v := range b.vertices {
		if err := m.AddVertex(v); err != nil {
			return err
		}
	}
	for _, e := range b.edges {
		if err := m.AddEdge(e); err != nil {
			return err
		}
	}

	if b.id < 0 {
		b.id = m.nextBlock
		m.nextBlock++
		m.blocks = append(m.blocks, b)
	}
	return nil
}

// AddPatch registers a patch. Already registered patches keep their
// identity.
func (m *Mesh) AddPatch(p *Patch) error {
	if p == nil {
		return fmt.Errorf("add patch: %w", ErrNilElement)
	}
	if p.id < 0 {
		p.id = m.nextPatch
		m.nextPatch++
		m.patches = append(m.patches, p)
	}
	return nil
}

// AddFace registers a stand-alone projected face, registering its
// surface first.
func (m *Mesh) AddFace(f *Face) error {
	if f == nil {
		return fmt.Errorf("add face: %w", ErrNilElement)
	}
	if err := m.AddGeometry(f.surface); err != nil {
		return err
	}
	m.faces = append(m.faces, f)
	return nil
}

// AddGeometry registers an external surface geometry. Geometries are
// deduplicated by name, since rendered elements reference them by name.
func (m *Mesh) AddGeometry(g Geometry) error {
	if g == nil {
		return fmt.Errorf("add geometry: %w", ErrNilElement)
	}
	for _, have := range m.geometries {
		if have.Name() == g.Name() {
			return nil
		}
	}
	m.geometries = append(m.geometries, g)
	return nil
}

// SetDefaultPatch sets the catch-all patch for block faces not assigned
// to any patch.
func (m *Mesh) SetDefaultPatch(p *DefaultPatch) { m.defaultPatch = p }

// DefaultPatch returns the catch-all patch, nil if unset.
func (m *Mesh) DefaultPatch() *DefaultPatch { return m.defaultPatch }

// MergePatches records a directive to stitch the slave patch onto the
// master patch. Both patches are registered first if needed. Pairs carry
// no identity; their write order is the call order.
func (m *Mesh) MergePatches(master, slave *Patch) error {
	if master == nil || slave == nil {
		return fmt.Errorf("merge patches: %w", ErrNilElement)
	}
	if err := m.AddPatch(master); err != nil {
		return err
	}
	if err := m.AddPatch(slave); err != nil {
		return err
	}
	m.pairs = append(m.pairs, &PatchPair{master: master, slave: slave})
	return nil
}

// AddBoundary is reserved for boundary-section registration, which this
// package does not support. It always returns [ErrNotImplemented] so
// callers fail loudly rather than losing input.
func (m *Mesh) AddBoundary(*Patch) error {
	return fmt.Errorf("boundary registration: %w", ErrNotImplemented)
}

// Vertices returns the registered vertices in identity order.
func (m *Mesh) Vertices() []*Vertex { return slices.Clone(m.vertices) }

// Edges returns the registered non-line edges in identity order.
func (m *Mesh) Edges() []Edge { return slices.Clone(m.edges) }

// Blocks returns the registered blocks in identity order.
func (m *Mesh) Blocks() []*Block { return slices.Clone(m.blocks) }

// Patches returns the registered patches in identity order.
func (m *Mesh) Patches() []*Patch { return slices.Clone(m.patches) }

// Faces returns the registered stand-alone projected faces.
func (m *Mesh) Faces() []*Face { return slices.Clone(m.faces) }

// Geometries returns the registered surface geometries.
func (m *Mesh) Geometries() []Geometry { return slices.Clone(m.geometries) }

// PatchPairs returns the merge directives in write order.
func (m *Mesh) PatchPairs() []*PatchPair { return slices.Clone(m.pairs) }
