package blockmesh

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Grading kinds, selected by the number of values handed to
// [Block.SetGrading].
const (
	gradingSimple = "simple"
	gradingEdge   = "edge"
)

// Block is a hexahedral cell description: 8 corner vertices in the fixed
// labelling order, 12 edges derived from the edge table (straight lines
// by default, individually overridable), per-axis cell counts, and a
// grading. Blocks are created detached and assigned an identity when
// registered with a [Mesh].
type Block struct {
	vertices []*Vertex
	edges    []Edge

	divisions   [3]int
	grading     []float64
	gradingKind string

	cellZone    string
	description string

	id int
}

// NewBlock creates a detached block. When vertices are given they are
// passed to [Block.SetVertices]; with no arguments the block starts
// empty and must receive vertices before use. Cell counts default to
// (1 1 1) and grading to simple (1 1 1).
func NewBlock(vertices ...*Vertex) (*Block, error) {
	b := &Block{
		divisions:   [3]int{1, 1, 1},
		grading:     []float64{1, 1, 1},
		gradingKind: gradingSimple,
		id:          unassigned,
	}
	if len(vertices) > 0 {
		if err := b.SetVertices(vertices); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// SetVertices replaces the block's corner vertices and regenerates all
// 12 edges as straight lines from the edge table. Any previously
// customized edges are discarded; re-apply [Block.SetEdge] afterwards if
// needed. Exactly 8 vertices are required, in the hex labelling order.
func (b *Block) SetVertices(vertices []*Vertex) error {
	if len(vertices) != 8 {
		return fmt.Errorf("%w: got %d", ErrVertexCount, len(vertices))
	}
	for i, v := range vertices {
		if v == nil {
			return fmt.Errorf("corner %d: %w", i, ErrNilElement)
		}
	}

	edges := make([]Edge, 0, len(edgeTable))
	for _, pair := range edgeTable {
		e, err := NewLineEdge(vertices[pair[0]], vertices[pair[1]])
		if err != nil {
			return fmt.Errorf("corners %d and %d: %w", pair[0], pair[1], err)
		}
		edges = append(edges, e)
	}

	b.vertices = slices.Clone(vertices)
	b.edges = edges
	return nil
}

// SetEdge replaces the straight line in the table slot matching the
// edge's endpoint pair. Endpoints are resolved to local corner indices
// by structural equality against the block's vertex list. The stored
// edge is oriented to the table's canonical direction, inverting the
// supplied edge when it runs the other way.
func (b *Block) SetEdge(e Edge) error {
	if e == nil {
		return fmt.Errorf("block edge: %w", ErrNilElement)
	}
	v0, v1 := e.Ends()
	i0 := b.localIndex(v0)
	i1 := b.localIndex(v1)
	if i0 < 0 || i1 < 0 {
		return fmt.Errorf("%w: %s to %s is not between block corners", ErrUnknownEdge, v0, v1)
	}
	for slot, pair := range edgeTable {
		switch {
		case pair[0] == i0 && pair[1] == i1:
			b.edges[slot] = e
			return nil
		case pair[0] == i1 && pair[1] == i0:
			b.edges[slot] = e.Invert()
			return nil
		}
	}
	return fmt.Errorf("%w: corners %d and %d do not share an edge", ErrUnknownEdge, i0, i1)
}

// EdgeBetween returns the block edge joining v0 and v1, oriented so its
// first endpoint equals v0. Vertices are matched by structural equality;
// the stored edge is inverted when it runs from v1 to v0.
func (b *Block) EdgeBetween(v0, v1 *Vertex) (Edge, error) {
	if v0 == nil || v1 == nil {
		return nil, fmt.Errorf("edge lookup: %w", ErrNilElement)
	}
	for _, e := range b.edges {
		e0, e1 := e.Ends()
		switch {
		case e0.Equal(v0) && e1.Equal(v1):
			return e, nil
		case e0.Equal(v1) && e1.Equal(v0):
			return e.Invert(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s to %s", ErrUnknownEdge, v0, v1)
}

// Face returns the four vertices of the named face in outward-normal
// order. This is a pure table lookup.
func (b *Block) Face(label FaceLabel) ([4]*Vertex, error) {
	var face [4]*Vertex
	indices, ok := faceTable[label]
	if !ok {
		return face, fmt.Errorf("%w: %q", ErrUnknownFace, label)
	}
	if len(b.vertices) != 8 {
		return face, fmt.Errorf("face %q: %w", label, ErrVertexCount)
	}
	for i, idx := range indices {
		face[i] = b.vertices[idx]
	}
	return face, nil
}

// SetDivisions sets the cell counts along the three principal axes.
func (b *Block) SetDivisions(nx, ny, nz int) error {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return fmt.Errorf("%w: got (%d %d %d)", ErrCellCount, nx, ny, nz)
	}
	b.divisions = [3]int{nx, ny, nz}
	return nil
}

// Divisions returns the per-axis cell counts.
func (b *Block) Divisions() [3]int { return b.divisions }

// SetCellSize sets cell counts so cells along the given axes are at most
// size long, using each axis's first representative edge length. With no
// axes given, all three are set.
func (b *Block) SetCellSize(size float64, axes ...Axis) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %g", ErrCellSize, size)
	}
	if len(b.vertices) != 8 {
		return fmt.Errorf("cell size: %w", ErrVertexCount)
	}
	if len(axes) == 0 {
		axes = []Axis{AxisX, AxisY, AxisZ}
	}

	divisions := b.divisions
	for _, axis := range axes {
		if axis < AxisX || axis > AxisZ {
			return fmt.Errorf("%w: %d", ErrUnknownAxis, axis)
		}
		pair := edgeTable[4*int(axis)]
		e, err := b.EdgeBetween(b.vertices[pair[0]], b.vertices[pair[1]])
		if err != nil {
			return err
		}
		divisions[axis] = int(math.Ceil(e.Length() / size))
	}
	b.divisions = divisions
	return nil
}

// CellSize returns the cell size along the block edge joining v0 and
// v1: the edge length divided by the cell count on that edge's axis.
func (b *Block) CellSize(v0, v1 *Vertex) (float64, error) {
	e, err := b.EdgeBetween(v0, v1)
	if err != nil {
		return 0, err
	}
	end0, end1 := e.Ends()
	axis, ok := axisOf(b.localIndex(end0), b.localIndex(end1))
	if !ok {
		return 0, fmt.Errorf("%w: %s to %s", ErrUnknownEdge, v0, v1)
	}
	return e.Length() / float64(b.divisions[axis]), nil
}

// SetGrading sets the cell-size distribution. Three values select simple
// grading, one per axis; twelve select edge grading, one per block edge
// in table order. Any other count is a configuration error.
func (b *Block) SetGrading(values []float64) error {
	switch len(values) {
	case 3:
		b.gradingKind = gradingSimple
	case 12:
		b.gradingKind = gradingEdge
	default:
		return fmt.Errorf("%w: got %d", ErrGradingLength, len(values))
	}
	b.grading = slices.Clone(values)
	return nil
}

// Grading returns the grading values.
func (b *Block) Grading() []float64 { return slices.Clone(b.grading) }

// SetCellZone assigns the block to a named cell zone.
func (b *Block) SetCellZone(name string) { b.cellZone = name }

// CellZone returns the cell zone name, empty if unset.
func (b *Block) CellZone() string { return b.cellZone }

// SetDescription attaches a human-readable note, emitted as a trailing
// comment on the block entry.
func (b *Block) SetDescription(desc string) { b.description = desc }

// Description returns the block description.
func (b *Block) Description() string { return b.description }

// Vertices returns the corner vertices in labelling order.
func (b *Block) Vertices() []*Vertex { return slices.Clone(b.vertices) }

// Edges returns the 12 block edges in table order.
func (b *Block) Edges() []Edge { return slices.Clone(b.edges) }

// ID returns the identity assigned by the owning mesh, or -1.
func (b *Block) ID() int { return b.id }

// Name returns the symbolic block reference, "b<id>".
func (b *Block) Name() string { return fmt.Sprintf("b%d", b.id) }

// localIndex returns the local corner index of the vertex matching v by
// structural equality, or -1.
func (b *Block) localIndex(v *Vertex) int {
	for i, corner := range b.vertices {
		if corner.Equal(v) {
			return i
		}
	}
	return -1
}

func (b *Block) entry() string {
	var sb strings.Builder
	names := make([]string, len(b.vertices))
	for i, v := range b.vertices {
		names[i] = v.Name()
	}
	sb.WriteString("hex (" + strings.Join(names, " ") + ")")
	if b.cellZone != "" {
		sb.WriteString(" " + b.cellZone)
	}
	fmt.Fprintf(&sb, " (%d %d %d)", b.divisions[0], b.divisions[1], b.divisions[2])

	grading := make([]string, len(b.grading))
	for i, g := range b.grading {
		grading[i] = formatFloat(g)
	}
	fmt.Fprintf(&sb, " %sGrading (%s)", b.gradingKind, strings.Join(grading, " "))

	if b.description != "" {
		sb.WriteString(" // " + b.description)
	}
	return sb.String()
}
