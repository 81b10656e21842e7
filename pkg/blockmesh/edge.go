package blockmesh

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hexkit/hexmesh/pkg/geometry"
)

// EdgeKind tags an edge variant. The tag doubles as the keyword written
// in the edges section of the rendered document.
type EdgeKind string

// Edge variant tags.
const (
	KindLine     EdgeKind = "line"
	KindArc      EdgeKind = "arc"
	KindSpline   EdgeKind = "spline"
	KindBSpline  EdgeKind = "BSpline"
	KindPolyLine EdgeKind = "polyLine"
	KindProject  EdgeKind = "project"
)

// Edge is a curve between two vertices. The variant set is closed: every
// implementation lives in this package, so rendering dispatches over a
// known set of kinds.
//
// Straight lines are the implicit default between block corners and are
// never written to the edges section; the mesh registry skips them.
type Edge interface {
	// Ends returns the two endpoints in the edge's stored orientation.
	Ends() (v0, v1 *Vertex)
	// Kind returns the variant tag.
	Kind() EdgeKind
	// Invert returns a new detached edge with swapped endpoints. Interior
	// point sequences are reversed; arc and projection data carry over
	// unchanged. Invert is an involution up to identity assignment.
	Invert() Edge
	// Length returns the curve length: the chord for lines, arcs, and
	// projections, the polyline length through the interior points for
	// sequence edges.
	Length() float64
	// ID returns the identity assigned by the owning mesh, or -1.
	ID() int

	entry() string
	setID(id int)
}

// edgeBase carries the endpoints and identity shared by all variants.
type edgeBase struct {
	v0, v1 *Vertex
	id     int
}

func newEdgeBase(v0, v1 *Vertex) (edgeBase, error) {
	if v0 == nil || v1 == nil {
		return edgeBase{}, fmt.Errorf("edge endpoint: %w", ErrNilElement)
	}
	if v0.Equal(v1) {
		return edgeBase{}, fmt.Errorf("edge at %s: %w", v0, ErrZeroLengthEdge)
	}
	return edgeBase{v0: v0, v1: v1, id: unassigned}, nil
}

func (e *edgeBase) Ends() (*Vertex, *Vertex) { return e.v0, e.v1 }
func (e *edgeBase) ID() int                  { return e.id }
func (e *edgeBase) setID(id int)             { e.id = id }

func (e *edgeBase) chord() float64 {
	return geometry.Distance(e.v0.Coords, e.v1.Coords)
}

func (e *edgeBase) refs() string {
	return e.v0.Name() + " " + e.v1.Name()
}

// LineEdge is the implicit straight connection between two vertices.
// Line edges exist so blocks always hold 12 edges; they are never
// registered with a mesh or written to the edges section.
type LineEdge struct {
	edgeBase
}

// NewLineEdge creates a straight edge between two distinct vertices.
func NewLineEdge(v0, v1 *Vertex) (*LineEdge, error) {
	base, err := newEdgeBase(v0, v1)
	if err != nil {
		return nil, err
	}
	return &LineEdge{edgeBase: base}, nil
}

// Kind returns [KindLine].
func (e *LineEdge) Kind() EdgeKind { return KindLine }

// Invert returns a new line edge with swapped endpoints.
func (e *LineEdge) Invert() Edge {
	return &LineEdge{edgeBase: edgeBase{v0: e.v1, v1: e.v0, id: unassigned}}
}

// Length returns the distance between the endpoints.
func (e *LineEdge) Length() float64 { return e.chord() }

func (e *LineEdge) entry() string {
	return fmt.Sprintf("%s %s", e.Kind(), e.refs())
}

// ArcMidEdge is a circular arc described by a point on the arc between
// the endpoints.
type ArcMidEdge struct {
	edgeBase
	mid r3.Vec
}

// NewArcMidEdge creates an arc through mid between two distinct
// vertices.
func NewArcMidEdge(v0, v1 *Vertex, mid r3.Vec) (*ArcMidEdge, error) {
	base, err := newEdgeBase(v0, v1)
	if err != nil {
		return nil, err
	}
	return &ArcMidEdge{edgeBase: base, mid: mid}, nil
}

// Mid returns the interior arc point.
func (e *ArcMidEdge) Mid() r3.Vec { return e.mid }

// Kind returns [KindArc].
func (e *ArcMidEdge) Kind() EdgeKind { return KindArc }

// Invert returns a new arc with swapped endpoints and the same interior
// point.
func (e *ArcMidEdge) Invert() Edge {
	return &ArcMidEdge{edgeBase: edgeBase{v0: e.v1, v1: e.v0, id: unassigned}, mid: e.mid}
}

// Length returns the chord length between the endpoints.
func (e *ArcMidEdge) Length() float64 { return e.chord() }

func (e *ArcMidEdge) entry() string {
	return fmt.Sprintf("%s %s %s", e.Kind(), e.refs(), formatVec(e.mid))
}

// ArcOriginEdge is a circular arc described by the circle origin and a
// scale factor.
type ArcOriginEdge struct {
	edgeBase
	origin r3.Vec
	factor float64
}

// NewArcOriginEdge creates an arc about origin between two distinct
// vertices. The factor adjusts the arc radius; 1 keeps the circle
// through both endpoints.
func NewArcOriginEdge(v0, v1 *Vertex, origin r3.Vec, factor float64) (*ArcOriginEdge, error) {
	base, err := newEdgeBase(v0, v1)
	if err != nil {
		return nil, err
	}
	return &ArcOriginEdge{edgeBase: base, origin: origin, factor: factor}, nil
}

// Origin returns the circle origin.
func (e *ArcOriginEdge) Origin() r3.Vec { return e.origin }

// Factor returns the radius scale factor.
func (e *ArcOriginEdge) Factor() float64 { return e.factor }

// Kind returns [KindArc].
func (e *ArcOriginEdge) Kind() EdgeKind { return KindArc }

// Invert returns a new arc with swapped endpoints and the same origin
// and factor.
func (e *ArcOriginEdge) Invert() Edge {
	return &ArcOriginEdge{
		edgeBase: edgeBase{v0: e.v1, v1: e.v0, id: unassigned},
		origin:   e.origin,
		factor:   e.factor,
	}
}

// Length returns the chord length between the endpoints.
func (e *ArcOriginEdge) Length() float64 { return e.chord() }

func (e *ArcOriginEdge) entry() string {
	return fmt.Sprintf("%s %s origin %s %s",
		e.Kind(), e.refs(), formatFloat(e.factor), formatVec(e.origin))
}

// SequenceEdge is a curve through an ordered run of interior points. The
// kind tag selects the spline, B-spline, or poly-line interpretation;
// the data model is identical for all three.
type SequenceEdge struct {
	edgeBase
	kind   EdgeKind
	points []r3.Vec
}

// NewSplineEdge creates a spline edge through the given interior points.
// Collinear interior points are removed; if none survive, the edge
// degenerates to a [LineEdge].
func NewSplineEdge(v0, v1 *Vertex, points []r3.Vec) (Edge, error) {
	return newSequenceEdge(KindSpline, v0, v1, points)
}

// NewBSplineEdge creates a B-spline edge through the given interior
// points, with the same simplification as [NewSplineEdge].
func NewBSplineEdge(v0, v1 *Vertex, points []r3.Vec) (Edge, error) {
	return newSequenceEdge(KindBSpline, v0, v1, points)
}

// NewPolyLineEdge creates a poly-line edge through the given interior
// points, with the same simplification as [NewSplineEdge].
func NewPolyLineEdge(v0, v1 *Vertex, points []r3.Vec) (Edge, error) {
	return newSequenceEdge(KindPolyLine, v0, v1, points)
}

func newSequenceEdge(kind EdgeKind, v0, v1 *Vertex, points []r3.Vec) (Edge, error) {
	base, err := newEdgeBase(v0, v1)
	if err != nil {
		return nil, err
	}
	interior := simplify(v0.Coords, v1.Coords, points)
	if len(interior) == 0 {
		// All interior points were collinear with the endpoints: the edge
		// is indistinguishable from the implicit straight line.
		return &LineEdge{edgeBase: base}, nil
	}
	return &SequenceEdge{edgeBase: base, kind: kind, points: interior}, nil
}

// Points returns the interior points after simplification, in order from
// v0 to v1.
func (e *SequenceEdge) Points() []r3.Vec { return slices.Clone(e.points) }

// Kind returns the sequence variant tag.
func (e *SequenceEdge) Kind() EdgeKind { return e.kind }

// Invert returns a new edge with swapped endpoints and the interior
// points in reverse order.
func (e *SequenceEdge) Invert() Edge {
	reversed := slices.Clone(e.points)
	slices.Reverse(reversed)
	return &SequenceEdge{
		edgeBase: edgeBase{v0: e.v1, v1: e.v0, id: unassigned},
		kind:     e.kind,
		points:   reversed,
	}
}

// Length returns the polyline length through both endpoints and the
// interior points.
func (e *SequenceEdge) Length() float64 {
	aug := make([]r3.Vec, 0, len(e.points)+2)
	aug = append(aug, e.v0.Coords)
	aug = append(aug, e.points...)
	aug = append(aug, e.v1.Coords)
	return geometry.PolylineLength(aug)
}

func (e *SequenceEdge) entry() string {
	parts := make([]string, len(e.points))
	for i, p := range e.points {
		parts[i] = formatVec(p)
	}
	return fmt.Sprintf("%s %s (%s)", e.kind, e.refs(), strings.Join(parts, " "))
}

// ProjectEdge is an edge projected onto one or more external surfaces.
type ProjectEdge struct {
	edgeBase
	surfaces []Geometry
}

// NewProjectEdge creates an edge that the mesh generator projects onto
// the given surfaces.
func NewProjectEdge(v0, v1 *Vertex, surfaces ...Geometry) (*ProjectEdge, error) {
	base, err := newEdgeBase(v0, v1)
	if err != nil {
		return nil, err
	}
	if len(surfaces) == 0 {
		return nil, fmt.Errorf("edge %s %s: %w", v0, v1, ErrNoSurface)
	}
	for _, s := range surfaces {
		if s == nil {
			return nil, fmt.Errorf("edge %s %s: %w", v0, v1, ErrNilElement)
		}
	}
	return &ProjectEdge{edgeBase: base, surfaces: slices.Clone(surfaces)}, nil
}

// Surfaces returns the geometries the edge is projected onto.
func (e *ProjectEdge) Surfaces() []Geometry { return slices.Clone(e.surfaces) }

// Kind returns [KindProject].
func (e *ProjectEdge) Kind() EdgeKind { return KindProject }

// Invert returns a new projected edge with swapped endpoints and the
// same surfaces.
func (e *ProjectEdge) Invert() Edge {
	return &ProjectEdge{
		edgeBase: edgeBase{v0: e.v1, v1: e.v0, id: unassigned},
		surfaces: slices.Clone(e.surfaces),
	}
}

// Length returns the chord length between the endpoints.
func (e *ProjectEdge) Length() float64 { return e.chord() }

func (e *ProjectEdge) entry() string {
	names := make([]string, len(e.surfaces))
	for i, s := range e.surfaces {
		names[i] = s.Name()
	}
	return fmt.Sprintf("%s %s (%s)", e.Kind(), e.refs(), strings.Join(names, " "))
}

// simplify removes interior points that are collinear with their
// neighbors in the endpoint-augmented sequence. Points are marked
// against their original neighbors and removed in a single index-based
// pass; the surviving neighbors are not re-scanned.
func simplify(v0, v1 r3.Vec, points []r3.Vec) []r3.Vec {
	aug := make([]r3.Vec, 0, len(points)+2)
	aug = append(aug, v0)
	aug = append(aug, points...)
	aug = append(aug, v1)

	kept := make([]r3.Vec, 0, len(points))
	for i := 1; i < len(aug)-1; i++ {
		if geometry.Collinear(aug[i-1], aug[i], aug[i+1]) {
			continue
		}
		kept = append(kept, aug[i])
	}
	return kept
}
