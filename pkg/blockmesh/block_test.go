package blockmesh

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// unitCube returns the 8 corners of the unit cube in hex labelling
// order: bottom face counter-clockwise from the origin, then the top
// face directly above.
func unitCube() []*Vertex {
	return []*Vertex{
		NewVertex(0, 0, 0), NewVertex(1, 0, 0), NewVertex(1, 1, 0), NewVertex(0, 1, 0),
		NewVertex(0, 0, 1), NewVertex(1, 0, 1), NewVertex(1, 1, 1), NewVertex(0, 1, 1),
	}
}

func mustBlock(t *testing.T) (*Block, []*Vertex) {
	t.Helper()
	corners := unitCube()
	b, err := NewBlock(corners...)
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	return b, corners
}

func TestSetVerticesGeneratesEdgeTable(t *testing.T) {
	b, corners := mustBlock(t)

	edges := b.Edges()
	if len(edges) != 12 {
		t.Fatalf("edge count = %d, want 12", len(edges))
	}
	for slot, pair := range edgeTable {
		e := edges[slot]
		if e.Kind() != KindLine {
			t.Errorf("edge %d: kind = %q, want line", slot, e.Kind())
		}
		v0, v1 := e.Ends()
		if v0 != corners[pair[0]] || v1 != corners[pair[1]] {
			t.Errorf("edge %d: connects %s %s, want corners %d %d", slot, v0, v1, pair[0], pair[1])
		}
	}
}

func TestSetVerticesRejectsWrongCount(t *testing.T) {
	for _, n := range []int{0, 7, 9} {
		corners := make([]*Vertex, n)
		for i := range corners {
			corners[i] = NewVertex(float64(i), 0, 0)
		}
		b := &Block{id: unassigned}
		if err := b.SetVertices(corners); !errors.Is(err, ErrVertexCount) {
			t.Errorf("%d vertices: err = %v, want ErrVertexCount", n, err)
		}
	}
}

func TestSetVerticesResetsCustomEdges(t *testing.T) {
	b, corners := mustBlock(t)

	arc, _ := NewArcMidEdge(corners[0], corners[1], r3.Vec{X: 0.5, Y: 0.2})
	if err := b.SetEdge(arc); err != nil {
		t.Fatalf("SetEdge: %v", err)
	}

	if err := b.SetVertices(corners); err != nil {
		t.Fatalf("SetVertices: %v", err)
	}
	for i, e := range b.Edges() {
		if e.Kind() != KindLine {
			t.Errorf("edge %d survived the vertex reset: %q", i, e.Kind())
		}
	}
}

func TestFaceTableLookup(t *testing.T) {
	b, corners := mustBlock(t)

	tests := []struct {
		label FaceLabel
		want  [4]int
	}{
		{FaceBottom, [4]int{0, 3, 2, 1}},
		{FaceTop, [4]int{4, 5, 6, 7}},
		{FaceRight, [4]int{1, 2, 6, 5}},
		{FaceLeft, [4]int{3, 0, 4, 7}},
		{FaceFront, [4]int{0, 1, 5, 4}},
		{FaceBack, [4]int{2, 3, 7, 6}},
	}

	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			face, err := b.Face(tt.label)
			if err != nil {
				t.Fatalf("Face(%q): %v", tt.label, err)
			}
			for i, idx := range tt.want {
				if face[i] != corners[idx] {
					t.Errorf("corner %d = %s, want local index %d", i, face[i], idx)
				}
			}
		})
	}

	if _, err := b.Face("diagonal"); !errors.Is(err, ErrUnknownFace) {
		t.Errorf("unknown label: err = %v, want ErrUnknownFace", err)
	}
}

func TestFaceNormalsPointOutward(t *testing.T) {
	b, _ := mustBlock(t)

	centre := r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	for label := range faceTable {
		face, err := b.Face(label)
		if err != nil {
			t.Fatalf("Face(%q): %v", label, err)
		}
		normal := r3.Cross(
			r3.Sub(face[1].Coords, face[0].Coords),
			r3.Sub(face[3].Coords, face[0].Coords),
		)
		outward := r3.Sub(face[0].Coords, centre)
		if r3.Dot(normal, outward) <= 0 {
			t.Errorf("face %q: normal points inward", label)
		}
	}
}

func TestSetEdgeOrientation(t *testing.T) {
	b, corners := mustBlock(t)

	// Supplied in the table's canonical direction (0 -> 1): stored as is.
	forward, _ := NewArcMidEdge(corners[0], corners[1], r3.Vec{X: 0.5, Y: 0.2})
	if err := b.SetEdge(forward); err != nil {
		t.Fatalf("SetEdge forward: %v", err)
	}
	v0, v1 := b.Edges()[0].Ends()
	if !v0.Equal(corners[0]) || !v1.Equal(corners[1]) {
		t.Error("forward edge was reoriented")
	}

	// Supplied against the canonical direction (1 -> 0): auto-inverted.
	backward, _ := NewArcMidEdge(corners[1], corners[0], r3.Vec{X: 0.5, Y: 0.2})
	if err := b.SetEdge(backward); err != nil {
		t.Fatalf("SetEdge backward: %v", err)
	}
	v0, v1 = b.Edges()[0].Ends()
	if !v0.Equal(corners[0]) || !v1.Equal(corners[1]) {
		t.Error("backward edge was not inverted to the canonical direction")
	}
}

func TestSetEdgeRejectsNonEdges(t *testing.T) {
	b, corners := mustBlock(t)

	outside := NewVertex(5, 5, 5)
	stray, _ := NewLineEdge(corners[0], outside)
	if err := b.SetEdge(stray); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("stray endpoint: err = %v, want ErrUnknownEdge", err)
	}

	// Corners 0 and 2 sit on a face diagonal, not an edge.
	diagonal, _ := NewLineEdge(corners[0], corners[2])
	if err := b.SetEdge(diagonal); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("diagonal: err = %v, want ErrUnknownEdge", err)
	}
}

func TestEdgeBetweenOrientsToCaller(t *testing.T) {
	b, corners := mustBlock(t)

	e, err := b.EdgeBetween(corners[1], corners[0])
	if err != nil {
		t.Fatalf("EdgeBetween: %v", err)
	}
	v0, v1 := e.Ends()
	if !v0.Equal(corners[1]) || !v1.Equal(corners[0]) {
		t.Error("edge not oriented to the caller's first vertex")
	}

	if _, err := b.EdgeBetween(corners[0], corners[6]); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("body diagonal: err = %v, want ErrUnknownEdge", err)
	}
}

func TestSetGrading(t *testing.T) {
	b, _ := mustBlock(t)

	tests := []struct {
		name    string
		values  []float64
		wantErr bool
		kind    string
	}{
		{"Simple", []float64{1, 1, 1}, false, gradingSimple},
		{"Edge", []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, false, gradingEdge},
		{"TooShort", []float64{1}, true, ""},
		{"Between", []float64{1, 1, 1, 1}, true, ""},
		{"TooLong", make([]float64, 13), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.SetGrading(tt.values)
			if tt.wantErr {
				if !errors.Is(err, ErrGradingLength) {
					t.Errorf("err = %v, want ErrGradingLength", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetGrading: %v", err)
			}
			if b.gradingKind != tt.kind {
				t.Errorf("grading kind = %q, want %q", b.gradingKind, tt.kind)
			}
		})
	}
}

func TestSetDivisions(t *testing.T) {
	b, _ := mustBlock(t)

	if err := b.SetDivisions(2, 3, 4); err != nil {
		t.Fatalf("SetDivisions: %v", err)
	}
	if b.Divisions() != [3]int{2, 3, 4} {
		t.Errorf("Divisions = %v", b.Divisions())
	}

	for _, bad := range [][3]int{{0, 1, 1}, {1, -2, 1}, {1, 1, 0}} {
		if err := b.SetDivisions(bad[0], bad[1], bad[2]); !errors.Is(err, ErrCellCount) {
			t.Errorf("SetDivisions(%v): err = %v, want ErrCellCount", bad, err)
		}
	}
}

func TestSetCellSize(t *testing.T) {
	b, _ := mustBlock(t)

	// Unit cube edges with target size 0.3: ceil(1/0.3) = 4 cells.
	if err := b.SetCellSize(0.3); err != nil {
		t.Fatalf("SetCellSize: %v", err)
	}
	if b.Divisions() != [3]int{4, 4, 4} {
		t.Errorf("Divisions = %v, want (4 4 4)", b.Divisions())
	}

	if err := b.SetCellSize(0.5, AxisY); err != nil {
		t.Fatalf("SetCellSize axis: %v", err)
	}
	if b.Divisions() != [3]int{4, 2, 4} {
		t.Errorf("Divisions = %v, want (4 2 4)", b.Divisions())
	}

	if err := b.SetCellSize(0); !errors.Is(err, ErrCellSize) {
		t.Errorf("zero size: err = %v, want ErrCellSize", err)
	}
	if err := b.SetCellSize(0.5, Axis(3)); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("bad axis: err = %v, want ErrUnknownAxis", err)
	}
}

func TestCellSize(t *testing.T) {
	b, corners := mustBlock(t)
	if err := b.SetDivisions(4, 2, 1); err != nil {
		t.Fatalf("SetDivisions: %v", err)
	}

	got, err := b.CellSize(corners[0], corners[1])
	if err != nil {
		t.Fatalf("CellSize: %v", err)
	}
	if math.Abs(got-0.25) > 1e-12 {
		t.Errorf("x cell size = %v, want 0.25", got)
	}

	got, err = b.CellSize(corners[3], corners[0]) // y edge, queried backwards
	if err != nil {
		t.Fatalf("CellSize: %v", err)
	}
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("y cell size = %v, want 0.5", got)
	}
}

func TestBlockEntry(t *testing.T) {
	b, corners := mustBlock(t)
	for i, v := range corners {
		v.id = i
	}
	if err := b.SetDivisions(2, 2, 2); err != nil {
		t.Fatal(err)
	}

	want := "hex (v0 v1 v2 v3 v4 v5 v6 v7) (2 2 2) simpleGrading (1 1 1)"
	if got := b.entry(); got != want {
		t.Errorf("entry = %q, want %q", got, want)
	}

	b.SetCellZone("fluid")
	b.SetDescription("cavity core")
	want = "hex (v0 v1 v2 v3 v4 v5 v6 v7) fluid (2 2 2) simpleGrading (1 1 1) // cavity core"
	if got := b.entry(); got != want {
		t.Errorf("entry = %q, want %q", got, want)
	}
}

func TestBlockEntryEdgeGrading(t *testing.T) {
	b, corners := mustBlock(t)
	for i, v := range corners {
		v.id = i
	}
	values := []float64{1, 1, 1, 1, 2, 2, 2, 2, 0.5, 0.5, 0.5, 0.5}
	if err := b.SetGrading(values); err != nil {
		t.Fatal(err)
	}

	want := "hex (v0 v1 v2 v3 v4 v5 v6 v7) (1 1 1) edgeGrading (1 1 1 1 2 2 2 2 0.5 0.5 0.5 0.5)"
	if got := b.entry(); got != want {
		t.Errorf("entry = %q, want %q", got, want)
	}
}

func TestDegenerateBlockRejected(t *testing.T) {
	corners := unitCube()
	corners[1] = NewVertex(0, 0, 0) // coincides with corner 0

	if _, err := NewBlock(corners...); !errors.Is(err, ErrZeroLengthEdge) {
		t.Errorf("err = %v, want ErrZeroLengthEdge", err)
	}
}
