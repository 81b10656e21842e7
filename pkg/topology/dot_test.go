package topology

import (
	"strings"
	"testing"

	"github.com/hexkit/hexmesh/pkg/blockmesh"
)

// twoBlockMesh builds a mesh of two unit cubes sharing the x=1 face.
func twoBlockMesh(t *testing.T) *blockmesh.Mesh {
	t.Helper()

	coords := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		{2, 0, 0}, {2, 1, 0}, {2, 0, 1}, {2, 1, 1},
	}
	vs := make([]*blockmesh.Vertex, len(coords))
	for i, c := range coords {
		vs[i] = blockmesh.NewVertex(c[0], c[1], c[2])
	}

	left, err := blockmesh.NewBlock(vs[0], vs[1], vs[2], vs[3], vs[4], vs[5], vs[6], vs[7])
	if err != nil {
		t.Fatalf("NewBlock(left) error = %v", err)
	}
	right, err := blockmesh.NewBlock(vs[1], vs[8], vs[9], vs[2], vs[5], vs[10], vs[11], vs[6])
	if err != nil {
		t.Fatalf("NewBlock(right) error = %v", err)
	}
	right.SetCellZone("rotor")

	m := blockmesh.NewMesh()
	if err := m.AddBlock(left); err != nil {
		t.Fatalf("AddBlock(left) error = %v", err)
	}
	if err := m.AddBlock(right); err != nil {
		t.Fatalf("AddBlock(right) error = %v", err)
	}
	return m
}

func TestToDOT(t *testing.T) {
	t.Run("ConnectsBlocksSharingAFace", func(t *testing.T) {
		dot := ToDOT(twoBlockMesh(t), Options{})
		if !strings.Contains(dot, `"b0" -- "b1";`) {
			t.Errorf("DOT missing shared-face edge:\n%s", dot)
		}
	})

	t.Run("MarksCellZones", func(t *testing.T) {
		dot := ToDOT(twoBlockMesh(t), Options{})
		if !strings.Contains(dot, "rotor") {
			t.Error("DOT missing cell zone label")
		}
		if !strings.Contains(dot, "fillcolor=lightblue") {
			t.Error("DOT missing cell zone fill")
		}
	})

	t.Run("DetailedIncludesDivisions", func(t *testing.T) {
		m := twoBlockMesh(t)
		if err := m.Blocks()[0].SetDivisions(10, 20, 30); err != nil {
			t.Fatalf("SetDivisions() error = %v", err)
		}
		dot := ToDOT(m, Options{Detailed: true})
		if !strings.Contains(dot, "10 x 20 x 30") {
			t.Errorf("DOT missing divisions label:\n%s", dot)
		}
	})

	t.Run("DisjointBlocksHaveNoEdge", func(t *testing.T) {
		a, err := blockmesh.NewBlock(unitCube(0)...)
		if err != nil {
			t.Fatalf("NewBlock() error = %v", err)
		}
		b, err := blockmesh.NewBlock(unitCube(5)...)
		if err != nil {
			t.Fatalf("NewBlock() error = %v", err)
		}
		m := blockmesh.NewMesh()
		if err := m.AddBlock(a); err != nil {
			t.Fatalf("AddBlock() error = %v", err)
		}
		if err := m.AddBlock(b); err != nil {
			t.Fatalf("AddBlock() error = %v", err)
		}
		if dot := ToDOT(m, Options{}); strings.Contains(dot, "--") {
			t.Errorf("DOT has edge between disjoint blocks:\n%s", dot)
		}
	})
}

// unitCube returns 8 fresh corner vertices of a unit cube offset along x.
func unitCube(offset float64) []*blockmesh.Vertex {
	return []*blockmesh.Vertex{
		blockmesh.NewVertex(offset, 0, 0),
		blockmesh.NewVertex(offset+1, 0, 0),
		blockmesh.NewVertex(offset+1, 1, 0),
		blockmesh.NewVertex(offset, 1, 0),
		blockmesh.NewVertex(offset, 0, 1),
		blockmesh.NewVertex(offset+1, 0, 1),
		blockmesh.NewVertex(offset+1, 1, 1),
		blockmesh.NewVertex(offset, 1, 1),
	}
}
