package blockmesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestRenderUnitCube(t *testing.T) {
	m := NewMesh()
	b, _ := mustBlock(t)
	if err := b.SetDivisions(2, 2, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.SetGrading([]float64{1, 1, 1}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddBlock(b); err != nil {
		t.Fatal(err)
	}

	out := m.Render(RenderOptions{})

	wantHex := "hex (v0 v1 v2 v3 v4 v5 v6 v7) (2 2 2) simpleGrading (1 1 1)"
	if n := strings.Count(out, "hex ("); n != 1 {
		t.Errorf("hex entry count = %d, want 1", n)
	}
	if !strings.Contains(out, wantHex) {
		t.Errorf("output missing %q:\n%s", wantHex, out)
	}

	// Straight lines are implicit: no edges section at all.
	if strings.Contains(out, "edges") {
		t.Error("edges section emitted for an all-line mesh")
	}
	for _, section := range []string{"faces", "patches", "mergePatchPairs", "geometry", "defaultPatch"} {
		if strings.Contains(out, section) {
			t.Errorf("empty optional section %q emitted", section)
		}
	}

	if !strings.Contains(out, "name v0 (0.000000 0.000000 0.000000)") {
		t.Error("output missing first vertex entry")
	}
	if !strings.Contains(out, "name v7 (0.000000 1.000000 1.000000)") {
		t.Error("output missing last vertex entry")
	}
}

func TestRenderSectionOrder(t *testing.T) {
	m := NewMesh()
	b, corners := mustBlock(t)

	arc, _ := NewArcMidEdge(corners[0], corners[1], r3.Vec{X: 0.5, Y: 0.2})
	if err := b.SetEdge(arc); err != nil {
		t.Fatal(err)
	}
	if err := m.AddBlock(b); err != nil {
		t.Fatal(err)
	}

	surf := NewTriSurfaceMesh("hull", "hull.stl")
	face, _ := b.Face(FaceTop)
	projected, _ := NewFace(face, surf)
	if err := m.AddFace(projected); err != nil {
		t.Fatal(err)
	}

	m.SetDefaultPatch(NewDefaultPatch("walls", "wall"))

	inletFace, _ := b.Face(FaceLeft)
	outletFace, _ := b.Face(FaceRight)
	inlet, _ := NewPatch("inlet", "patch", inletFace)
	outlet, _ := NewPatch("outlet", "patch", outletFace)
	if err := m.AddPatch(inlet); err != nil {
		t.Fatal(err)
	}
	if err := m.MergePatches(inlet, outlet); err != nil {
		t.Fatal(err)
	}

	out := m.Render(RenderOptions{Version: "1.2.3", Header: "// case header", Footer: "// case footer"})

	markers := []string{
		"// Generated by hexmesh 1.2.3",
		"// case header",
		"FoamFile",
		"scale 1;",
		"fastMerge yes;",
		"geometry\n{",
		"vertices\n(",
		"blocks\n(",
		"edges\n(",
		"faces\n(",
		"defaultPatch\n{",
		"patches\n(",
		"mergePatchPairs\n(",
		"// ****",
		"// case footer",
	}
	pos := -1
	for _, marker := range markers {
		idx := strings.Index(out, marker)
		if idx < 0 {
			t.Fatalf("output missing %q:\n%s", marker, out)
		}
		if idx <= pos {
			t.Errorf("section %q out of order", marker)
		}
		pos = idx
	}
}

func TestRenderEdgesSection(t *testing.T) {
	m := NewMesh()
	b, corners := mustBlock(t)

	arc, _ := NewArcMidEdge(corners[0], corners[1], r3.Vec{X: 0.5, Y: 0.25, Z: 0})
	if err := b.SetEdge(arc); err != nil {
		t.Fatal(err)
	}
	if err := m.AddBlock(b); err != nil {
		t.Fatal(err)
	}

	out := m.Render(RenderOptions{})
	if !strings.Contains(out, "arc v0 v1 (0.500000 0.250000 0.000000)") {
		t.Errorf("output missing arc entry:\n%s", out)
	}
}

func TestRenderPatchEntries(t *testing.T) {
	m := NewMesh()
	b, _ := mustBlock(t)
	if err := m.AddBlock(b); err != nil {
		t.Fatal(err)
	}

	left, _ := b.Face(FaceLeft)
	right, _ := b.Face(FaceRight)
	walls, _ := NewPatch("walls", "wall", left, right)
	if err := m.AddPatch(walls); err != nil {
		t.Fatal(err)
	}

	out := m.Render(RenderOptions{})
	want := "wall walls ((v3 v0 v4 v7) (v1 v2 v6 v5))"
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

func TestRenderScale(t *testing.T) {
	m := NewMesh()
	b, _ := mustBlock(t)
	_ = m.AddBlock(b)

	m.SetScale(0.001)
	out := m.Render(RenderOptions{})
	if !strings.Contains(out, "scale 0.001;") {
		t.Errorf("output missing scale directive:\n%s", out)
	}

	m.SetFastMerge(false)
	if strings.Contains(m.Render(RenderOptions{}), "fastMerge") {
		t.Error("fastMerge emitted when disabled")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	build := func() string {
		m := NewMesh()
		b, corners := mustBlock(t)
		arc, _ := NewArcMidEdge(corners[0], corners[1], r3.Vec{X: 0.5, Y: 0.2})
		_ = b.SetEdge(arc)
		_ = m.AddBlock(b)
		return m.Render(RenderOptions{Version: "x"})
	}

	if build() != build() {
		t.Error("identical construction produced different documents")
	}
}

func TestWriteFile(t *testing.T) {
	m := NewMesh()
	b, _ := mustBlock(t)
	if err := m.AddBlock(b); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "blockMeshDict")
	if err := m.WriteFile(path, RenderOptions{}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != m.Render(RenderOptions{}) {
		t.Error("file contents differ from rendered document")
	}
}

func TestWriteFileBadPath(t *testing.T) {
	m := NewMesh()
	if err := m.WriteFile(filepath.Join(t.TempDir(), "missing", "dict"), RenderOptions{}); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{0.001, "0.001"},
		{1.5, "1.5"},
		{100, "100"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
