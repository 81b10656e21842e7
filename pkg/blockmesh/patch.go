package blockmesh

import (
	"fmt"
	"slices"
	"strings"
)

// Face is a stand-alone block face projected onto an external surface.
// The four vertices are listed in outward-normal order per the face
// table.
type Face struct {
	vertices [4]*Vertex
	surface  Geometry
}

// NewFace creates a projected face from four vertices in outward-normal
// order.
func NewFace(vertices [4]*Vertex, surface Geometry) (*Face, error) {
	for _, v := range vertices {
		if v == nil {
			return nil, fmt.Errorf("face vertex: %w", ErrNilElement)
		}
	}
	if surface == nil {
		return nil, fmt.Errorf("face: %w", ErrNoSurface)
	}
	return &Face{vertices: vertices, surface: surface}, nil
}

// Vertices returns the four face vertices in outward-normal order.
func (f *Face) Vertices() [4]*Vertex { return f.vertices }

// Surface returns the geometry the face is projected onto.
func (f *Face) Surface() Geometry { return f.surface }

func (f *Face) entry() string {
	return fmt.Sprintf("project %s %s", vertexRefs(f.vertices), f.surface.Name())
}

// Patch is a named group of faces forming a boundary condition region.
// Each face is four vertices in outward-normal order; the boundary
// condition type is an opaque tag handed to the mesh generator.
type Patch struct {
	name  string
	kind  string
	faces [][4]*Vertex
	id    int
}

// NewPatch creates a detached patch with the given name, boundary
// condition type, and faces.
func NewPatch(name, kind string, faces ...[4]*Vertex) (*Patch, error) {
	p := &Patch{name: name, kind: kind, id: unassigned}
	for _, f := range faces {
		if err := p.AddFace(f); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddFace appends a face to the patch. The vertex order determines the
// outward normal and is preserved in the rendered output.
func (p *Patch) AddFace(face [4]*Vertex) error {
	for _, v := range face {
		if v == nil {
			return fmt.Errorf("patch %s face vertex: %w", p.name, ErrNilElement)
		}
	}
	p.faces = append(p.faces, face)
	return nil
}

// Name returns the patch name.
func (p *Patch) Name() string { return p.name }

// Type returns the boundary condition type tag.
func (p *Patch) Type() string { return p.kind }

// Faces returns the patch faces in insertion order.
func (p *Patch) Faces() [][4]*Vertex { return slices.Clone(p.faces) }

// ID returns the identity assigned by the owning mesh, or -1.
func (p *Patch) ID() int { return p.id }

func (p *Patch) entry() string {
	refs := make([]string, len(p.faces))
	for i, f := range p.faces {
		refs[i] = vertexRefs(f)
	}
	return fmt.Sprintf("%s %s (%s)", p.kind, p.name, strings.Join(refs, " "))
}

// DefaultPatch is the single unnamed catch-all for block faces not
// assigned to any patch.
type DefaultPatch struct {
	name string
	kind string
}

// NewDefaultPatch creates the catch-all patch directive.
func NewDefaultPatch(name, kind string) *DefaultPatch {
	return &DefaultPatch{name: name, kind: kind}
}

// Name returns the catch-all patch name.
func (p *DefaultPatch) Name() string { return p.name }

// Type returns the boundary condition type tag.
func (p *DefaultPatch) Type() string { return p.kind }

func (p *DefaultPatch) entry() string {
	return fmt.Sprintf("defaultPatch\n{\n    name %s;\n    type %s;\n}", p.name, p.kind)
}

// PatchPair directs the mesh generator to stitch the slave patch onto
// the master patch. Pairs carry no identity; only their write order
// matters.
type PatchPair struct {
	master *Patch
	slave  *Patch
}

// Master returns the master patch.
func (p *PatchPair) Master() *Patch { return p.master }

// Slave returns the slave patch.
func (p *PatchPair) Slave() *Patch { return p.slave }

func (p *PatchPair) entry() string {
	return fmt.Sprintf("(%s %s)", p.master.name, p.slave.name)
}

func vertexRefs(face [4]*Vertex) string {
	names := make([]string, len(face))
	for i, v := range face {
		names[i] = v.Name()
	}
	return "(" + strings.Join(names, " ") + ")"
}
