// Package blockmesh models structured hexahedral meshes and serializes
// them into the blockMeshDict text format consumed by OpenFOAM's
// blockMesh generator.
//
// # Overview
//
// A mesh is assembled from shared elements: vertices, curved edges,
// hexahedral blocks, boundary patches, and merge directives. Elements
// are created detached and gain a stable integer identity when
// registered with a [Mesh]; registering a block cascades registration of
// its corner vertices and non-straight edges, so neighbouring blocks
// that share a *Vertex share its identity in the output.
//
// # Basic Usage
//
// Build the eight corner vertices, create a [Block], configure cell
// counts and grading, register it, and render:
//
//	corners := []*blockmesh.Vertex{
//	    blockmesh.NewVertex(0, 0, 0), blockmesh.NewVertex(1, 0, 0),
//	    blockmesh.NewVertex(1, 1, 0), blockmesh.NewVertex(0, 1, 0),
//	    blockmesh.NewVertex(0, 0, 1), blockmesh.NewVertex(1, 0, 1),
//	    blockmesh.NewVertex(1, 1, 1), blockmesh.NewVertex(0, 1, 1),
//	}
//	block, _ := blockmesh.NewBlock(corners...)
//	_ = block.SetDivisions(10, 10, 10)
//
//	mesh := blockmesh.NewMesh()
//	_ = mesh.AddBlock(block)
//	fmt.Print(mesh.Render(blockmesh.RenderOptions{}))
//
// # Edges
//
// Block edges default to straight lines. Curved connections are
// described by the [Edge] variants — arcs ([ArcMidEdge],
// [ArcOriginEdge]), point sequences ([SequenceEdge] via [NewSplineEdge],
// [NewBSplineEdge], [NewPolyLineEdge]), and surface projections
// ([ProjectEdge]) — and attached with [Block.SetEdge]. Sequence edges
// drop interior points that are collinear with their neighbours; a
// sequence that simplifies to nothing degenerates to the implicit
// straight line and never appears in the edges section.
//
// # Topology
//
// The mapping from a block's 8 corners to its 12 edges and 6 faces is
// fixed by the OpenFOAM hexahedral labelling convention. [Block.Face]
// returns face corners in outward-normal order; [Block.EdgeBetween]
// returns edges oriented to the caller's first vertex.
//
// # Rendering
//
// [Mesh.Render] produces the document deterministically from the
// registration order. [Mesh.WriteFile] and [Mesh.Write] hand the
// rendered text to a file or stream; the package itself performs no
// other I/O.
package blockmesh
