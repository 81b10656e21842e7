package blockmesh

import "errors"

var (
	// ErrZeroLengthEdge is returned by the edge constructors when both
	// endpoints sit at the same point in space. Zero-length edges cannot
	// describe a curve and would crash the external mesh generator.
	ErrZeroLengthEdge = errors.New("zero-length edge: endpoints coincide")

	// ErrVertexCount is returned by [Block.SetVertices] when anything other
	// than exactly 8 vertices is supplied, and by operations that need a
	// fully described block before they can run.
	ErrVertexCount = errors.New("hex block requires exactly 8 vertices")

	// ErrGradingLength is returned by [Block.SetGrading] when the value
	// count selects neither simple grading (3 values, one per axis) nor
	// edge grading (12 values, one per block edge).
	ErrGradingLength = errors.New("grading requires 3 (simple) or 12 (edge) values")

	// ErrCellCount is returned by [Block.SetDivisions] for non-positive
	// cell counts.
	ErrCellCount = errors.New("cell counts must be positive")

	// ErrCellSize is returned by [Block.SetCellSize] for a non-positive
	// target cell size.
	ErrCellSize = errors.New("target cell size must be positive")

	// ErrUnknownFace is returned by [Block.Face] for a label outside the
	// six hex face labels.
	ErrUnknownFace = errors.New("unknown face label")

	// ErrUnknownEdge is returned by [Block.SetEdge] and [Block.EdgeBetween]
	// when the given vertex pair does not correspond to one of the block's
	// 12 edges.
	ErrUnknownEdge = errors.New("no block edge between the given vertices")

	// ErrUnknownAxis is returned for an axis outside x, y, z.
	ErrUnknownAxis = errors.New("unknown block axis")

	// ErrNilElement is returned by the mesh registration methods and the
	// element constructors when a required element is nil. Registration
	// validates before touching any collection, so a failed call leaves
	// the mesh unchanged.
	ErrNilElement = errors.New("nil mesh element")

	// ErrNoSurface is returned when a projected vertex, edge, or face is
	// constructed without at least one geometry to project onto.
	ErrNoSurface = errors.New("projected element requires at least one surface")

	// ErrNotImplemented is returned by operations that are declared in the
	// mesh interface but intentionally unsupported, such as
	// [Mesh.AddBoundary]. They fail loudly instead of silently dropping
	// input.
	ErrNotImplemented = errors.New("not implemented")
)
