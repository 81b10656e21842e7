package blockmesh

// FaceLabel names one of the six faces of a hex block.
type FaceLabel string

// The six hex face labels. Local corner indices follow the OpenFOAM
// hexahedral cell labelling convention: corners 0-3 form the bottom face
// counter-clockwise when viewed from below, corners 4-7 sit directly
// above them.
const (
	FaceBottom FaceLabel = "bottom"
	FaceTop    FaceLabel = "top"
	FaceRight  FaceLabel = "right"
	FaceLeft   FaceLabel = "left"
	FaceFront  FaceLabel = "front"
	FaceBack   FaceLabel = "back"
)

// Axis selects one of a block's three principal directions.
type Axis int

// Principal block axes, in the order cell counts and simple grading
// values are written.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// faceTable maps each face label to the local corner indices of its four
// vertices, ordered so that listing the corresponding points yields an
// outward-pointing normal under the right-hand rule. The external mesh
// generator enforces this convention; the table is not configurable.
var faceTable = map[FaceLabel][4]int{
	FaceBottom: {0, 3, 2, 1},
	FaceTop:    {4, 5, 6, 7},
	FaceRight:  {1, 2, 6, 5},
	FaceLeft:   {3, 0, 4, 7},
	FaceFront:  {0, 1, 5, 4},
	FaceBack:   {2, 3, 7, 6},
}

// edgeTable lists the 12 block edges as pairs of local corner indices,
// grouped four per principal axis (x, then y, then z). Edge grading
// values are written in this order.
var edgeTable = [12][2]int{
	{0, 1}, {2, 3}, {6, 7}, {4, 5}, // x
	{0, 3}, {1, 2}, {5, 6}, {4, 7}, // y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // z
}

// axisOf returns the principal axis of the block edge joining the two
// local corner indices, or false if the pair is not a block edge.
func axisOf(i0, i1 int) (Axis, bool) {
	for slot, pair := range edgeTable {
		if (pair[0] == i0 && pair[1] == i1) || (pair[0] == i1 && pair[1] == i0) {
			return Axis(slot / 4), true
		}
	}
	return 0, false
}
