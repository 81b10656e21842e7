// Package geometry provides the vector math used to describe hexahedral
// block meshes: collinearity tests, distances, polyline lengths, and
// rotations of points about an arbitrary origin.
//
// Coordinates are represented as [r3.Vec] values throughout. The package
// deliberately uses exact floating-point comparisons for collinearity:
// mesh descriptions are built from coordinates the caller chose, not from
// measured data, so two points either coincide or they do not.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Collinear reports whether the three points a, b, c lie on a single
// straight line. The test computes the cross product of the two direction
// vectors anchored at a; a zero cross product means the directions are
// parallel.
func Collinear(a, b, c r3.Vec) bool {
	cross := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	return cross.X == 0 && cross.Y == 0 && cross.Z == 0
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// PolylineLength returns the total length of the polyline through the
// given points, in order. Fewer than two points yield zero.
func PolylineLength(points []r3.Vec) float64 {
	var length float64
	for i := 1; i < len(points); i++ {
		length += Distance(points[i-1], points[i])
	}
	return length
}

// Rotate rotates point p about origin by the given yaw (z axis), pitch
// (y axis), and roll (x axis) angles, applied in that order. Angles are
// in degrees when degrees is true, radians otherwise. Rotations follow
// the right-hand rule.
func Rotate(p r3.Vec, yaw, pitch, roll float64, origin r3.Vec, degrees bool) r3.Vec {
	if degrees {
		yaw *= math.Pi / 180
		pitch *= math.Pi / 180
		roll *= math.Pi / 180
	}

	v := r3.Sub(p, origin)
	v = r3.NewRotation(yaw, r3.Vec{Z: 1}).Rotate(v)
	v = r3.NewRotation(pitch, r3.Vec{Y: 1}).Rotate(v)
	v = r3.NewRotation(roll, r3.Vec{X: 1}).Rotate(v)
	return r3.Add(v, origin)
}
