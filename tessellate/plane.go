package tessellate

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// basis spans the plane orthogonal to a face normal. Projecting a loop that
// winds counterclockwise around the normal gives a counterclockwise 2D loop.
type basis struct {
	tangent, bitangent mgl64.Vec3
}

func planeBasis(normal mgl64.Vec3) basis {
	d := normal.X()*normal.X() + normal.Y()*normal.Y()
	if d > 1e-6 {
		d = math.Sqrt(d)
		tangent := mgl64.Vec3{normal.Y() / d, -normal.X() / d, 0}
		return basis{tangent: tangent, bitangent: normal.Cross(tangent)}
	}

	x := 1.0
	if normal.Z() < 0 {
		x = -1
	}
	return basis{tangent: mgl64.Vec3{x, 0, 0}, bitangent: mgl64.Vec3{0, 1, 0}}
}

func (b basis) project(p mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{b.tangent.Dot(p), b.bitangent.Dot(p)}
}

func signedDoubleArea(v0, v1, v2 mgl64.Vec2) float64 {
	a := v0.Sub(v2)
	b := v1.Sub(v2)
	return a.X()*b.Y() - b.X()*a.Y()
}

func isClockwise(v0, v1, v2 mgl64.Vec2) bool {
	return signedDoubleArea(v0, v1, v2) < 0
}

func pointInTriangle(v0, v1, v2, p mgl64.Vec2) bool {
	f0 := signedDoubleArea(p, v0, v1) < 0
	f1 := signedDoubleArea(p, v1, v2) < 0
	f2 := signedDoubleArea(p, v2, v0) < 0
	return f0 == f1 && f1 == f2
}

func isTriangleVertex(v0, v1, v2, p mgl64.Vec2) bool {
	return v0 == p || v1 == p || v2 == p
}

// areVerticesClockwise holds when the shoelace sum of the loop is negative.
// Ear clipping and hole bridging expect loops for which it holds.
func areVerticesClockwise(positions []mgl64.Vec2) bool {
	d := 0.0
	for i, v0 := range positions {
		v1 := positions[(i+1)%len(positions)]
		d += (v1.X() - v0.X()) * (v1.Y() + v0.Y())
	}
	return d < 0
}

// locallyInside reports whether the diagonal from a1 to b lies between the
// edges from a1 to a0 and from a1 to a2, on the inside of a loop that winds
// counter-clockwise.
func locallyInside(a0, a1, a2, b mgl64.Vec2) bool {
	if signedDoubleArea(a0, a1, a2) > 0 {
		return signedDoubleArea(a1, b, a2) <= 0 && signedDoubleArea(a1, a0, b) <= 0
	}
	return signedDoubleArea(a1, b, a0) > 0 || signedDoubleArea(a1, a2, b) > 0
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
