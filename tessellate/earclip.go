package tessellate

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// earClip appends the triangles of a simple polygon to indices, offsetting
// every index by base. A polygon of n corners always gives n - 2 triangles.
func earClip(positions []mgl64.Vec2, base uint16, indices []uint16, s *scratch) ([]uint16, error) {
	n := len(positions)

	// Projection may have flipped the loop. Walk the chains the other way
	// instead of reordering so positions keep the indices of their vertices.
	reverseWinding := !areVerticesClockwise(positions)

	l, r := s.l[:0], s.r[:0]
	for i := range n {
		l = append(l, mod(i-1, n))
		r = append(r, mod(i+1, n))
	}
	s.l, s.r = l, r

	indices = slices.Grow(indices, 3*(n-2))

	j := n - 1
	misses := 0
	for triangles := 0; triangles < n-2; {
		if misses > n-triangles {
			return indices, ErrNoEar
		}
		j = r[j]

		var v0, v1, v2 mgl64.Vec2
		if reverseWinding {
			v0, v1, v2 = positions[r[j]], positions[j], positions[l[j]]
		} else {
			v0, v1, v2 = positions[l[j]], positions[j], positions[r[j]]
		}

		if isClockwise(v0, v1, v2) || containsAnyPoint(v0, v1, v2, positions) {
			misses++
			continue
		}

		indices = append(indices, base+uint16(l[j]), base+uint16(j), base+uint16(r[j]))
		triangles++
		misses = 0

		l[r[j]] = l[j]
		r[l[j]] = r[j]
	}

	return indices, nil
}

func containsAnyPoint(v0, v1, v2 mgl64.Vec2, points []mgl64.Vec2) bool {
	for _, p := range points {
		if !isTriangleVertex(v0, v1, v2, p) && pointInTriangle(v0, v1, v2, p) {
			return true
		}
	}
	return false
}
