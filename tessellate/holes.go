package tessellate

import (
	"math"
	"slices"

	"github.com/akmonengine/jan"
	"github.com/akmonengine/jan/layout"
	"github.com/go-gl/mathgl/mgl64"
)

// flatLoop is a border projected onto its face plane. positions and vertices
// are parallel.
type flatLoop struct {
	positions []mgl64.Vec2
	vertices  []layout.VertexPNC
	rightmost int
}

func (l *flatLoop) reverse() {
	slices.Reverse(l.positions)
	slices.Reverse(l.vertices)
}

func getRightmost(positions []mgl64.Vec2) int {
	rightmost := 0
	x := math.Inf(-1)
	for i, p := range positions {
		if p.X() > x {
			x = p.X()
			rightmost = i
		}
	}
	return rightmost
}

// appendBorder projects the links of border and appends them to positions
// and vertices.
func appendBorder(mesh *jan.Mesh, border jan.BorderID, plane basis, normal mgl64.Vec3,
	positions []mgl64.Vec2, vertices []layout.VertexPNC) ([]mgl64.Vec2, []layout.VertexPNC) {
	n := layout.Vec3(normal)
	for _, link := range mesh.BorderLinks(border) {
		position := mesh.Vertex(link.Vertex()).Position
		positions = append(positions, plane.project(position))
		vertices = append(vertices, layout.VertexPNC{
			Position: layout.Vec3(position),
			Normal:   n,
			Colour:   layout.RGBToU32(link.Colour),
		})
	}
	return positions, vertices
}

// findBridgeToHole casts a ray from the rightmost vertex of the hole in the
// positive x direction and returns the index of the outer vertex it can be
// joined to, or -1 when the ray hits nothing.
func findBridgeToHole(loop *flatLoop, hole *flatLoop) int {
	h := hole.positions[hole.rightmost]
	n := len(loop.positions)

	candidate := -1
	nearest := math.Inf(1)
	for i := range n {
		iNext := (i + 1) % n
		e0 := loop.positions[iNext]
		e1 := loop.positions[i]

		if h.Y() <= e0.Y() && h.Y() >= e1.Y() && e1.Y() != e0.Y() {
			x := e0.X() + (h.Y()-e0.Y())*(e1.X()-e0.X())/(e1.Y()-e0.Y())

			if x >= h.X() && x < nearest {
				nearest = x
				if x == h.X() {
					if h.Y() == e0.Y() {
						return i
					}
					if h.Y() == e1.Y() {
						return iNext
					}
				}
				if e0.X() < e1.X() {
					candidate = i
				} else {
					candidate = iNext
				}
			}
		}
	}

	if candidate == -1 {
		return -1
	}
	if h.X() == nearest {
		return candidate
	}

	// Outer vertices inside the triangle of the hole vertex, the hit point
	// and the candidate would block the bridge. The one closest in angle to
	// the ray wins, then the one nearest the hole.
	m := loop.positions[candidate]
	var v [3]mgl64.Vec2
	if h.Y() < m.Y() {
		v = [3]mgl64.Vec2{h, m, {nearest, h.Y()}}
	} else {
		v = [3]mgl64.Vec2{{nearest, h.Y()}, m, h}
	}

	mx := m.X()
	shallowest := math.Inf(1)
	for i, p := range loop.positions {
		if h.X() <= p.X() && p.X() <= mx && h.X() != p.X() && pointInTriangle(v[0], v[1], v[2], p) {
			current := math.Abs(h.Y()-p.Y()) / (p.X() - h.X())
			m = loop.positions[candidate]

			prior := loop.positions[mod(i-1, n)]
			next := loop.positions[mod(i+1, n)]
			if (current < shallowest || (current == shallowest && p.X() < m.X())) && locallyInside(prior, p, next, h) {
				candidate = i
				shallowest = current
			}
		}
	}

	return candidate
}

// splice inserts the loop of hole, starting and ending at its rightmost
// element and walking it backwards, after dst[at]. dst[at] is repeated after
// the hole so the result stays a single loop.
func splice[T any](dst []T, at int, hole []T, rightmost int) []T {
	n, h := len(dst), len(hole)
	dst = slices.Grow(dst, h+2)[:n+h+2]
	copy(dst[at+h+2:], dst[at:n])

	toEnd := h - rightmost
	copy(dst[at+1:], hole[rightmost:])
	copy(dst[at+1+toEnd:], hole[:rightmost+1])
	slices.Reverse(dst[at+1 : at+h+2])
	return dst
}

func (l *flatLoop) bridge(at int, hole *flatLoop) {
	l.positions = splice(l.positions, at, hole.positions, hole.rightmost)
	l.vertices = splice(l.vertices, at, hole.vertices, hole.rightmost)
}

// eliminateHoles merges every border of face into s.loop, dropping holes that
// cannot be bridged, and returns how many were dropped.
func eliminateHoles(mesh *jan.Mesh, id jan.FaceID, s *scratch) int {
	face := mesh.Face(id)
	plane := planeBasis(face.Normal)

	for border := range mesh.FaceBorders(id) {
		if border == face.FirstBorder() {
			continue
		}
		start := len(s.holePositions)
		s.holePositions, s.holeVertices = appendBorder(mesh, border, plane, face.Normal, s.holePositions, s.holeVertices)
		hole := flatLoop{
			positions: s.holePositions[start:len(s.holePositions):len(s.holePositions)],
			vertices:  s.holeVertices[start:len(s.holeVertices):len(s.holeVertices)],
		}
		s.holes = append(s.holes, hole)
	}
	for i := range s.holes {
		hole := &s.holes[i]
		if !areVerticesClockwise(hole.positions) {
			hole.reverse()
		}
		hole.rightmost = getRightmost(hole.positions)
	}
	slices.SortStableFunc(s.holes, func(a, b flatLoop) int {
		ax, bx := a.positions[a.rightmost].X(), b.positions[b.rightmost].X()
		switch {
		case ax > bx:
			return -1
		case ax < bx:
			return 1
		}
		return 0
	})

	s.loop.positions, s.loop.vertices = appendBorder(mesh, face.FirstBorder(), plane, face.Normal,
		s.loop.positions, s.loop.vertices)
	if !areVerticesClockwise(s.loop.positions) {
		s.loop.reverse()
	}

	dropped := 0
	for i := range s.holes {
		at := findBridgeToHole(&s.loop, &s.holes[i])
		if at == -1 {
			dropped++
			continue
		}
		s.loop.bridge(at, &s.holes[i])
	}
	return dropped
}
