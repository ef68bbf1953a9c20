// Package tessellate turns a mesh into vertex and index buffers for drawing:
// filled triangles, edge ribbons and vertex billboards.
//
// Holes that cannot be bridged to the outer border of their face are left
// out of the triangulation. That is fine for display, but the output must not
// be reused as an export of the face.
package tessellate

import (
	"errors"
	"math"
	"sync"

	"github.com/akmonengine/jan/layout"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrIndexOverflow is returned when a buffer would need more vertices than
	// a 16-bit index can address.
	ErrIndexOverflow = errors.New("tessellate: more vertices than 16-bit indices can address")

	// ErrNoEar is returned when ear clipping laps the remaining polygon without
	// finding an ear, which only happens for self-intersecting borders.
	ErrNoEar = errors.New("tessellate: no ear found in polygon")
)

// MAX_VERTICES is the number of vertices a single buffer can index.
const MAX_VERTICES = math.MaxUint16 + 1

// Triangulation is a triangle list.
type Triangulation struct {
	Vertices []layout.VertexPNC
	Indices  []uint16
}

// scratch holds the per-face working memory of a triangulation. It is
// borrowed for one call and handed back on return.
type scratch struct {
	loop  flatLoop
	holes []flatLoop

	holePositions []mgl64.Vec2
	holeVertices  []layout.VertexPNC

	l, r []int
}

var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

func borrowScratch() *scratch {
	return scratchPool.Get().(*scratch)
}

func (s *scratch) release() {
	s.reset()
	scratchPool.Put(s)
}

func (s *scratch) reset() {
	s.loop.positions = s.loop.positions[:0]
	s.loop.vertices = s.loop.vertices[:0]
	clear(s.holes)
	s.holes = s.holes[:0]
	s.holePositions = s.holePositions[:0]
	s.holeVertices = s.holeVertices[:0]
	s.l, s.r = s.l[:0], s.r[:0]
}

func checkIndices(base, added int) error {
	if base+added > MAX_VERTICES {
		return ErrIndexOverflow
	}
	return nil
}
