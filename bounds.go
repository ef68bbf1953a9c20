package jan

import "github.com/go-gl/mathgl/mgl64"

// AABB is the box spanned by the positions of a set of vertices, used for
// mesh bounds and box selection. Min and Max are inclusive corners.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func pointAABB(point mgl64.Vec3) AABB {
	return AABB{Min: point, Max: point}
}

func (a AABB) extend(point mgl64.Vec3) AABB {
	for i := range 3 {
		a.Min[i] = min(a.Min[i], point[i])
		a.Max[i] = max(a.Max[i], point[i])
	}
	return a
}

// ContainsPoint reports whether point lies in the box, faces included.
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	for i := range 3 {
		if point[i] < a.Min[i] || point[i] > a.Max[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether the boxes share at least one point. Boxes that
// only touch count.
func (a AABB) Overlaps(other AABB) bool {
	for i := range 3 {
		if a.Max[i] < other.Min[i] || a.Min[i] > other.Max[i] {
			return false
		}
	}
	return true
}

// Bounds returns the box around every vertex, and false for a mesh without
// vertices.
func (m *Mesh) Bounds() (AABB, bool) {
	var box AABB
	found := false
	for _, vertex := range m.Vertices() {
		if !found {
			box, found = pointAABB(vertex.Position), true
			continue
		}
		box = box.extend(vertex.Position)
	}
	return box, found
}

// FaceBounds returns the box around the outer border of a face.
func (m *Mesh) FaceBounds(face FaceID) (AABB, error) {
	f := m.Face(face)
	if f == nil {
		return AABB{}, ErrStaleHandle
	}
	first := m.Link(m.Border(f.firstBorder).first)
	box := pointAABB(m.Vertex(first.vertex).Position)
	for _, link := range m.BorderLinks(f.firstBorder) {
		box = box.extend(m.Vertex(link.vertex).Position)
	}
	return box, nil
}

// SelectVerticesInside returns a vertex selection of every vertex inside box.
func (m *Mesh) SelectVerticesInside(box AABB) *Selection {
	selection := &Selection{kind: SELECTION_TYPE_VERTEX}
	for id, vertex := range m.Vertices() {
		if box.ContainsPoint(vertex.Position) {
			selection.parts = append(selection.parts, uint64(id))
		}
	}
	return selection
}

// SelectFacesOverlapping returns a face selection of every face whose outer
// border's box overlaps box.
func (m *Mesh) SelectFacesOverlapping(box AABB) *Selection {
	selection := &Selection{kind: SELECTION_TYPE_FACE}
	for id := range m.Faces() {
		if bounds, err := m.FaceBounds(id); err == nil && bounds.Overlaps(box) {
			selection.parts = append(selection.parts, uint64(id))
		}
	}
	return selection
}
