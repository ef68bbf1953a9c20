package jan

import "github.com/go-gl/mathgl/mgl64"

// normalize returns v scaled to unit length, or the zero vector when v has
// no length.
func normalize(v mgl64.Vec3) mgl64.Vec3 {
	length := v.Len()
	if length == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / length)
}

// FaceNormal computes the normal of the outer border of face with Newell's
// method.
func (m *Mesh) FaceNormal(face FaceID) mgl64.Vec3 {
	f := m.Face(face)
	if f == nil {
		return mgl64.Vec3{}
	}
	first := m.Border(f.firstBorder).first
	prior := m.Vertex(m.Link(m.Link(first).prior).vertex).Position

	var normal mgl64.Vec3
	for _, link := range m.BorderLinks(f.firstBorder) {
		current := m.Vertex(link.vertex).Position
		normal[0] += (prior.Y() - current.Y()) * (prior.Z() + current.Z())
		normal[1] += (prior.Z() - current.Z()) * (prior.X() + current.X())
		normal[2] += (prior.X() - current.X()) * (prior.Y() + current.Y())
		prior = current
	}
	return normalize(normal)
}

// VertexNormal sums the directions from each neighbour towards vertex, without
// weighting by face area.
func (m *Mesh) VertexNormal(vertex VertexID) mgl64.Vec3 {
	v := m.Vertex(vertex)
	if v == nil {
		return mgl64.Vec3{}
	}

	var normal mgl64.Vec3
	for _, edge := range m.EdgesAround(vertex) {
		other := m.Vertex(edge.Other(vertex))
		normal = normal.Add(v.Position.Sub(other.Position))
	}
	return normalize(normal)
}

// UpdateNormals recomputes every face normal, then every vertex normal, over
// Workers goroutines. Isolated vertices keep their normal.
func (m *Mesh) UpdateNormals() {
	faces := m.faces.Handles()
	task(m.Workers, faces, func(id FaceID) {
		m.Face(id).Normal = m.FaceNormal(id)
	})

	vertices := m.vertices.Handles()
	task(m.Workers, vertices, func(id VertexID) {
		if v := m.Vertex(id); v.anyEdge != 0 {
			v.Normal = m.VertexNormal(id)
		}
	})

	m.Events.emit(NormalsUpdatedEvent{Faces: len(faces), Vertices: len(vertices)})
}
