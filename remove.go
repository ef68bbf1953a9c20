package jan

import "fmt"

// RemoveFace removes a face with all its borders and links. Edges and
// vertices are kept.
func (m *Mesh) RemoveFace(face FaceID) error {
	if !m.faces.Valid(face) {
		return fmt.Errorf("remove face: %w", ErrStaleHandle)
	}
	m.removeFace(face, false)

	return nil
}

// RemoveFaceAndItsUnlinkedEdgesAndVertices removes a face, then every edge
// of it left without links and every vertex left without edges.
func (m *Mesh) RemoveFaceAndItsUnlinkedEdgesAndVertices(face FaceID) error {
	if !m.faces.Valid(face) {
		return fmt.Errorf("remove face: %w", ErrStaleHandle)
	}
	m.removeFace(face, true)

	return nil
}

func (m *Mesh) removeFace(faceID FaceID, unlinked bool) {
	face := m.Face(faceID)
	var edges []EdgeID
	for borderID := face.firstBorder; borderID != 0; {
		border := m.Border(borderID)
		next := border.next

		first := border.first
		linkID := first
		for {
			link := m.Link(linkID)
			nextLink := link.next
			edgeID := link.edge

			m.removeFin(linkID, link)
			m.links.Deallocate(linkID)
			if unlinked {
				edges = append(edges, edgeID)
			}

			linkID = nextLink
			if linkID == first {
				break
			}
		}

		m.borders.Deallocate(borderID)
		borderID = next
	}

	m.faces.Deallocate(faceID)
	m.Events.emit(FaceRemovedEvent{Face: faceID})

	for _, edgeID := range edges {
		m.removeUnlinkedEdge(edgeID)
	}
}

func (m *Mesh) removeUnlinkedEdge(edgeID EdgeID) {
	edge := m.Edge(edgeID)
	if edge == nil || edge.anyLink != 0 {
		return
	}
	vertices := edge.vertices
	m.removeSpoke(edgeID, edge, vertices[0])
	m.removeSpoke(edgeID, edge, vertices[1])
	m.edges.Deallocate(edgeID)
	m.Events.emit(EdgeRemovedEvent{Edge: edgeID})

	for _, vertexID := range vertices {
		if v := m.Vertex(vertexID); v != nil && v.anyEdge == 0 {
			m.vertices.Deallocate(vertexID)
			m.Events.emit(VertexRemovedEvent{Vertex: vertexID})
		}
	}
}

// RemoveEdge removes an edge after removing every face using it.
func (m *Mesh) RemoveEdge(edge EdgeID) error {
	if !m.edges.Valid(edge) {
		return fmt.Errorf("remove edge: %w", ErrStaleHandle)
	}
	m.removeEdge(edge)

	return nil
}

func (m *Mesh) removeEdge(edgeID EdgeID) {
	edge := m.Edge(edgeID)
	for edge.anyLink != 0 {
		m.removeFace(m.Link(edge.anyLink).face, false)
	}
	m.removeSpoke(edgeID, edge, edge.vertices[0])
	m.removeSpoke(edgeID, edge, edge.vertices[1])
	m.edges.Deallocate(edgeID)
	m.Events.emit(EdgeRemovedEvent{Edge: edgeID})
}

// RemoveVertex removes a vertex after removing every edge touching it, and
// through them every face using those edges.
func (m *Mesh) RemoveVertex(vertex VertexID) error {
	v := m.Vertex(vertex)
	if v == nil {
		return fmt.Errorf("remove vertex: %w", ErrStaleHandle)
	}
	for v.anyEdge != 0 {
		m.removeEdge(v.anyEdge)
	}
	m.vertices.Deallocate(vertex)
	m.Events.emit(VertexRemovedEvent{Vertex: vertex})

	return nil
}
