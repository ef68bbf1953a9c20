package jan

import "iter"

// spoke returns the ring node of edge around hub.
func (e *Edge) spoke(hub VertexID) *Spoke {
	if e.vertices[0] == hub {
		return &e.spokes[0]
	}
	return &e.spokes[1]
}

// Other returns the endpoint of the edge opposite to vertex.
func (e *Edge) Other(vertex VertexID) VertexID {
	if e.vertices[0] == vertex {
		return e.vertices[1]
	}
	return e.vertices[0]
}

// ContainsVertex reports whether vertex is an endpoint of the edge.
func (e *Edge) ContainsVertex(vertex VertexID) bool {
	return e.vertices[0] == vertex || e.vertices[1] == vertex
}

// ContainsVertices reports whether the edge joins a and b, in either order.
func (e *Edge) ContainsVertices(a, b VertexID) bool {
	return (e.vertices[0] == a && e.vertices[1] == b) ||
		(e.vertices[1] == a && e.vertices[0] == b)
}

// addSpoke splices edge into the ring around vertex, just before the ring's
// entry edge. The first edge of a vertex forms a ring of one.
func (m *Mesh) addSpoke(id EdgeID, edge *Edge, vertexID VertexID) {
	vertex := m.Vertex(vertexID)
	a := edge.spoke(vertexID)

	existingID := vertex.anyEdge
	if existingID == 0 {
		vertex.anyEdge = id
		a.next = id
		a.prior = id
		return
	}

	b := m.Edge(existingID).spoke(vertexID)
	if b.prior != 0 {
		c := m.Edge(b.prior).spoke(vertexID)
		c.next = id
	}
	a.next = existingID
	a.prior = b.prior
	b.prior = id
}

// removeSpoke unlinks edge from the ring around vertex and moves the vertex
// entry point off it.
func (m *Mesh) removeSpoke(id EdgeID, edge *Edge, vertexID VertexID) {
	spoke := edge.spoke(vertexID)
	if spoke.next != 0 {
		other := m.Edge(spoke.next).spoke(vertexID)
		other.prior = spoke.prior
	}
	if spoke.prior != 0 {
		other := m.Edge(spoke.prior).spoke(vertexID)
		other.next = spoke.next
	}

	vertex := m.Vertex(vertexID)
	if vertex.anyEdge == id {
		if spoke.next == id {
			vertex.anyEdge = 0
		} else {
			vertex.anyEdge = spoke.next
		}
	}
	spoke.next = 0
	spoke.prior = 0
}

// EdgesAround iterates the spoke ring of a vertex once, following next.
func (m *Mesh) EdgesAround(vertex VertexID) iter.Seq2[EdgeID, *Edge] {
	return func(yield func(EdgeID, *Edge) bool) {
		v := m.Vertex(vertex)
		if v == nil || v.anyEdge == 0 {
			return
		}
		first := v.anyEdge
		id := first
		for {
			edge := m.Edge(id)
			if edge == nil || !yield(id, edge) {
				return
			}
			id = edge.spoke(vertex).next
			if id == first {
				return
			}
		}
	}
}

// Degree counts the edges touching a vertex.
func (m *Mesh) Degree(vertex VertexID) int {
	count := 0
	for range m.EdgesAround(vertex) {
		count++
	}
	return count
}

// FindEdge returns the edge joining hub and vertex, or zero when there is none.
func (m *Mesh) FindEdge(hub, vertex VertexID) EdgeID {
	for id, edge := range m.EdgesAround(hub) {
		if edge.ContainsVertices(hub, vertex) {
			return id
		}
	}
	return 0
}
