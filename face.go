package jan

import (
	"errors"
	"fmt"

	"github.com/akmonengine/jan/pool"
	"github.com/go-gl/mathgl/mgl64"
)

func exhausted(what string, err error) error {
	if errors.Is(err, pool.ErrExhausted) {
		return fmt.Errorf("%s: %w", what, ErrPoolExhausted)
	}
	return err
}

// AddVertex adds an isolated vertex at position.
func (m *Mesh) AddVertex(position mgl64.Vec3) (VertexID, error) {
	id, vertex, err := m.vertices.Allocate()
	if err != nil {
		return 0, exhausted("add vertex", err)
	}
	vertex.Position = position
	m.Events.emit(VertexAddedEvent{Vertex: id})

	return id, nil
}

// AddEdge joins start and end with a new edge, even if one already exists.
func (m *Mesh) AddEdge(start, end VertexID) (EdgeID, error) {
	if start == end {
		return 0, ErrSameVertex
	}
	if !m.vertices.Valid(start) || !m.vertices.Valid(end) {
		return 0, fmt.Errorf("add edge: %w", ErrStaleHandle)
	}

	return m.addEdge(start, end)
}

func (m *Mesh) addEdge(start, end VertexID) (EdgeID, error) {
	id, edge, err := m.edges.Allocate()
	if err != nil {
		return 0, exhausted("add edge", err)
	}
	edge.vertices = [2]VertexID{start, end}
	m.addSpoke(id, edge, start)
	m.addSpoke(id, edge, end)
	m.Events.emit(EdgeAddedEvent{Edge: id})

	return id, nil
}

// AddEdgeIfNonexistent returns the edge joining start and end, adding it
// when there is none.
func (m *Mesh) AddEdgeIfNonexistent(start, end VertexID) (EdgeID, error) {
	if id := m.FindEdge(start, end); id != 0 {
		return id, nil
	}
	return m.AddEdge(start, end)
}

// EdgeContainsVertex reports whether vertex is an endpoint of edge.
func (m *Mesh) EdgeContainsVertex(edge EdgeID, vertex VertexID) bool {
	e := m.Edge(edge)
	return e != nil && e.ContainsVertex(vertex)
}

// checkLoop verifies that edges[i] joins vertices[i] and vertices[i+1],
// wrapping at the end.
func (m *Mesh) checkLoop(vertices []VertexID, edges []EdgeID) error {
	if len(vertices) < 3 {
		return ErrTooFewVertices
	}
	if len(vertices) != len(edges) {
		return ErrMismatchedBorder
	}
	for i, vertex := range vertices {
		if !m.vertices.Valid(vertex) {
			return fmt.Errorf("vertex %d: %w", i, ErrStaleHandle)
		}
		edge := m.Edge(edges[i])
		if edge == nil {
			return fmt.Errorf("edge %d: %w", i, ErrStaleHandle)
		}
		next := vertices[(i+1)%len(vertices)]
		if !edge.ContainsVertices(vertex, next) {
			return fmt.Errorf("edge %d: %w", i, ErrMismatchedBorder)
		}
	}
	return nil
}

func (m *Mesh) reserve(faces, borders, links int) error {
	if !m.faces.CanAllocate(faces) || !m.borders.CanAllocate(borders) || !m.links.CanAllocate(links) {
		return ErrPoolExhausted
	}
	return nil
}

func (m *Mesh) addLink(vertex VertexID, edge EdgeID, face FaceID) (LinkID, *Link) {
	// Capacity was reserved by the caller.
	id, link, _ := m.links.Allocate()
	link.vertex = vertex
	link.face = face
	m.addFin(id, link, edge)

	return id, link
}

// addBorder appends a border to face and threads a closed loop of links
// through it.
func (m *Mesh) addBorder(faceID FaceID, face *Face, vertices []VertexID, edges []EdgeID) {
	firstID, first := m.addLink(vertices[0], edges[0], faceID)

	borderID, border, _ := m.borders.Allocate()
	border.first = firstID
	border.prior = face.lastBorder
	if face.firstBorder == 0 {
		face.firstBorder = borderID
	}
	if face.lastBorder != 0 {
		m.Border(face.lastBorder).next = borderID
	}
	face.lastBorder = borderID
	face.bordersCount++

	priorID, prior := firstID, first
	for i := 1; i < len(edges); i++ {
		id, link := m.addLink(vertices[i], edges[i], faceID)
		prior.next = id
		link.prior = priorID
		priorID, prior = id, link
	}
	first.prior = priorID
	prior.next = firstID
	border.last = priorID
}

// AddFace adds a face whose outer border visits vertices in order, where
// edges[i] joins vertices[i] to vertices[i+1] and the last edge closes the loop.
func (m *Mesh) AddFace(vertices []VertexID, edges []EdgeID) (FaceID, error) {
	if err := m.checkLoop(vertices, edges); err != nil {
		return 0, fmt.Errorf("add face: %w", err)
	}
	if err := m.reserve(1, 1, len(edges)); err != nil {
		return 0, fmt.Errorf("add face: %w", err)
	}

	id, face, _ := m.faces.Allocate()
	face.edges = len(edges)
	m.addBorder(id, face, vertices, edges)
	m.Events.emit(FaceAddedEvent{Face: id})

	return id, nil
}

// AddAndLinkBorder appends a hole border to face.
func (m *Mesh) AddAndLinkBorder(face FaceID, vertices []VertexID, edges []EdgeID) error {
	f := m.Face(face)
	if f == nil {
		return fmt.Errorf("add border: %w", ErrStaleHandle)
	}
	if err := m.checkLoop(vertices, edges); err != nil {
		return fmt.Errorf("add border: %w", err)
	}
	if err := m.reserve(0, 1, len(edges)); err != nil {
		return fmt.Errorf("add border: %w", err)
	}
	m.addBorder(face, f, vertices, edges)

	return nil
}

type edgeAdder func(start, end VertexID) (EdgeID, error)

func (m *Mesh) connect(vertices []VertexID, add edgeAdder) ([]EdgeID, error) {
	if len(vertices) < 3 {
		return nil, ErrTooFewVertices
	}
	if !m.edges.CanAllocate(len(vertices)) {
		return nil, ErrPoolExhausted
	}
	edges := make([]EdgeID, len(vertices))
	for i, vertex := range vertices {
		edge, err := add(vertex, vertices[(i+1)%len(vertices)])
		if err != nil {
			return nil, err
		}
		edges[i] = edge
	}
	return edges, nil
}

// ConnectVerticesAndAddFace adds a new edge between each pair of consecutive
// vertices and a face over them.
func (m *Mesh) ConnectVerticesAndAddFace(vertices []VertexID) (FaceID, error) {
	if err := m.reserve(1, 1, len(vertices)); err != nil {
		return 0, fmt.Errorf("connect face: %w", err)
	}
	edges, err := m.connect(vertices, m.AddEdge)
	if err != nil {
		return 0, fmt.Errorf("connect face: %w", err)
	}
	return m.AddFace(vertices, edges)
}

// ConnectDisconnectedVerticesAndAddFace is ConnectVerticesAndAddFace reusing
// edges that already join consecutive vertices.
func (m *Mesh) ConnectDisconnectedVerticesAndAddFace(vertices []VertexID) (FaceID, error) {
	if err := m.reserve(1, 1, len(vertices)); err != nil {
		return 0, fmt.Errorf("connect face: %w", err)
	}
	edges, err := m.connect(vertices, m.AddEdgeIfNonexistent)
	if err != nil {
		return 0, fmt.Errorf("connect face: %w", err)
	}
	return m.AddFace(vertices, edges)
}

// ConnectVerticesAndAddHole adds new edges around vertices and links them to
// face as a hole.
func (m *Mesh) ConnectVerticesAndAddHole(face FaceID, vertices []VertexID) error {
	if !m.faces.Valid(face) {
		return fmt.Errorf("connect hole: %w", ErrStaleHandle)
	}
	if err := m.reserve(0, 1, len(vertices)); err != nil {
		return fmt.Errorf("connect hole: %w", err)
	}
	edges, err := m.connect(vertices, m.AddEdge)
	if err != nil {
		return fmt.Errorf("connect hole: %w", err)
	}
	return m.AddAndLinkBorder(face, vertices, edges)
}
