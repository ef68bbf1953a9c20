package jan

import "go.uber.org/zap"

// validator accumulates structural failures of one mesh. It only reads the
// mesh and never follows a handle without checking it is live, so it can be
// pointed at corrupted topology.
type validator struct {
	mesh     *Mesh
	logger   *zap.Logger
	failures int
}

func (v *validator) fail(msg string, fields ...zap.Field) {
	v.logger.Error(msg, fields...)
	v.failures++
}

// Validate checks every structural invariant of the mesh, logs each failure
// at error level and reports whether there were none. A nil logger falls back
// to the logger of the mesh.
func (m *Mesh) Validate(logger *zap.Logger) bool {
	if logger == nil {
		logger = m.logger
	}
	v := &validator{mesh: m, logger: logger}

	v.validateVertices()
	v.validateEdges()
	v.validateFins()
	v.validateFaces()

	if v.failures > 0 {
		logger.Debug("mesh validation failed", zap.Int("failures", v.failures))
	}
	return v.failures == 0
}

func (v *validator) validateVertices() {
	m := v.mesh
	bound := m.edges.Capacity() + 1

	for id, vertex := range m.Vertices() {
		if vertex.anyEdge == 0 {
			continue
		}
		edge := m.Edge(vertex.anyEdge)
		if edge == nil {
			v.fail("vertex refers to a removed edge",
				zap.Uint64("vertex", uint64(id)), zap.Uint64("edge", uint64(vertex.anyEdge)))
			continue
		}
		if !edge.ContainsVertex(id) {
			v.fail("vertex has an edge that doesn't contain it",
				zap.Uint64("vertex", uint64(id)), zap.Uint64("edge", uint64(vertex.anyEdge)))
			continue
		}

		// Walk the spoke ring and require it to close.
		edgeID := vertex.anyEdge
		for steps := 0; ; steps++ {
			if steps > bound {
				v.fail("spoke ring doesn't close", zap.Uint64("vertex", uint64(id)))
				break
			}
			e := m.Edge(edgeID)
			if e == nil || !e.ContainsVertex(id) {
				// Reported edge by edge.
				break
			}
			edgeID = e.spoke(id).next
			if edgeID == vertex.anyEdge {
				break
			}
		}
	}
}

func isSpokeSingular(id EdgeID, spoke Spoke) bool {
	return spoke.next == id && spoke.prior == id
}

func (v *validator) validateEdges() {
	m := v.mesh

	for id, edge := range m.Edges() {
		field := zap.Uint64("edge", uint64(id))

		if edge.vertices[0] == edge.vertices[1] {
			v.fail("both vertices of edge are the same", field)
		}
		for _, vertex := range edge.vertices {
			if !m.vertices.Valid(vertex) {
				v.fail("edge refers to a removed vertex", field, zap.Uint64("vertex", uint64(vertex)))
			}
		}

		if edge.anyLink != 0 {
			link := m.Link(edge.anyLink)
			if link == nil {
				v.fail("edge refers to a removed link", field, zap.Uint64("link", uint64(edge.anyLink)))
			} else if link.edge != id {
				v.fail("edge has a link that doesn't contain it", field, zap.Uint64("link", uint64(edge.anyLink)))
			}
		}

		for side, spoke := range edge.spokes {
			hub := edge.vertices[side]
			if isSpokeSingular(id, spoke) {
				if edge.anyLink != 0 {
					v.fail("edge is part of a face, but has a spoke that's singular", field, zap.Int("side", side))
				}
				continue
			}

			next := m.Edge(spoke.next)
			if next == nil {
				v.fail("spoke refers to a removed next edge", field, zap.Int("side", side))
			} else if !next.ContainsVertex(hub) || next.spoke(hub).prior != id {
				v.fail("a non-singular spoke is disconnected from its next spoke", field, zap.Int("side", side))
			}

			prior := m.Edge(spoke.prior)
			if prior == nil {
				v.fail("spoke refers to a removed prior edge", field, zap.Int("side", side))
			} else if !prior.ContainsVertex(hub) || prior.spoke(hub).next != id {
				v.fail("a non-singular spoke is disconnected from its prior spoke", field, zap.Int("side", side))
			}
		}
	}
}

func (v *validator) validateFins() {
	m := v.mesh
	bound := m.links.Capacity() + 1

	for edgeID, edge := range m.Edges() {
		first := edge.anyLink
		if first == 0 || !m.links.Valid(first) {
			continue
		}

		id := first
		for steps := 0; ; steps++ {
			if steps > bound {
				v.fail("fin ring doesn't close", zap.Uint64("edge", uint64(edgeID)))
				break
			}
			field := zap.Uint64("link", uint64(id))

			link := m.Link(id)
			if link == nil {
				v.fail("fin ring refers to a removed link", zap.Uint64("edge", uint64(edgeID)), field)
				break
			}
			if link.edge != edgeID {
				v.fail("edge has a fin that doesn't contain it", zap.Uint64("edge", uint64(edgeID)), field)
			}
			if !edge.ContainsVertex(link.vertex) {
				v.fail("link has a vertex not in its edge", zap.Uint64("edge", uint64(edgeID)), field,
					zap.Uint64("vertex", uint64(link.vertex)))
			}

			next := m.Link(link.nextFin)
			if next == nil {
				v.fail("fin refers to a removed next fin", field)
				break
			}
			if !edge.ContainsVertex(next.vertex) {
				v.fail("link has a vertex not in its edge", zap.Uint64("edge", uint64(edgeID)),
					zap.Uint64("link", uint64(link.nextFin)), zap.Uint64("vertex", uint64(next.vertex)))
			}
			if next.priorFin != id {
				v.fail("fin is disconnected from its next fin", field)
			}
			if prior := m.Link(link.priorFin); prior == nil {
				v.fail("fin refers to a removed prior fin", field)
			} else if prior.nextFin != id {
				v.fail("fin is disconnected from its prior fin", field)
			}

			id = link.nextFin
			if id == first {
				break
			}
		}
	}
}

func (v *validator) validateFaces() {
	m := v.mesh
	borderBound := m.borders.Capacity() + 1

	for faceID, face := range m.Faces() {
		field := zap.Uint64("face", uint64(faceID))

		count := 0
		if face.firstBorder != 0 {
			if edges, ok := v.validateBorder(faceID, face.firstBorder); ok && face.edges != edges {
				v.fail("face has a different number of edges than it indicates", field,
					zap.Int("edges", face.edges), zap.Int("counted", edges))
			}
			count = 1
			for borderID := m.borderNext(face.firstBorder); borderID != 0; borderID = m.borderNext(borderID) {
				if count > borderBound {
					v.fail("border list doesn't end", field)
					break
				}
				v.validateBorder(faceID, borderID)
				count++
			}
		}
		if face.edges < 3 {
			v.fail("face has fewer than 3 edges", field)
		}
		if face.bordersCount != count {
			v.fail("face has a different number of borders than it indicates", field,
				zap.Int("borders", face.bordersCount), zap.Int("counted", count))
		}
		if face.bordersCount < 1 {
			v.fail("face has no borders", field)
		}
	}
}

func (m *Mesh) borderNext(id BorderID) BorderID {
	if border := m.Border(id); border != nil {
		return border.next
	}
	return 0
}

// validateBorder checks one link loop and returns its length when it closes.
func (v *validator) validateBorder(faceID FaceID, borderID BorderID) (int, bool) {
	m := v.mesh
	field := zap.Uint64("face", uint64(faceID))
	bound := m.links.Capacity() + 1

	border := m.Border(borderID)
	if border == nil {
		v.fail("face refers to a removed border", field, zap.Uint64("border", uint64(borderID)))
		return 0, false
	}

	first := border.first
	id := first
	for count := 0; ; count++ {
		if count > bound {
			v.fail("border loop doesn't close", field, zap.Uint64("border", uint64(borderID)))
			return count, false
		}
		link := m.Link(id)
		if link == nil {
			v.fail("border refers to a removed link", field, zap.Uint64("link", uint64(id)))
			return count, false
		}
		linkField := zap.Uint64("link", uint64(id))
		if link.face != faceID {
			v.fail("face has a link that has the wrong face", field, linkField,
				zap.Uint64("other", uint64(link.face)))
		}
		if next := m.Link(link.next); next == nil || next.prior != id {
			v.fail("link is disconnected from the next link", field, linkField)
		}
		if prior := m.Link(link.prior); prior == nil || prior.next != id {
			v.fail("link is disconnected from the prior link", field, linkField)
		}

		if m.Link(link.next) == nil {
			return count + 1, false
		}
		id = link.next
		if id == first {
			return count + 1, true
		}
	}
}
