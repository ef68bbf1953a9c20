package jan

import "iter"

func (l *Link) makeBoundary(id LinkID) {
	l.nextFin = id
	l.priorFin = id
}

// addFin splices link into the fin ring of edge, right after the edge's entry
// link, and makes it the new entry link.
func (m *Mesh) addFin(id LinkID, link *Link, edgeID EdgeID) {
	edge := m.Edge(edgeID)
	if existingID := edge.anyLink; existingID != 0 {
		existing := m.Link(existingID)
		link.priorFin = existingID
		link.nextFin = existing.nextFin

		m.Link(existing.nextFin).priorFin = id
		existing.nextFin = id
	} else {
		link.makeBoundary(id)
	}
	edge.anyLink = id
	link.edge = edgeID
}

// removeFin unlinks link from the fin ring of its edge.
func (m *Mesh) removeFin(id LinkID, link *Link) {
	edge := m.Edge(link.edge)
	if link.isBoundary(id) {
		edge.anyLink = 0
	} else {
		if edge.anyLink == id {
			edge.anyLink = link.nextFin
		}
		m.Link(link.nextFin).priorFin = link.priorFin
		m.Link(link.priorFin).nextFin = link.nextFin
	}
	link.nextFin = 0
	link.priorFin = 0
	link.edge = 0
}

// IsBoundary reports whether no other face shares the edge of link.
func (m *Mesh) IsBoundary(link LinkID) bool {
	l := m.Link(link)
	return l != nil && l.isBoundary(link)
}

// LinksAround iterates the fin ring of an edge once: one link per face side
// using it.
func (m *Mesh) LinksAround(edge EdgeID) iter.Seq2[LinkID, *Link] {
	return func(yield func(LinkID, *Link) bool) {
		e := m.Edge(edge)
		if e == nil || e.anyLink == 0 {
			return
		}
		first := e.anyLink
		id := first
		for {
			link := m.Link(id)
			if link == nil || !yield(id, link) {
				return
			}
			id = link.nextFin
			if id == first {
				return
			}
		}
	}
}
