package jan

import "fmt"

// reverseFaceWinding walks every border of face backwards in one pass. Each
// link takes over the fin ring membership and edge of the link before it, so
// fin rings and edge entries stay consistent with the reversed loops.
func (m *Mesh) reverseFaceWinding(faceID FaceID) {
	for _, border := range m.FaceBorders(faceID) {
		first := border.first
		linkID := first
		link := m.Link(linkID)

		prior := m.Link(link.prior)
		priorNextFin := prior.nextFin
		priorPriorFin := prior.priorFin
		boundaryPrior := m.Link(priorNextFin).isBoundary(priorNextFin)
		priorEdge := prior.edge

		for {
			nextFin := link.nextFin
			priorFin := link.priorFin
			boundary := m.Link(nextFin).isBoundary(nextFin)

			if boundaryPrior {
				link.makeBoundary(linkID)
			} else {
				link.nextFin = priorNextFin
				link.priorFin = priorPriorFin
				m.Link(priorNextFin).priorFin = linkID
				m.Link(priorPriorFin).nextFin = linkID
			}
			priorNextFin = nextFin
			priorPriorFin = priorFin
			boundaryPrior = boundary

			// Rotate the edge entry forward one link and the link's edge
			// backward one edge.
			edge := m.Edge(link.edge)
			if edge.anyLink == linkID {
				edge.anyLink = link.next
			}
			edgeID := link.edge
			link.edge = priorEdge
			priorEdge = edgeID

			next := link.next
			link.next, link.prior = link.prior, next
			linkID = next
			link = m.Link(linkID)
			if linkID == first {
				break
			}
		}
	}
}

// flipFaceNormal reverses the winding of face and negates its normal.
func (m *Mesh) flipFaceNormal(face FaceID) {
	m.reverseFaceWinding(face)
	f := m.Face(face)
	f.Normal = f.Normal.Mul(-1)
}

// FlipFaceNormals flips every face of a face selection.
func (m *Mesh) FlipFaceNormals(selection *Selection) error {
	if err := m.checkFaceSelection(selection); err != nil {
		return fmt.Errorf("flip face normals: %w", err)
	}
	for _, face := range selection.Faces() {
		m.flipFaceNormal(face)
	}
	return nil
}
