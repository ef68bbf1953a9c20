package jan

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// MoveFaces translates every vertex on the borders of the selected faces,
// each vertex once, then recomputes all normals. Unselected faces sharing
// those vertices deform with them.
func (m *Mesh) MoveFaces(selection *Selection, translation mgl64.Vec3) error {
	if err := m.checkFaceSelection(selection); err != nil {
		return fmt.Errorf("move faces: %w", err)
	}

	moved := make(map[VertexID]struct{})
	for _, face := range selection.Faces() {
		for border := range m.FaceBorders(face) {
			for _, link := range m.BorderLinks(border) {
				if _, ok := moved[link.vertex]; ok {
					continue
				}
				moved[link.vertex] = struct{}{}
				v := m.Vertex(link.vertex)
				v.Position = v.Position.Add(translation)
			}
		}
	}
	m.UpdateNormals()

	return nil
}

// onSelectionBoundary reports whether no other face along the edge of link
// is selected.
func (m *Mesh) onSelectionBoundary(selection *Selection, linkID LinkID) bool {
	for fin := m.Link(linkID).nextFin; fin != linkID; {
		link := m.Link(fin)
		if selection.FaceSelected(link.face) {
			return false
		}
		fin = link.nextFin
	}
	return true
}

// extrusionBudget bounds the records one Extrude may allocate.
func (m *Mesh) extrusionBudget(faces []FaceID) error {
	sides := 0
	for _, face := range faces {
		sides += m.Face(face).edges
	}
	ok := m.vertices.CanAllocate(sides) &&
		m.edges.CanAllocate(3*sides) &&
		m.faces.CanAllocate(sides+len(faces)) &&
		m.borders.CanAllocate(sides+len(faces)) &&
		m.links.CanAllocate(5*sides)
	if !ok {
		return ErrPoolExhausted
	}
	return nil
}

// Extrude pulls the selected faces out along their summed normal by
// distance. Every edge on the outline of the selection grows a quadrilateral
// side face, and each selected face is replaced by a cap over the moved
// vertices. Faces with holes are not supported. Normals are read as last
// computed and are refreshed before returning.
func (m *Mesh) Extrude(selection *Selection, distance float64) error {
	if err := m.checkFaceSelection(selection); err != nil {
		return fmt.Errorf("extrude: %w", err)
	}
	faces := selection.Faces()
	if len(faces) == 0 {
		return nil
	}

	var direction mgl64.Vec3
	for _, face := range faces {
		f := m.Face(face)
		if f.bordersCount > 1 {
			return fmt.Errorf("extrude face %d: %w", face, ErrFaceHasHoles)
		}
		direction = direction.Add(f.Normal)
	}
	if direction.Len() == 0 {
		return fmt.Errorf("extrude: %w", ErrDegenerateNormal)
	}
	if err := m.extrusionBudget(faces); err != nil {
		return fmt.Errorf("extrude: %w", err)
	}
	extrusion := direction.Normalize().Mul(distance)

	// Original vertices to their extruded copies.
	extruded := make(map[VertexID]VertexID, m.VerticesCount())
	raise := func(vertex VertexID, rib bool) (VertexID, error) {
		if top, ok := extruded[vertex]; ok {
			return top, nil
		}
		top, err := m.AddVertex(m.Vertex(vertex).Position.Add(extrusion))
		if err != nil {
			return 0, err
		}
		if rib {
			if _, err := m.addEdge(vertex, top); err != nil {
				return 0, err
			}
		}
		extruded[vertex] = top
		return top, nil
	}

	for _, face := range faces {
		border := m.Face(face).firstBorder
		for linkID, link := range m.BorderLinks(border) {
			if !m.onSelectionBoundary(selection, linkID) {
				continue
			}
			start := link.vertex
			end := m.Link(link.next).vertex
			if _, err := raise(start, true); err != nil {
				return fmt.Errorf("extrude: %w", err)
			}
			if _, err := raise(end, true); err != nil {
				return fmt.Errorf("extrude: %w", err)
			}

			vertices := []VertexID{start, end, extruded[end], extruded[start]}
			top, err := m.addEdge(vertices[2], vertices[3])
			if err != nil {
				return fmt.Errorf("extrude: %w", err)
			}
			// The first edge of an extruded vertex is its rib.
			edges := []EdgeID{
				link.edge,
				m.Vertex(vertices[2]).anyEdge,
				top,
				m.Vertex(vertices[3]).anyEdge,
			}
			if _, err := m.AddFace(vertices, edges); err != nil {
				return fmt.Errorf("extrude: %w", err)
			}
		}
	}

	for _, face := range faces {
		border := m.Face(face).firstBorder
		var vertices []VertexID
		for _, link := range m.BorderLinks(border) {
			// Vertices inside the selected region have no rib.
			top, err := raise(link.vertex, false)
			if err != nil {
				return fmt.Errorf("extrude: %w", err)
			}
			vertices = append(vertices, top)
		}
		if _, err := m.ConnectDisconnectedVerticesAndAddFace(vertices); err != nil {
			return fmt.Errorf("extrude: %w", err)
		}
		m.removeFace(face, true)
	}

	m.UpdateNormals()

	return nil
}

// ColourJustTheOneFace sets the colour of every link of face, holes
// included.
func (m *Mesh) ColourJustTheOneFace(face FaceID, colour mgl64.Vec3) error {
	if !m.faces.Valid(face) {
		return fmt.Errorf("colour face: %w", ErrStaleHandle)
	}
	for border := range m.FaceBorders(face) {
		for _, link := range m.BorderLinks(border) {
			link.Colour = colour
		}
	}
	return nil
}

// ColourAllFaces sets the colour of every link of the mesh.
func (m *Mesh) ColourAllFaces(colour mgl64.Vec3) {
	for _, link := range m.Links() {
		link.Colour = colour
	}
}

// ColourSelection colours the faces of a face selection. Other selections
// are ignored.
func (m *Mesh) ColourSelection(selection *Selection, colour mgl64.Vec3) error {
	if selection.Type() != SELECTION_TYPE_FACE {
		return nil
	}
	if err := m.checkFaceSelection(selection); err != nil {
		return fmt.Errorf("colour selection: %w", err)
	}
	for _, face := range selection.Faces() {
		m.ColourJustTheOneFace(face, colour)
	}
	return nil
}
