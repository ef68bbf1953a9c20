package jan

import (
	"fmt"
	"slices"
)

const (
	SELECTION_TYPE_VERTEX SelectionType = iota
	SELECTION_TYPE_EDGE
	SELECTION_TYPE_FACE
)

// SelectionType is the single domain a Selection refers into.
type SelectionType uint8

func (t SelectionType) String() string {
	switch t {
	case SELECTION_TYPE_VERTEX:
		return "vertex"
	case SELECTION_TYPE_EDGE:
		return "edge"
	case SELECTION_TYPE_FACE:
		return "face"
	default:
		return fmt.Sprintf("SelectionType(%d)", uint8(t))
	}
}

// Selection is an unordered set of vertices, edges or faces of one mesh.
// Handles of a removed record simply stop matching anything.
//
// Toggling a part of another domain than the current one discards every part
// selected so far before switching domain. A nil *Selection reads as empty.
type Selection struct {
	kind  SelectionType
	parts []uint64
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// SelectAll returns a face selection holding every live face of mesh.
func SelectAll(mesh *Mesh) *Selection {
	selection := &Selection{
		kind:  SELECTION_TYPE_FACE,
		parts: make([]uint64, 0, mesh.FacesCount()),
	}
	for id := range mesh.Faces() {
		selection.parts = append(selection.parts, uint64(id))
	}
	return selection
}

func (s *Selection) Type() SelectionType {
	if s == nil {
		return SELECTION_TYPE_VERTEX
	}
	return s.kind
}

func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.parts)
}

func (s *Selection) find(kind SelectionType, part uint64) int {
	if s == nil || s.kind != kind {
		return -1
	}
	return slices.Index(s.parts, part)
}

func (s *Selection) toggle(kind SelectionType, part uint64) {
	if i := s.find(kind, part); i >= 0 {
		s.parts = slices.Delete(s.parts, i, i+1)
		return
	}
	if s.kind != kind {
		s.parts = s.parts[:0]
		s.kind = kind
	}
	s.parts = append(s.parts, part)
}

// ToggleVertex removes vertex when it is selected, and adds it otherwise.
func (s *Selection) ToggleVertex(vertex VertexID) { s.toggle(SELECTION_TYPE_VERTEX, uint64(vertex)) }
func (s *Selection) ToggleEdge(edge EdgeID)       { s.toggle(SELECTION_TYPE_EDGE, uint64(edge)) }
func (s *Selection) ToggleFace(face FaceID)       { s.toggle(SELECTION_TYPE_FACE, uint64(face)) }

func (s *Selection) VertexSelected(vertex VertexID) bool {
	return s.find(SELECTION_TYPE_VERTEX, uint64(vertex)) >= 0
}

func (s *Selection) EdgeSelected(edge EdgeID) bool {
	return s.find(SELECTION_TYPE_EDGE, uint64(edge)) >= 0
}

func (s *Selection) FaceSelected(face FaceID) bool {
	return s.find(SELECTION_TYPE_FACE, uint64(face)) >= 0
}

func parts[T ~uint64](s *Selection, kind SelectionType) []T {
	if s == nil || s.kind != kind {
		return nil
	}
	out := make([]T, len(s.parts))
	for i, part := range s.parts {
		out[i] = T(part)
	}
	return out
}

// Faces returns the selected faces, or nil for another domain.
func (s *Selection) Faces() []FaceID      { return parts[FaceID](s, SELECTION_TYPE_FACE) }
func (s *Selection) Edges() []EdgeID      { return parts[EdgeID](s, SELECTION_TYPE_EDGE) }
func (s *Selection) Vertices() []VertexID { return parts[VertexID](s, SELECTION_TYPE_VERTEX) }

// checkFaceSelection validates a selection before a face-domain operation
// mutates anything.
func (m *Mesh) checkFaceSelection(selection *Selection) error {
	if selection.Type() != SELECTION_TYPE_FACE {
		if selection.Len() == 0 {
			return nil
		}
		return fmt.Errorf("%s selection: %w", selection.Type(), ErrWrongSelectionType)
	}
	for _, face := range selection.parts {
		if !m.faces.Valid(FaceID(face)) {
			return fmt.Errorf("face %d: %w", face, ErrStaleHandle)
		}
	}
	return nil
}
