package jan

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_Toggle(t *testing.T) {
	selection := NewSelection()
	assert.Equal(t, 0, selection.Len())

	selection.ToggleFace(FaceID(1))
	selection.ToggleFace(FaceID(2))
	assert.Equal(t, SELECTION_TYPE_FACE, selection.Type())
	assert.Equal(t, []FaceID{1, 2}, selection.Faces())
	assert.True(t, selection.FaceSelected(FaceID(1)))

	selection.ToggleFace(FaceID(1))
	assert.False(t, selection.FaceSelected(FaceID(1)))
	assert.Equal(t, []FaceID{2}, selection.Faces())
}

func TestSelection_RetagDiscardsOtherDomain(t *testing.T) {
	selection := NewSelection()
	selection.ToggleFace(FaceID(7))
	selection.ToggleFace(FaceID(8))

	selection.ToggleEdge(EdgeID(7))
	assert.Equal(t, SELECTION_TYPE_EDGE, selection.Type())
	assert.Equal(t, 1, selection.Len())
	assert.True(t, selection.EdgeSelected(EdgeID(7)))
	assert.False(t, selection.FaceSelected(FaceID(7)), "a handle value never matches across domains")
	assert.Nil(t, selection.Faces())
	assert.Equal(t, []EdgeID{7}, selection.Edges())

	selection.ToggleVertex(VertexID(7))
	assert.Equal(t, SELECTION_TYPE_VERTEX, selection.Type())
	assert.False(t, selection.EdgeSelected(EdgeID(7)))
	assert.True(t, selection.VertexSelected(VertexID(7)))
	assert.Equal(t, []VertexID{7}, selection.Vertices())
}

func TestSelection_Nil(t *testing.T) {
	var selection *Selection
	assert.Equal(t, 0, selection.Len())
	assert.Equal(t, SELECTION_TYPE_VERTEX, selection.Type())
	assert.False(t, selection.FaceSelected(FaceID(1)))
	assert.Nil(t, selection.Faces())
	assert.Nil(t, selection.Vertices())

	tests := []struct {
		name string
		run  func(m *Mesh) error
	}{
		{name: "move faces", run: func(m *Mesh) error { return m.MoveFaces(nil, mgl64.Vec3{1, 0, 0}) }},
		{name: "extrude", run: func(m *Mesh) error { return m.Extrude(nil, 1) }},
		{name: "flip face normals", run: func(m *Mesh) error { return m.FlipFaceNormals(nil) }},
		{name: "colour selection", run: func(m *Mesh) error { return m.ColourSelection(nil, mgl64.Vec3{1, 0, 0}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMesh()
			face, vertices := makeTriangle(t, m)
			m.UpdateNormals()
			before := countsOf(m)
			normal := m.Face(face).Normal

			require.NoError(t, tt.run(m))
			assert.Equal(t, before, countsOf(m))
			assert.Equal(t, normal, m.Face(face).Normal)
			assert.Equal(t, mgl64.Vec3{}, m.Vertex(vertices[0]).Position)
			for _, link := range m.Links() {
				assert.Equal(t, mgl64.Vec3{}, link.Colour)
			}
		})
	}
}

func TestSelectAll(t *testing.T) {
	s := makeTwoTriangles(t)

	selection := SelectAll(s.mesh)
	assert.Equal(t, SELECTION_TYPE_FACE, selection.Type())
	assert.ElementsMatch(t, []FaceID{s.first, s.second}, selection.Faces())

	require.NoError(t, s.mesh.RemoveFace(s.first))
	assert.Equal(t, []FaceID{s.second}, SelectAll(s.mesh).Faces())

	empty := SelectAll(NewMesh())
	assert.Equal(t, SELECTION_TYPE_FACE, empty.Type())
	assert.Equal(t, 0, empty.Len())
}

func TestSelectionType_String(t *testing.T) {
	tests := []struct {
		kind     SelectionType
		expected string
	}{
		{SELECTION_TYPE_VERTEX, "vertex"},
		{SELECTION_TYPE_EDGE, "edge"},
		{SELECTION_TYPE_FACE, "face"},
		{SelectionType(9), "SelectionType(9)"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
