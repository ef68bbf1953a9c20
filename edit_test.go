package jan

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMesh_MoveFaces(t *testing.T) {
	m := NewMesh()
	faces := makeGrid(t, m, 2, 1)

	selection := NewSelection()
	selection.ToggleFace(faces[0])
	require.NoError(t, m.MoveFaces(selection, mgl64.Vec3{0, 0, 2}))

	raised := 0
	for _, vertex := range m.Vertices() {
		switch vertex.Position.Z() {
		case 2:
			raised++
		case 0:
		default:
			t.Errorf("vertex moved more than once: %v", vertex.Position)
		}
	}
	assert.Equal(t, 4, raised, "shared vertices move once")

	normal := m.Face(faces[1]).Normal
	assert.NotEqual(t, 1.0, normal.Z(), "the unselected neighbour deforms and normals are refreshed")
	assert.True(t, m.Validate(nil))
}

func TestMesh_Extrude(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		expected counts
	}{
		{
			name:     "isolated quad",
			w:        1,
			h:        1,
			expected: counts{vertices: 8, edges: 12, faces: 5, links: 20, borders: 5},
		},
		{
			name:     "two adjacent quads",
			w:        2,
			h:        1,
			expected: counts{vertices: 12, edges: 19, faces: 8, links: 32, borders: 8},
		},
		{
			name:     "quads around an inner vertex",
			w:        2,
			h:        2,
			expected: counts{vertices: 17, edges: 28, faces: 12, links: 48, borders: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMesh()
			makeGrid(t, m, tt.w, tt.h)

			require.NoError(t, m.Extrude(SelectAll(m), 0.5))
			assert.Equal(t, tt.expected, countsOf(m))
			requireLinksFollowEdges(t, m)
			assert.True(t, m.Validate(nil))

			caps := 0
			for id, face := range m.Faces() {
				assert.Equal(t, 4, face.Edges())
				top := true
				for _, link := range m.BorderLinks(face.FirstBorder()) {
					if m.Vertex(link.Vertex()).Position.Z() != 0.5 {
						top = false
					}
				}
				if top {
					caps++
					assert.InDeltaSlice(t, []float64{0, 0, 1}, m.Face(id).Normal[:], 1e-9)
				}
			}
			assert.Equal(t, tt.w*tt.h, caps)
		})
	}
}

func TestMesh_ExtrudeSideFaces(t *testing.T) {
	m := NewMesh()
	faces := makeGrid(t, m, 1, 1)
	original := borderVertices(m, m.Face(faces[0]).FirstBorder())

	require.NoError(t, m.Extrude(SelectAll(m), 1))
	assert.Nil(t, m.Face(faces[0]), "the original face is replaced by its cap")

	for _, vertex := range original {
		require.NotNil(t, m.Vertex(vertex), "outline vertices survive")
		assert.Equal(t, 3, m.Degree(vertex), "two outline edges and one rib")
	}

	for id, edge := range m.Edges() {
		count := 0
		for range m.LinksAround(id) {
			count++
		}
		ends := edge.Vertices()
		if m.Vertex(ends[0]).Position.Z() == 0 && m.Vertex(ends[1]).Position.Z() == 0 {
			assert.Equal(t, 1, count, "the open bottom only borders side faces")
		} else {
			assert.Equal(t, 2, count)
		}
	}
}

func TestMesh_ExtrudeErrors(t *testing.T) {
	t.Run("holes", func(t *testing.T) {
		m := NewMesh()
		_, err := m.MakeAFaceWithHoles()
		require.NoError(t, err)
		before := countsOf(m)
		assert.ErrorIs(t, m.Extrude(SelectAll(m), 1), ErrFaceHasHoles)
		assert.Equal(t, before, countsOf(m))
	})

	t.Run("normals never computed", func(t *testing.T) {
		m := NewMesh()
		makeTriangle(t, m)
		assert.ErrorIs(t, m.Extrude(SelectAll(m), 1), ErrDegenerateNormal)
		assert.Equal(t, 1, m.FacesCount())
	})

	t.Run("wrong selection type", func(t *testing.T) {
		m := NewMesh()
		_, vertices := makeTriangle(t, m)
		selection := NewSelection()
		selection.ToggleVertex(vertices[0])
		assert.ErrorIs(t, m.Extrude(selection, 1), ErrWrongSelectionType)
	})

	t.Run("stale face", func(t *testing.T) {
		m := NewMesh()
		face, _ := makeTriangle(t, m)
		m.UpdateNormals()
		selection := SelectAll(m)
		require.NoError(t, m.RemoveFace(face))
		assert.ErrorIs(t, m.Extrude(selection, 1), ErrStaleHandle)
	})

	t.Run("pool limit", func(t *testing.T) {
		m := NewMesh(WithPoolLimits(Limits{Vertices: 5}))
		makeTriangle(t, m)
		m.UpdateNormals()
		before := countsOf(m)
		assert.ErrorIs(t, m.Extrude(SelectAll(m), 1), ErrPoolExhausted)
		assert.Equal(t, before, countsOf(m))
	})

	t.Run("empty selection", func(t *testing.T) {
		m := NewMesh()
		makeTriangle(t, m)
		assert.NoError(t, m.Extrude(NewSelection(), 1))
		assert.Equal(t, 1, m.FacesCount())
	})
}

func TestMesh_Colour(t *testing.T) {
	s := makeTwoTriangles(t)
	m := s.mesh
	red := mgl64.Vec3{1, 0, 0}
	blue := mgl64.Vec3{0, 0, 1}

	m.ColourAllFaces(red)
	for _, link := range m.Links() {
		assert.Equal(t, red, link.Colour)
	}

	selection := NewSelection()
	selection.ToggleFace(s.second)
	require.NoError(t, m.ColourSelection(selection, blue))
	for _, link := range m.Links() {
		if link.Face() == s.second {
			assert.Equal(t, blue, link.Colour)
		} else {
			assert.Equal(t, red, link.Colour)
		}
	}

	edges := NewSelection()
	edges.ToggleEdge(m.FindEdge(s.a, s.b))
	require.NoError(t, m.ColourSelection(edges, red), "non-face selections are ignored")
	for _, link := range m.BorderLinks(m.Face(s.second).FirstBorder()) {
		assert.Equal(t, blue, link.Colour)
	}

	require.NoError(t, m.ColourJustTheOneFace(s.first, blue))
	for _, link := range m.Links() {
		assert.Equal(t, blue, link.Colour)
	}
	require.NoError(t, m.RemoveFace(s.first))
	assert.ErrorIs(t, m.ColourJustTheOneFace(s.first, red), ErrStaleHandle)
}

func TestMesh_ColourJustTheOneFace_Holes(t *testing.T) {
	m := NewMesh()
	face, err := m.MakeAFaceWithHoles()
	require.NoError(t, err)
	green := mgl64.Vec3{0, 1, 0}

	require.NoError(t, m.ColourJustTheOneFace(face, green))
	borders := 0
	for border := range m.FaceBorders(face) {
		borders++
		for _, link := range m.BorderLinks(border) {
			assert.Equal(t, green, link.Colour)
		}
	}
	assert.Equal(t, 3, borders)
}
