package jan

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMesh_FaceNormal(t *testing.T) {
	tests := []struct {
		name     string
		build    func(m *Mesh) (FaceID, error)
		expected mgl64.Vec3
	}{
		{"weird face", (*Mesh).MakeAWeirdFace, mgl64.Vec3{0, 0, 1}},
		{"face with holes", (*Mesh).MakeAFaceWithHoles, mgl64.Vec3{0, 0, 1}},
		{
			name: "clockwise triangle",
			build: func(m *Mesh) (FaceID, error) {
				vertices := addVerticesAt(t, m,
					mgl64.Vec3{0, 0, 0},
					mgl64.Vec3{0, 1, 0},
					mgl64.Vec3{1, 0, 0},
				)
				return m.ConnectVerticesAndAddFace(vertices)
			},
			expected: mgl64.Vec3{0, 0, -1},
		},
		{
			name: "tilted quad",
			build: func(m *Mesh) (FaceID, error) {
				vertices := addVerticesAt(t, m,
					mgl64.Vec3{0, 0, 0},
					mgl64.Vec3{0, 1, 0},
					mgl64.Vec3{0, 1, 1},
					mgl64.Vec3{0, 0, 1},
				)
				return m.ConnectVerticesAndAddFace(vertices)
			},
			expected: mgl64.Vec3{1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMesh()
			face, err := tt.build(m)
			require.NoError(t, err)
			normal := m.FaceNormal(face)
			assert.InDeltaSlice(t, tt.expected[:], normal[:], 1e-5)
		})
	}
}

func TestMesh_VertexNormal(t *testing.T) {
	m := NewMesh()
	_, vertices := makeTriangle(t, m)
	isolated := addVerticesAt(t, m, mgl64.Vec3{5, 5, 5})[0]
	m.Vertex(isolated).Normal = mgl64.Vec3{0, 1, 0}

	m.UpdateNormals()

	normal := m.Vertex(vertices[0]).Normal
	assert.InDeltaSlice(t, []float64{-0.70710678, -0.70710678, 0}, normal[:], 1e-6)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, m.Vertex(isolated).Normal, "isolated vertices are skipped")
	assert.Equal(t, mgl64.Vec3{}, m.VertexNormal(VertexID(0)))
}

func TestMesh_DegenerateNormalIsZero(t *testing.T) {
	m := NewMesh()
	vertices := addVerticesAt(t, m,
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{2, 0, 0},
	)
	face, err := m.ConnectVerticesAndAddFace(vertices)
	require.NoError(t, err)

	m.UpdateNormals()
	assert.Equal(t, mgl64.Vec3{}, m.Face(face).Normal)
}

func TestMesh_UpdateNormalsWorkers(t *testing.T) {
	serial := NewMesh()
	makeGrid(t, serial, 6, 5)

	parallel := NewMesh(WithWorkers(4))
	makeGrid(t, parallel, 6, 5)

	serialFaces := serial.faces.Handles()
	parallelFaces := parallel.faces.Handles()
	require.Len(t, parallelFaces, len(serialFaces))
	for i := range serialFaces {
		assert.Equal(t, serial.Face(serialFaces[i]).Normal, parallel.Face(parallelFaces[i]).Normal)
	}

	serialVertices := serial.vertices.Handles()
	parallelVertices := parallel.vertices.Handles()
	for i := range serialVertices {
		assert.Equal(t, serial.Vertex(serialVertices[i]).Normal, parallel.Vertex(parallelVertices[i]).Normal)
	}
}
