package jan

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var weirdFace = []mgl64.Vec3{
	{-0.20842, +0.20493, 0},
	{+0.53383, -0.31467, 0},
	{+0.19402, -0.55426, 0},
	{+0.86623, -0.76310, 0},
	{+0.58252, +0.83783, 0},
	{-0.58114, +0.56986, 0},
	{-0.59335, -0.28583, 0},
	{-0.05012, -0.82722, 0},
}

var (
	faceWithHoles = []mgl64.Vec3{
		{+1.016774, -0.128711, 0},
		{+1.005646, +1.246329, 0},
		{-0.160719, -0.121287, 0},
		{-0.744234, +1.375802, 0},
		{-2.254874, +0.459116, 0},
		{-1.812329, -0.432525, 0},
		{+0.000000, -1.000000, 0},
	}
	faceHoles = [][]mgl64.Vec3{
		{
			{-0.543713, -0.318739, 0},
			{-0.716260, -0.565462, 0},
			{-1.659353, -0.253382, 0},
			{-1.602318, +0.377146, 0},
			{-0.852411, +0.512023, 0},
		},
		{
			{+0.502821, +0.337892, 0},
			{+0.755197, +0.412048, 0},
			{+0.717627, +0.185694, 0},
			{+0.579880, +0.063448, 0},
			{+0.361475, +0.204754, 0},
		},
	}
)

func (m *Mesh) addVertices(positions []mgl64.Vec3) ([]VertexID, error) {
	vertices := make([]VertexID, len(positions))
	for i, position := range positions {
		id, err := m.AddVertex(position)
		if err != nil {
			return nil, err
		}
		vertices[i] = id
	}
	return vertices, nil
}

// MakeAWeirdFace adds a concave octagon in the z = 0 plane and computes its
// normal.
func (m *Mesh) MakeAWeirdFace() (FaceID, error) {
	vertices, err := m.addVertices(weirdFace)
	if err != nil {
		return 0, fmt.Errorf("weird face: %w", err)
	}
	face, err := m.ConnectVerticesAndAddFace(vertices)
	if err != nil {
		return 0, fmt.Errorf("weird face: %w", err)
	}
	m.Face(face).Normal = m.FaceNormal(face)

	return face, nil
}

// MakeAFaceWithHoles adds a concave heptagon with two pentagonal holes in the
// z = 0 plane and computes its normal.
func (m *Mesh) MakeAFaceWithHoles() (FaceID, error) {
	vertices, err := m.addVertices(faceWithHoles)
	if err != nil {
		return 0, fmt.Errorf("face with holes: %w", err)
	}
	face, err := m.ConnectVerticesAndAddFace(vertices)
	if err != nil {
		return 0, fmt.Errorf("face with holes: %w", err)
	}
	m.Face(face).Normal = m.FaceNormal(face)

	for _, hole := range faceHoles {
		vertices, err := m.addVertices(hole)
		if err != nil {
			return 0, fmt.Errorf("face with holes: %w", err)
		}
		if err := m.ConnectVerticesAndAddHole(face, vertices); err != nil {
			return 0, fmt.Errorf("face with holes: %w", err)
		}
	}
	return face, nil
}
