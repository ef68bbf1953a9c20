package tessellate

import (
	"github.com/akmonengine/jan"
	"github.com/akmonengine/jan/layout"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Pointcloud is a list of billboard quads, one per vertex.
type Pointcloud struct {
	Vertices []layout.PointVertex
	Indices  []uint16
}

// PointcloudSpec colours a pointcloud. Hovered and selected vertices only get
// their colours when Selection is set.
type PointcloudSpec struct {
	Colour       mgl64.Vec4
	SelectColour mgl64.Vec4
	HoverColour  mgl64.Vec4
	Hovered      jan.VertexID
	Selection    *jan.Selection
}

var (
	pointTexcoords = [4]uint32{
		layout.TexcoordToU32(mgl64.Vec2{0, 0}),
		layout.TexcoordToU32(mgl64.Vec2{1, 0}),
		layout.TexcoordToU32(mgl64.Vec2{1, 1}),
		layout.TexcoordToU32(mgl64.Vec2{0, 1}),
	}
	pointOffsets = [4]mgl32.Vec2{
		{-1, -1},
		{+1, -1},
		{+1, +1},
		{-1, +1},
	}
)

// MakePointcloud returns a billboard for every vertex of mesh, in pool order.
func MakePointcloud(mesh *jan.Mesh, spec PointcloudSpec) (Pointcloud, error) {
	if err := checkIndices(0, 4*mesh.VerticesCount()); err != nil {
		return Pointcloud{}, err
	}

	pointcloud := Pointcloud{
		Vertices: make([]layout.PointVertex, 0, 4*mesh.VerticesCount()),
		Indices:  make([]uint16, 0, 6*mesh.VerticesCount()),
	}
	for id, vertex := range mesh.Vertices() {
		colour := spec.Colour
		if spec.Selection != nil {
			switch {
			case id == spec.Hovered:
				colour = spec.HoverColour
			case spec.Selection.VertexSelected(id):
				colour = spec.SelectColour
			}
		}
		pointcloud.addVertex(vertex, layout.RGBAToU32(colour))
	}
	return pointcloud, nil
}

func (p *Pointcloud) addVertex(vertex *jan.Vertex, colour uint32) {
	base := uint16(len(p.Vertices))
	center := layout.Vec3(vertex.Position)
	for i := range 4 {
		p.Vertices = append(p.Vertices, layout.PointVertex{
			Position: center,
			Offset:   pointOffsets[i],
			Colour:   colour,
			Texcoord: pointTexcoords[i],
		})
	}
	p.Indices = append(p.Indices, base+0, base+1, base+2, base+0, base+2, base+3)
}
