package tessellate

import (
	"github.com/akmonengine/jan"
	"github.com/akmonengine/jan/layout"
	"github.com/go-gl/mathgl/mgl64"
)

// Wireframe is a list of ribbon quads, one per edge.
type Wireframe struct {
	Vertices []layout.LineVertex
	Indices  []uint16
}

// WireframeSpec colours a wireframe. Hovered and selected edges only get
// their colours when Selection is set.
type WireframeSpec struct {
	Colour       mgl64.Vec4
	SelectColour mgl64.Vec4
	HoverColour  mgl64.Vec4
	Hovered      jan.EdgeID
	Selection    *jan.Selection
}

var lineTexcoords = [4]uint32{
	layout.TexcoordToU32(mgl64.Vec2{0, 0}),
	layout.TexcoordToU32(mgl64.Vec2{0, 1}),
	layout.TexcoordToU32(mgl64.Vec2{1, 1}),
	layout.TexcoordToU32(mgl64.Vec2{1, 0}),
}

// MakeWireframe returns a ribbon for every edge of mesh, in pool order.
func MakeWireframe(mesh *jan.Mesh, spec WireframeSpec) (Wireframe, error) {
	if err := checkIndices(0, 4*mesh.EdgesCount()); err != nil {
		return Wireframe{}, err
	}

	wireframe := Wireframe{
		Vertices: make([]layout.LineVertex, 0, 4*mesh.EdgesCount()),
		Indices:  make([]uint16, 0, 6*mesh.EdgesCount()),
	}
	for id, edge := range mesh.Edges() {
		colour := spec.Colour
		if spec.Selection != nil {
			switch {
			case id == spec.Hovered:
				colour = spec.HoverColour
			case spec.Selection.EdgeSelected(id):
				colour = spec.SelectColour
			}
		}
		wireframe.addEdge(mesh, edge, layout.RGBAToU32(colour))
	}
	return wireframe, nil
}

func (w *Wireframe) addEdge(mesh *jan.Mesh, edge *jan.Edge, colour uint32) {
	const left, right = -1, 1

	ends := edge.Vertices()
	start := mesh.Vertex(ends[0]).Position
	end := mesh.Vertex(ends[1]).Position
	direction := layout.Vec3(end.Sub(start))
	back := direction.Mul(-1)

	base := uint16(len(w.Vertices))
	w.Vertices = append(w.Vertices,
		layout.LineVertex{Position: layout.Vec3(end), Direction: back, Colour: colour, Texcoord: lineTexcoords[0], Side: right},
		layout.LineVertex{Position: layout.Vec3(start), Direction: direction, Colour: colour, Texcoord: lineTexcoords[1], Side: left},
		layout.LineVertex{Position: layout.Vec3(start), Direction: direction, Colour: colour, Texcoord: lineTexcoords[2], Side: right},
		layout.LineVertex{Position: layout.Vec3(end), Direction: back, Colour: colour, Texcoord: lineTexcoords[3], Side: left},
	)
	w.Indices = append(w.Indices, base+1, base+2, base+0, base+0, base+2, base+3)
}
