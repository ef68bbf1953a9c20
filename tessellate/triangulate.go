package tessellate

import (
	"fmt"

	"github.com/akmonengine/jan"
	"github.com/akmonengine/jan/layout"
	"go.uber.org/zap"
)

// Triangulate returns the triangles of every face of mesh, in pool order.
func Triangulate(mesh *jan.Mesh) (Triangulation, error) {
	s := borrowScratch()
	defer s.release()

	var triangulation Triangulation
	for id := range mesh.Faces() {
		if err := triangulateFace(mesh, id, s, &triangulation); err != nil {
			return Triangulation{}, fmt.Errorf("triangulate face %d: %w", id, err)
		}
	}
	return triangulation, nil
}

// TriangulateSelection returns the triangles of the selected faces, in
// selection order. A nil selection yields no triangles.
func TriangulateSelection(mesh *jan.Mesh, selection *jan.Selection) (Triangulation, error) {
	if selection.Type() != jan.SELECTION_TYPE_FACE && selection.Len() > 0 {
		return Triangulation{}, fmt.Errorf("triangulate %s selection: %w", selection.Type(), jan.ErrWrongSelectionType)
	}

	s := borrowScratch()
	defer s.release()

	var triangulation Triangulation
	for _, id := range selection.Faces() {
		if mesh.Face(id) == nil {
			return Triangulation{}, fmt.Errorf("triangulate face %d: %w", id, jan.ErrStaleHandle)
		}
		if err := triangulateFace(mesh, id, s, &triangulation); err != nil {
			return Triangulation{}, fmt.Errorf("triangulate face %d: %w", id, err)
		}
	}
	return triangulation, nil
}

func triangulateFace(mesh *jan.Mesh, id jan.FaceID, s *scratch, t *Triangulation) error {
	s.reset()
	face := mesh.Face(id)
	base := len(t.Vertices)

	if face.BordersCount() > 1 {
		if dropped := eliminateHoles(mesh, id, s); dropped > 0 {
			mesh.Logger().Debug("holes left out of triangulation",
				zap.Uint64("face", uint64(id)), zap.Int("dropped", dropped))
		}
	} else {
		if face.Edges() == 3 {
			if err := checkIndices(base, 3); err != nil {
				return err
			}
			normal := layout.Vec3(face.Normal)
			for _, link := range mesh.BorderLinks(face.FirstBorder()) {
				t.Indices = append(t.Indices, uint16(len(t.Vertices)))
				t.Vertices = append(t.Vertices, layout.VertexPNC{
					Position: layout.Vec3(mesh.Vertex(link.Vertex()).Position),
					Normal:   normal,
					Colour:   layout.RGBToU32(link.Colour),
				})
			}
			return nil
		}

		plane := planeBasis(face.Normal)
		s.loop.positions, s.loop.vertices = appendBorder(mesh, face.FirstBorder(), plane, face.Normal,
			s.loop.positions, s.loop.vertices)
	}

	if err := checkIndices(base, len(s.loop.vertices)); err != nil {
		return err
	}
	indices, err := earClip(s.loop.positions, uint16(base), t.Indices, s)
	if err != nil {
		return err
	}
	t.Indices = indices
	t.Vertices = append(t.Vertices, s.loop.vertices...)
	return nil
}
