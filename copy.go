package jan

import "fmt"

// CopyMesh builds an independent mesh with the same vertices, edges, faces,
// holes, link colours and normals as original, configured the same way.
func CopyMesh(original *Mesh) (*Mesh, error) {
	config := original.config
	next := NewMesh(func(c *Config) { *c = config })
	next.Workers = original.Workers

	vertexMap := make(map[VertexID]VertexID, original.VerticesCount())
	for id, vertex := range original.Vertices() {
		added, err := next.AddVertex(vertex.Position)
		if err != nil {
			return nil, fmt.Errorf("copy mesh: %w", err)
		}
		next.Vertex(added).Normal = vertex.Normal
		vertexMap[id] = added
	}

	edgeMap := make(map[EdgeID]EdgeID, original.EdgesCount())
	for id, edge := range original.Edges() {
		added, err := next.addEdge(vertexMap[edge.vertices[0]], vertexMap[edge.vertices[1]])
		if err != nil {
			return nil, fmt.Errorf("copy mesh: %w", err)
		}
		edgeMap[id] = added
	}

	var vertices []VertexID
	var edges []EdgeID
	remap := func(border BorderID) {
		vertices, edges = vertices[:0], edges[:0]
		for _, link := range original.BorderLinks(border) {
			vertices = append(vertices, vertexMap[link.vertex])
			edges = append(edges, edgeMap[link.edge])
		}
	}

	for id, face := range original.Faces() {
		remap(face.firstBorder)
		added, err := next.AddFace(vertices, edges)
		if err != nil {
			return nil, fmt.Errorf("copy mesh: %w", err)
		}
		for border := original.Border(face.firstBorder).next; border != 0; border = original.Border(border).next {
			remap(border)
			if err := next.AddAndLinkBorder(added, vertices, edges); err != nil {
				return nil, fmt.Errorf("copy mesh: %w", err)
			}
		}

		next.Face(added).Normal = face.Normal
		copyFaceLinks(next, added, original, id)
	}

	return next, nil
}

// copyFaceLinks copies per-link data between two faces with the same border
// layout.
func copyFaceLinks(dst *Mesh, added FaceID, src *Mesh, face FaceID) {
	addedBorder := dst.Face(added).firstBorder
	for border := range src.FaceBorders(face) {
		addedLink := dst.Border(addedBorder).first
		for _, link := range src.BorderLinks(border) {
			l := dst.Link(addedLink)
			l.Colour = link.Colour
			addedLink = l.next
		}
		addedBorder = dst.Border(addedBorder).next
	}
}
