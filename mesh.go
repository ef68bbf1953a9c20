// Package jan implements an editable polygon mesh built on half-edges.
//
// Vertices, edges, links (half-edges), borders and faces live in record
// pools and refer to each other through generation-checked handles. Three
// families of circular doubly-linked rings tie them together:
//   - spokes: every edge touching a vertex
//   - fins: every link running along an edge, one per face using it
//   - borders: every link around one boundary loop of a face
//
// A face has an outer border followed by zero or more hole borders. Edges
// shared by more than two faces are represented naturally by longer fin
// rings. The mesh is not safe for concurrent mutation.
package jan

import (
	"iter"

	"github.com/akmonengine/jan/pool"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Handles to mesh records. The zero value of each refers to nothing.
type (
	VertexID uint64
	EdgeID   uint64
	LinkID   uint64
	BorderID uint64
	FaceID   uint64
)

// Vertex is a point of the mesh. Its normal is only refreshed by UpdateNormals.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	anyEdge  EdgeID
}

// AnyEdge returns one edge touching the vertex, or zero if it is isolated.
func (v *Vertex) AnyEdge() EdgeID { return v.anyEdge }

// Spoke is the node of an edge within the ring of edges around one endpoint.
type Spoke struct {
	next  EdgeID
	prior EdgeID
}

func (s Spoke) Next() EdgeID  { return s.next }
func (s Spoke) Prior() EdgeID { return s.prior }

// Edge joins two distinct vertices. The endpoint order carries no direction.
type Edge struct {
	spokes   [2]Spoke
	vertices [2]VertexID
	anyLink  LinkID
}

func (e *Edge) Vertices() [2]VertexID { return e.vertices }
func (e *Edge) Spokes() [2]Spoke      { return e.spokes }

// AnyLink returns one link running along the edge, or zero if no face uses it.
func (e *Edge) AnyLink() LinkID { return e.anyLink }

// Link is a half-edge: one step of a border loop, from its vertex along its
// edge to the vertex of the next link. It owns the face-local vertex colour.
type Link struct {
	Colour   mgl64.Vec3
	next     LinkID
	prior    LinkID
	nextFin  LinkID
	priorFin LinkID
	vertex   VertexID
	edge     EdgeID
	face     FaceID
}

func (l *Link) Next() LinkID     { return l.next }
func (l *Link) Prior() LinkID    { return l.prior }
func (l *Link) NextFin() LinkID  { return l.nextFin }
func (l *Link) PriorFin() LinkID { return l.priorFin }
func (l *Link) Vertex() VertexID { return l.vertex }
func (l *Link) Edge() EdgeID     { return l.edge }
func (l *Link) Face() FaceID     { return l.face }

func (l *Link) isBoundary(id LinkID) bool { return l.nextFin == id }

// Border is one closed loop of links around a face or one of its holes.
type Border struct {
	next  BorderID
	prior BorderID
	first LinkID
	last  LinkID
}

func (b *Border) Next() BorderID  { return b.next }
func (b *Border) Prior() BorderID { return b.prior }
func (b *Border) First() LinkID   { return b.first }

// Face is a polygon bounded by its first border, with holes in later borders.
type Face struct {
	Normal       mgl64.Vec3
	firstBorder  BorderID
	lastBorder   BorderID
	edges        int
	bordersCount int
}

func (f *Face) FirstBorder() BorderID { return f.firstBorder }
func (f *Face) LastBorder() BorderID  { return f.lastBorder }

// Edges returns the number of edges of the outer border.
func (f *Face) Edges() int { return f.edges }

func (f *Face) BordersCount() int { return f.bordersCount }

// Mesh exclusively owns all of its records.
type Mesh struct {
	faces    *pool.Pool[FaceID, Face]
	edges    *pool.Pool[EdgeID, Edge]
	vertices *pool.Pool[VertexID, Vertex]
	links    *pool.Pool[LinkID, Link]
	borders  *pool.Pool[BorderID, Border]

	// Workers is the number of goroutines UpdateNormals fans out to.
	Workers int
	Events  Events

	logger *zap.Logger
	config Config
}

// NewMesh creates an empty mesh.
func NewMesh(opts ...Option) *Mesh {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Mesh{
		faces:    pool.New[FaceID, Face](FACE_POOL_PAGE, pool.WithLimit(config.Limits.Faces)),
		edges:    pool.New[EdgeID, Edge](EDGE_POOL_PAGE, pool.WithLimit(config.Limits.Edges)),
		vertices: pool.New[VertexID, Vertex](VERTEX_POOL_PAGE, pool.WithLimit(config.Limits.Vertices)),
		links:    pool.New[LinkID, Link](LINK_POOL_PAGE, pool.WithLimit(config.Limits.Links)),
		borders:  pool.New[BorderID, Border](BORDER_POOL_PAGE, pool.WithLimit(config.Limits.Borders)),
		Workers:  config.Workers,
		Events:   NewEvents(),
		logger:   config.Logger,
		config:   config,
	}
}

func (m *Mesh) VerticesCount() int { return m.vertices.Len() }
func (m *Mesh) EdgesCount() int    { return m.edges.Len() }
func (m *Mesh) FacesCount() int    { return m.faces.Len() }
func (m *Mesh) LinksCount() int    { return m.links.Len() }
func (m *Mesh) BordersCount() int  { return m.borders.Len() }

// Logger returns the logger the mesh was configured with.
func (m *Mesh) Logger() *zap.Logger { return m.logger }

// Vertex returns the record for id, or nil if it has been removed.
func (m *Mesh) Vertex(id VertexID) *Vertex { return m.vertices.Get(id) }
func (m *Mesh) Edge(id EdgeID) *Edge       { return m.edges.Get(id) }
func (m *Mesh) Link(id LinkID) *Link       { return m.links.Get(id) }
func (m *Mesh) Border(id BorderID) *Border { return m.borders.Get(id) }
func (m *Mesh) Face(id FaceID) *Face       { return m.faces.Get(id) }

// Vertices iterates live vertices in pool order.
func (m *Mesh) Vertices() iter.Seq2[VertexID, *Vertex] { return m.vertices.All() }
func (m *Mesh) Edges() iter.Seq2[EdgeID, *Edge]        { return m.edges.All() }
func (m *Mesh) Links() iter.Seq2[LinkID, *Link]        { return m.links.All() }
func (m *Mesh) Faces() iter.Seq2[FaceID, *Face]        { return m.faces.All() }

// FaceBorders iterates the outer border of a face, then its holes.
func (m *Mesh) FaceBorders(face FaceID) iter.Seq2[BorderID, *Border] {
	return func(yield func(BorderID, *Border) bool) {
		f := m.faces.Get(face)
		if f == nil {
			return
		}
		for id := f.firstBorder; id != 0; {
			b := m.borders.Get(id)
			if b == nil || !yield(id, b) {
				return
			}
			id = b.next
		}
	}
}

// BorderLinks iterates the loop of a border once, starting at its first link.
func (m *Mesh) BorderLinks(border BorderID) iter.Seq2[LinkID, *Link] {
	return func(yield func(LinkID, *Link) bool) {
		b := m.borders.Get(border)
		if b == nil {
			return
		}
		first := b.first
		id := first
		for {
			l := m.links.Get(id)
			if l == nil || !yield(id, l) {
				return
			}
			id = l.next
			if id == first {
				return
			}
		}
	}
}

// CountBorderEdges walks a border loop and counts its links.
func (m *Mesh) CountBorderEdges(border BorderID) int {
	count := 0
	for range m.BorderLinks(border) {
		count++
	}
	return count
}

// CountFaceBorders walks the border list of a face.
func (m *Mesh) CountFaceBorders(face FaceID) int {
	count := 0
	for range m.FaceBorders(face) {
		count++
	}
	return count
}
