package jan

import "errors"

var (
	// ErrPoolExhausted is returned when a record pool has reached its limit.
	ErrPoolExhausted = errors.New("jan: record pool exhausted")

	// ErrStaleHandle is returned when a handle refers to a removed record.
	ErrStaleHandle = errors.New("jan: stale handle")

	// ErrTooFewVertices is returned when a border would have fewer than 3 links.
	ErrTooFewVertices = errors.New("jan: a border needs at least 3 vertices")

	// ErrMismatchedBorder is returned when vertex and edge lists differ in length
	// or an edge does not join consecutive vertices.
	ErrMismatchedBorder = errors.New("jan: vertices and edges do not form a loop")

	// ErrSameVertex is returned when an edge would join a vertex to itself.
	ErrSameVertex = errors.New("jan: edge endpoints are the same vertex")

	// ErrWrongSelectionType is returned when an operation needs a selection of another domain.
	ErrWrongSelectionType = errors.New("jan: wrong selection type")

	// ErrFaceHasHoles is returned by operations that do not support holes.
	ErrFaceHasHoles = errors.New("jan: face has holes")

	// ErrDegenerateNormal is returned when a direction derived from normals has zero length.
	ErrDegenerateNormal = errors.New("jan: degenerate normal")
)
