package jan

const (
	VERTEX_ADDED EventType = iota
	VERTEX_REMOVED
	EDGE_ADDED
	EDGE_REMOVED
	FACE_ADDED
	FACE_REMOVED
	NORMALS_UPDATED
)

type EventType uint8

// Event is a change to the mesh, buffered until the next Flush.
type Event interface {
	Type() EventType
}

type VertexAddedEvent struct {
	Vertex VertexID
}

func (e VertexAddedEvent) Type() EventType { return VERTEX_ADDED }

type VertexRemovedEvent struct {
	Vertex VertexID
}

func (e VertexRemovedEvent) Type() EventType { return VERTEX_REMOVED }

type EdgeAddedEvent struct {
	Edge EdgeID
}

func (e EdgeAddedEvent) Type() EventType { return EDGE_ADDED }

type EdgeRemovedEvent struct {
	Edge EdgeID
}

func (e EdgeRemovedEvent) Type() EventType { return EDGE_REMOVED }

type FaceAddedEvent struct {
	Face FaceID
}

func (e FaceAddedEvent) Type() EventType { return FACE_ADDED }

type FaceRemovedEvent struct {
	Face FaceID
}

func (e FaceRemovedEvent) Type() EventType { return FACE_REMOVED }

// NormalsUpdatedEvent is sent once per UpdateNormals call.
type NormalsUpdatedEvent struct {
	Faces    int
	Vertices int
}

func (e NormalsUpdatedEvent) Type() EventType { return NORMALS_UPDATED }

// EventListener receives the flushed events of the types it subscribed to.
type EventListener func(event Event)

// Events queues mesh changes for the listeners subscribed to them.
type Events struct {
	listeners map[EventType][]EventListener
	buffer    []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 256),
	}
}

// Subscribe registers listener for every later event of eventType.
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// emit queues event when at least one listener wants its type.
func (e *Events) emit(event Event) {
	if len(e.listeners[event.Type()]) == 0 {
		return
	}
	e.buffer = append(e.buffer, event)
}

// Pending is the number of events waiting for Flush.
func (e *Events) Pending() int {
	return len(e.buffer)
}

func (e *Events) flush() {
	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}

// Flush delivers the changes buffered since the last call to their listeners.
func (m *Mesh) Flush() {
	m.Events.flush()
}
