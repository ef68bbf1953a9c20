// Package pool implements a fixed-size record allocator with O(1) allocate
// and deallocate and addresses that stay stable until a record is freed.
//
// Records live in pages that are never reallocated, so a pointer returned by
// Get remains valid across later allocations. Records are addressed with
// handles that pack a slot index and a generation; deallocating a record
// bumps the generation so outstanding handles go stale instead of dangling.
package pool

import (
	"errors"
	"iter"
)

// ErrExhausted is returned by Allocate when the pool limit has been reached.
var ErrExhausted = errors.New("pool: exhausted")

// None is the zero handle. It never refers to a live record.
const None = 0

type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Pool stores records of type T addressed by handles of type H.
type Pool[H ~uint64, T any] struct {
	pages    [][]slot[T]
	pageSize int
	// high is the number of slots ever handed out.
	high  int
	free  []uint32
	count int
	limit int
}

// Option configures a Pool.
type Option func(*config)

type config struct {
	limit int
}

// WithLimit caps the number of live records. Zero means unlimited.
func WithLimit(limit int) Option {
	return func(c *config) {
		c.limit = limit
	}
}

// New creates a pool whose pages hold pageSize records each.
func New[H ~uint64, T any](pageSize int, opts ...Option) *Pool[H, T] {
	if pageSize <= 0 {
		pageSize = 1
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &Pool[H, T]{
		pages:    [][]slot[T]{make([]slot[T], pageSize)},
		pageSize: pageSize,
		limit:    c.limit,
	}
}

func makeHandle[H ~uint64](index, generation uint32) H {
	return H(uint64(generation)<<32 | uint64(index))
}

func split[H ~uint64](h H) (index, generation uint32) {
	return uint32(uint64(h)), uint32(uint64(h) >> 32)
}

func (p *Pool[H, T]) slotAt(index uint32) *slot[T] {
	i := int(index)
	return &p.pages[i/p.pageSize][i%p.pageSize]
}

// Allocate returns a handle to a zeroed record and a pointer to it.
func (p *Pool[H, T]) Allocate() (H, *T, error) {
	if p.limit > 0 && p.count >= p.limit {
		return None, nil, ErrExhausted
	}

	var index uint32
	if n := len(p.free); n > 0 {
		index = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		if p.high == len(p.pages)*p.pageSize {
			p.pages = append(p.pages, make([]slot[T], p.pageSize))
		}
		index = uint32(p.high)
		p.high++
	}

	s := p.slotAt(index)
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	s.live = true
	p.count++

	return makeHandle[H](index, s.generation), &s.value, nil
}

// Deallocate zeroes the record and releases its slot. It reports whether h
// referred to a live record.
func (p *Pool[H, T]) Deallocate(h H) bool {
	s := p.lookup(h)
	if s == nil {
		return false
	}

	var zero T
	s.value = zero
	s.live = false
	p.count--

	index, _ := split(h)
	p.free = append(p.free, index)

	return true
}

func (p *Pool[H, T]) lookup(h H) *slot[T] {
	index, generation := split(h)
	if generation == 0 || int(index) >= p.high {
		return nil
	}
	s := p.slotAt(index)
	if !s.live || s.generation != generation {
		return nil
	}
	return s
}

// Get returns the record for h, or nil when h is stale or None.
func (p *Pool[H, T]) Get(h H) *T {
	s := p.lookup(h)
	if s == nil {
		return nil
	}
	return &s.value
}

// Valid reports whether h refers to a live record.
func (p *Pool[H, T]) Valid(h H) bool {
	return p.lookup(h) != nil
}

// Len returns the number of live records.
func (p *Pool[H, T]) Len() int {
	return p.count
}

// Limit returns the live record cap, zero when unlimited.
func (p *Pool[H, T]) Limit() int {
	return p.limit
}

// CanAllocate reports whether n more records fit under the limit.
func (p *Pool[H, T]) CanAllocate(n int) bool {
	return p.limit <= 0 || p.count+n <= p.limit
}

// Capacity returns the number of slots ever handed out, live or free.
func (p *Pool[H, T]) Capacity() int {
	return p.high
}

// All iterates live records in slot order.
func (p *Pool[H, T]) All() iter.Seq2[H, *T] {
	return func(yield func(H, *T) bool) {
		for i := 0; i < p.high; i++ {
			s := p.slotAt(uint32(i))
			if !s.live {
				continue
			}
			if !yield(makeHandle[H](uint32(i), s.generation), &s.value) {
				return
			}
		}
	}
}

// Handles returns a snapshot of the live handles in slot order. Unlike All it
// is safe to deallocate records while ranging over the result.
func (p *Pool[H, T]) Handles() []H {
	handles := make([]H, 0, p.count)
	for h := range p.All() {
		handles = append(handles, h)
	}
	return handles
}
