package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testID uint64

type record struct {
	value int
	next  testID
}

func TestPool_AllocateReturnsZeroedRecords(t *testing.T) {
	p := New[testID, record](4)

	h, r, err := p.Allocate()
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.NotEqual(t, testID(None), h)
	assert.Equal(t, record{}, *r)

	r.value = 42
	r.next = h
	require.True(t, p.Deallocate(h))

	h2, r2, err := p.Allocate()
	require.NoError(t, err)
	assert.Equal(t, record{}, *r2, "slot must be zeroed when reused")
	assert.NotEqual(t, h, h2, "reused slot must carry a new generation")
}

func TestPool_StaleHandles(t *testing.T) {
	p := New[testID, record](4)

	h, _, err := p.Allocate()
	require.NoError(t, err)
	require.True(t, p.Valid(h))

	require.True(t, p.Deallocate(h))
	assert.False(t, p.Valid(h))
	assert.Nil(t, p.Get(h))
	assert.False(t, p.Deallocate(h), "double free must be rejected")

	assert.Nil(t, p.Get(None))
	assert.False(t, p.Valid(testID(1<<32|999)), "out of range index")
}

func TestPool_PointersStableAcrossPages(t *testing.T) {
	p := New[testID, record](2)

	h, first, err := p.Allocate()
	require.NoError(t, err)
	first.value = 7

	for i := 0; i < 50; i++ {
		_, r, err := p.Allocate()
		require.NoError(t, err)
		r.value = i
	}

	assert.Same(t, first, p.Get(h))
	assert.Equal(t, 7, p.Get(h).value)
	assert.Equal(t, 51, p.Len())
}

func TestPool_Limit(t *testing.T) {
	p := New[testID, record](8, WithLimit(2))
	assert.Equal(t, 2, p.Limit())

	a, _, err := p.Allocate()
	require.NoError(t, err)
	_, _, err = p.Allocate()
	require.NoError(t, err)

	_, r, err := p.Allocate()
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Nil(t, r)

	require.True(t, p.Deallocate(a))
	_, _, err = p.Allocate()
	assert.NoError(t, err)
}

func TestPool_AllSkipsFreedSlots(t *testing.T) {
	p := New[testID, record](3)

	var handles []testID
	for i := 0; i < 6; i++ {
		h, r, err := p.Allocate()
		require.NoError(t, err)
		r.value = i
		handles = append(handles, h)
	}
	p.Deallocate(handles[1])
	p.Deallocate(handles[4])

	var values []int
	for h, r := range p.All() {
		require.True(t, p.Valid(h))
		values = append(values, r.value)
	}
	assert.Equal(t, []int{0, 2, 3, 5}, values)
	assert.Len(t, p.Handles(), 4)
	assert.Equal(t, 6, p.Capacity())
}

func TestPool_CanAllocate(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		live     int
		request  int
		expected bool
	}{
		{"unlimited", 0, 10, 1000, true},
		{"fits exactly", 4, 1, 3, true},
		{"overflows", 4, 2, 3, false},
		{"full", 2, 2, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New[testID, record](4, WithLimit(tt.limit))
			for i := 0; i < tt.live; i++ {
				_, _, err := p.Allocate()
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, p.CanAllocate(tt.request))
		})
	}
}
