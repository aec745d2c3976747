package layout

import (
	"errors"
	"fmt"
	"sync"
)

// Errors returned when mapping resource ids back to handles.
var (
	// ErrUnknownResource is returned for an id the table never issued.
	ErrUnknownResource = errors.New("layout: unknown resource id")

	// ErrResourceType is returned when an id refers to a handle of the
	// wrong type, e.g. a sampler where a texture is expected.
	ErrResourceType = errors.New("layout: resource has wrong type")

	// ErrShortBuffer is returned by Unmarshal functions for truncated input.
	ErrShortBuffer = errors.New("layout: buffer too short")
)

// ResourceID identifies a texture or sampler handle inside a packed
// record. Zero means no resource.
type ResourceID uint32

// ResourceTable assigns stable ids to texture and sampler handles.
// Handles must be comparable (pointers in practice).
//
// ResourceTable is safe for concurrent use.
type ResourceTable struct {
	mu      sync.RWMutex
	handles []any
	ids     map[any]ResourceID
}

// NewResourceTable creates an empty table.
func NewResourceTable() *ResourceTable {
	return &ResourceTable{ids: make(map[any]ResourceID)}
}

// Register returns the id of h, assigning a new one on first use.
// A nil handle maps to 0.
func (t *ResourceTable) Register(h any) ResourceID {
	if h == nil {
		return 0
	}
	t.mu.RLock()
	id, ok := t.ids[h]
	t.mu.RUnlock()
	if ok {
		return id
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[h]; ok {
		return id
	}
	t.handles = append(t.handles, h)
	id = ResourceID(len(t.handles))
	t.ids[h] = id
	return id
}

// Lookup returns the handle registered under id.
func (t *ResourceTable) Lookup(id ResourceID) (any, bool) {
	if id == 0 {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(id) > len(t.handles) {
		return nil, false
	}
	return t.handles[id-1], true
}

// Len returns the number of registered handles.
func (t *ResourceTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.handles)
}

// Handles returns the registered handles in id order.
func (t *ResourceTable) Handles() []any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]any, len(t.handles))
	copy(out, t.handles)
	return out
}

// lookup resolves id to a handle of type T.
func lookup[T any](t *ResourceTable, id ResourceID) (T, error) {
	var zero T
	h, ok := t.Lookup(id)
	if !ok {
		return zero, fmt.Errorf("%w: %d", ErrUnknownResource, id)
	}
	v, ok := h.(T)
	if !ok {
		return zero, fmt.Errorf("%w: id %d holds %T", ErrResourceType, id, h)
	}
	return v, nil
}
