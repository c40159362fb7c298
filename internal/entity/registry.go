package entity

import (
	"github.com/PaliBr/gamejam/internal/types"

	"github.com/kamstrup/intmap"
)

type slot[T any] struct {
	id    types.EntityID
	value *T
	live  bool
}

// Registry is an arena of entities of one kind. Each entry keeps its slot
// until removed; removal frees the slot without shifting the others, so
// iteration order is stable and removing entries while iterating is safe.
type Registry[T any] struct {
	slots []slot[T]
	index *intmap.Map[types.EntityID, int]
	free  []int
	count int
}

func NewRegistry[T any](capacity int) *Registry[T] {
	return &Registry[T]{
		slots: make([]slot[T], 0, capacity),
		index: intmap.New[types.EntityID, int](capacity),
	}
}

// Insert stores value under id. It returns false if id is already present.
func (r *Registry[T]) Insert(id types.EntityID, value *T) bool {
	if r.index.Has(id) {
		return false
	}
	s := slot[T]{id: id, value: value, live: true}
	var pos int
	if n := len(r.free); n > 0 {
		pos = r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[pos] = s
	} else {
		pos = len(r.slots)
		r.slots = append(r.slots, s)
	}
	r.index.Put(id, pos)
	r.count++
	return true
}

// Get looks an entry up by id.
func (r *Registry[T]) Get(id types.EntityID) (*T, bool) {
	pos, ok := r.index.Get(id)
	if !ok {
		return nil, false
	}
	return r.slots[pos].value, true
}

// Has reports whether id is present.
func (r *Registry[T]) Has(id types.EntityID) bool {
	return r.index.Has(id)
}

// Remove deletes id and reports whether it was present. A second Remove of
// the same id returns false, which callers use as the exactly-once guard.
func (r *Registry[T]) Remove(id types.EntityID) bool {
	pos, ok := r.index.Get(id)
	if !ok {
		return false
	}
	r.index.Del(id)
	r.slots[pos] = slot[T]{}
	r.free = append(r.free, pos)
	r.count--
	return true
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	return r.count
}

// Each visits live entries in slot order until fn returns false. Entries
// removed during the walk are skipped if not yet visited.
func (r *Registry[T]) Each(fn func(id types.EntityID, value *T) bool) {
	for i := 0; i < len(r.slots); i++ {
		s := r.slots[i]
		if !s.live {
			continue
		}
		if !fn(s.id, s.value) {
			return
		}
	}
}

// IDs returns the live ids in slot order.
func (r *Registry[T]) IDs() []types.EntityID {
	ids := make([]types.EntityID, 0, r.count)
	r.Each(func(id types.EntityID, _ *T) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Clear removes every entry.
func (r *Registry[T]) Clear() {
	r.slots = r.slots[:0]
	r.free = r.free[:0]
	r.index.Clear()
	r.count = 0
}
