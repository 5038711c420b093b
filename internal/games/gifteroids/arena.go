package gifteroids

import "iter"

// Handle identifies an entity in an Arena. A handle outlives its entity:
// once the slot is freed the generation moves on and the old handle stops
// resolving. The zero Handle never resolves.
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Arena stores entities of one kind in reusable slots.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// Insert stores v and returns its handle. Freed slots are reused, most
// recently freed first.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots)) //#nosec G115 -- entity counts are tiny
		a.slots = append(a.slots, slot[T]{generation: 1})
	}

	s := &a.slots[idx]
	s.value = v
	s.live = true
	a.count++
	return Handle{Index: idx, Generation: s.generation}
}

// Get returns a pointer to the entity for h. The pointer is valid until the
// next Insert.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if int(h.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.Index]
	if !s.live || s.generation != h.Generation {
		return nil, false
	}
	return &s.value, true
}

// Remove frees the slot for h. Removing a stale handle is a no-op and
// returns false.
func (a *Arena[T]) Remove(h Handle) bool {
	if _, ok := a.Get(h); !ok {
		return false
	}
	s := &a.slots[h.Index]
	var zero T
	s.value = zero
	s.live = false
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	a.free = append(a.free, h.Index)
	a.count--
	return true
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.count
}

// All yields live entities in ascending slot order.
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.live {
				continue
			}
			if !yield(Handle{Index: uint32(i), Generation: s.generation}, &s.value) { //#nosec G115 -- entity counts are tiny
				return
			}
		}
	}
}

// Clear removes every entity. Handles issued before Clear stop resolving.
func (a *Arena[T]) Clear() {
	for i := range a.slots {
		if a.slots[i].live {
			a.Remove(Handle{Index: uint32(i), Generation: a.slots[i].generation}) //#nosec G115 -- entity counts are tiny
		}
	}
}
