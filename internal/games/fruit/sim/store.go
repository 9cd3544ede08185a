package sim

import "time"

// Store is an insertion-ordered sequence of objects.
//
// Removal during a pass is two-phase: Mark flags an object and Compact drops
// every flagged object afterwards, so a pass never skips or revisits entries.
type Store struct {
	objs []*Object
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds o at the tail.
func (s *Store) Append(o *Object) {
	o.removed = false
	s.objs = append(s.objs, o)
}

// Len returns the number of objects, marked ones included.
func (s *Store) Len() int {
	return len(s.objs)
}

// Objects returns the stored objects in insertion order.
// The slice is only valid until the next Append, Compact or Sweep.
func (s *Store) Objects() []*Object {
	return s.objs
}

// At returns the i-th object.
func (s *Store) At(i int) *Object {
	return s.objs[i]
}

// Head returns the oldest object, or nil if the store is empty.
func (s *Store) Head() *Object {
	if len(s.objs) == 0 {
		return nil
	}
	return s.objs[0]
}

// Mark flags o for removal by the next Compact.
func (s *Store) Mark(o *Object) {
	o.removed = true
}

// Marked reports whether o is flagged for removal.
func (s *Store) Marked(o *Object) bool {
	return o.removed
}

// Compact drops marked objects, keeping the order of the rest.
// It returns the number of objects removed.
func (s *Store) Compact() int {
	kept := s.objs[:0]
	for _, o := range s.objs {
		if !o.removed {
			kept = append(kept, o)
		}
	}
	removed := len(s.objs) - len(kept)
	clear(s.objs[len(kept):])
	s.objs = kept
	return removed
}

// Update recomputes every live object at now.
func (s *Store) Update(now time.Duration) {
	for _, o := range s.objs {
		if o.Alive(now) {
			o.Update(now)
		}
	}
}

// Sweep removes every object with now > End and returns them in insertion order.
func (s *Store) Sweep(now time.Duration) []*Object {
	var expired []*Object
	for _, o := range s.objs {
		if o.Expired(now) {
			s.Mark(o)
			expired = append(expired, o)
		}
	}
	if len(expired) > 0 {
		s.Compact()
	}
	return expired
}

// Clear removes all objects.
func (s *Store) Clear() {
	clear(s.objs)
	s.objs = s.objs[:0]
}
