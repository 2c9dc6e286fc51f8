// internal/collections/hashset.go
//
// HashSet is an open-addressing set over T using the descriptor's Hash and
// Compare capabilities.
// Characteristics:
//   - Linear probing: an element lives in the first free slot at or after
//     hash(e) mod capacity, wrapping at the end of the buffer. No empty slot
//     ever appears between an element's home slot and its actual slot.
//   - Per-slot occupancy flags. There is no "deleted" state: the set supports
//     insert, lookup, clear, and full iteration, never single-element removal.
//   - Full rehash on growth: every occupied element is re-placed into the new
//     buffer, so the insert that crosses the capacity threshold pays O(n).
//   - Insert is UNCONDITIONAL: it does not check for an equal element first,
//     so a logical duplicate is stored twice. Contains reports true for
//     either copy, but Len and iteration expose both entries. Callers that
//     need strict set semantics must call Contains before Insert.
//
// Iteration via GetNext walks physical slot order, which is unstable across
// any insertion that triggers a rehash.

package collections

// HashSet is an open-addressing, linear-probing set over T. Construct with
// NewHashSet, HashSetWithCapacity, or HashSetFrom. A HashSet has exactly one
// owner; it must not be mutated through aliased handles.
type HashSet[T any] struct {
	length   int
	buf      []T
	occupied []bool
	info     TypeInfo[T]
}

// NewHashSet returns an empty set with the default capacity.
func NewHashSet[T any](info TypeInfo[T]) *HashSet[T] {
	return HashSetWithCapacity(info, defaultCapacity)
}

// HashSetWithCapacity returns an empty set with room for cap elements
// before the first rehash.
func HashSetWithCapacity[T any](info TypeInfo[T], cap int) *HashSet[T] {
	return &HashSet[T]{
		buf:      make([]T, cap),
		occupied: make([]bool, cap),
		info:     info,
	}
}

// HashSetFrom builds a set from a batch of elements, taking ownership.
// Duplicates in the batch are stored twice (see Insert).
func HashSetFrom[T any](info TypeInfo[T], elems []T) *HashSet[T] {
	s := HashSetWithCapacity(info, max(len(elems), defaultCapacity))
	for _, e := range elems {
		s.place(e)
		s.length++
	}
	return s
}

// Clone returns a copy of the set with every element copied by value.
// Slot layout is preserved, so existing cursors translate positionally.
func (s *HashSet[T]) Clone() *HashSet[T] {
	if s == nil {
		return HashSetWithCapacity(TypeInfo[T]{}, 1)
	}
	buf := make([]T, len(s.buf))
	copy(buf, s.buf)
	occupied := make([]bool, len(s.occupied))
	copy(occupied, s.occupied)
	return &HashSet[T]{
		length:   s.length,
		buf:      buf,
		occupied: occupied,
		info:     s.info,
	}
}

// Drop destroys the set: the descriptor's destructor runs once per occupied
// slot, then the buffers are released. The set must not be used afterwards.
func (s *HashSet[T]) Drop() {
	if s == nil {
		return
	}
	if s.info.Drop != nil {
		for i := range s.buf {
			if s.occupied[i] {
				s.info.drop(&s.buf[i])
			}
		}
	}
	s.length = 0
	s.buf = nil
	s.occupied = nil
}

// place copies elem into the first free slot of its probe run.
// The caller is responsible for updating length.
func (s *HashSet[T]) place(elem T) {
	i := int(s.info.Hash(elem)) % len(s.buf)
	if i < 0 {
		i += len(s.buf)
	}
	for s.occupied[i] {
		i++
		i %= len(s.buf)
	}
	s.buf[i] = elem
	s.occupied[i] = true
}

// Reserve grows and rehashes the set so that at least additional more
// elements fit. Every occupied element is re-placed by the same probing
// rule, so iteration order changes.
func (s *HashSet[T]) Reserve(additional int) {
	if s == nil || additional <= 0 {
		return
	}
	if s.length+additional <= len(s.buf) {
		return
	}
	oldBuf, oldOcc := s.buf, s.occupied
	newCap := max(s.length+additional, len(s.buf)*2)
	newCap = max(newCap, defaultCapacity)
	s.buf = make([]T, newCap)
	s.occupied = make([]bool, newCap)
	for i := range oldBuf {
		if oldOcc[i] {
			s.place(oldBuf[i])
		}
	}
}

// Len returns the number of stored elements, counting duplicates.
func (s *HashSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// IsEmpty reports whether the set holds no elements.
func (s *HashSet[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Insert stores elem, taking ownership of it. The insert is unconditional:
// no equality check is made against existing elements, so inserting a value
// already in the set stores it a second time and Len grows by one. Callers
// needing strict set semantics must check Contains first.
func (s *HashSet[T]) Insert(elem T) {
	if s == nil {
		return
	}
	s.Reserve(1)
	s.place(elem)
	s.length++
}

// Clear destroys all elements but keeps the backing storage for reuse.
func (s *HashSet[T]) Clear() {
	if s == nil {
		return
	}
	if s.info.Drop != nil {
		for i := range s.buf {
			if s.occupied[i] {
				s.info.drop(&s.buf[i])
			}
		}
	}
	var zero T
	for i := range s.buf {
		s.buf[i] = zero
		s.occupied[i] = false
	}
	s.length = 0
}

// Contains reports whether an element comparing equal to elem is stored.
// The probe stops at the first empty slot: the probing invariant guarantees
// no element of this home run lives beyond it.
func (s *HashSet[T]) Contains(elem T) bool {
	if s == nil || s.length == 0 {
		return false
	}
	i := int(s.info.Hash(elem)) % len(s.buf)
	if i < 0 {
		i += len(s.buf)
	}
	// Bound the probe to one full pass so a completely full table (possible
	// via HashSetFrom with a large batch) cannot loop forever.
	for probed := 0; s.occupied[i] && probed < len(s.buf); probed++ {
		if s.info.Compare(s.buf[i], elem) == 0 {
			return true
		}
		i++
		i %= len(s.buf)
	}
	return false
}

// GetNext is a stateless iteration cursor over physical slot order.
// Passing nil returns a pointer to the first occupied slot; passing a
// pointer previously returned by GetNext returns the next occupied slot
// after it, or nil when the set is exhausted. The cursor is invalidated by
// any insertion that triggers a rehash.
func (s *HashSet[T]) GetNext(prev *T) *T {
	if s == nil {
		return nil
	}
	start := 0
	if prev != nil {
		idx := -1
		for i := range s.buf {
			if &s.buf[i] == prev {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}
		start = idx + 1
	}
	for i := start; i < len(s.buf); i++ {
		if s.occupied[i] {
			return &s.buf[i]
		}
	}
	return nil
}
