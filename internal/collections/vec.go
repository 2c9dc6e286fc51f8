// internal/collections/vec.go
//
// Vec is a growable array of same-typed elements with amortized doubling.
// Responsibilities:
//   - Contiguous storage with an explicit length/capacity split.
//   - Ownership of every stored element: Drop/Clear run the descriptor's
//     destructor once per element before the storage is released or reused.
//   - Bulk insertion (PushAll) and explicit capacity hints (Reserve) for
//     callers that know their sizes up front (e.g. the record parser).
//
// Growth policy: when length+additional exceeds capacity, the new capacity is
// max(length+additional, capacity*2), floored at defaultCapacity.

package collections

// Vec is a contiguous, growable array over T. The zero value is not usable;
// construct with NewVec, VecWithCapacity, or VecFrom. A Vec has exactly one
// owner; it must not be mutated through aliased handles.
type Vec[T any] struct {
	length int
	buf    []T
	info   TypeInfo[T]
}

// NewVec returns an empty Vec with the default capacity.
func NewVec[T any](info TypeInfo[T]) *Vec[T] {
	return VecWithCapacity(info, defaultCapacity)
}

// VecWithCapacity returns an empty Vec whose buffer holds cap elements
// before the first growth.
func VecWithCapacity[T any](info TypeInfo[T], cap int) *Vec[T] {
	return &Vec[T]{
		buf:  make([]T, cap),
		info: info,
	}
}

// VecFrom builds a Vec from a batch of elements, taking ownership of them.
// The capacity is floored at the default so small batches don't reallocate
// on the next push.
func VecFrom[T any](info TypeInfo[T], elems []T) *Vec[T] {
	n := len(elems)
	buf := make([]T, max(n, defaultCapacity))
	copy(buf, elems)
	return &Vec[T]{
		length: n,
		buf:    buf,
		info:   info,
	}
}

// Clone returns a copy of the Vec with every element copied by value.
// The descriptor has no clone capability, so this is a raw copy — correct
// only for value-like elements that own nothing through pointers.
func (v *Vec[T]) Clone() *Vec[T] {
	if v == nil {
		return VecWithCapacity(TypeInfo[T]{}, 1)
	}
	buf := make([]T, len(v.buf))
	copy(buf, v.buf)
	return &Vec[T]{
		length: v.length,
		buf:    buf,
		info:   v.info,
	}
}

// Drop destroys the Vec: the descriptor's destructor runs on every owned
// element, then the buffer is released. The Vec must not be used afterwards.
func (v *Vec[T]) Drop() {
	if v == nil {
		return
	}
	if v.info.Drop != nil {
		for i := 0; i < v.length; i++ {
			v.info.drop(&v.buf[i])
		}
	}
	v.length = 0
	v.buf = nil
}

// Reserve grows the buffer so that at least additional more elements fit
// without reallocation. Existing elements keep their values verbatim.
func (v *Vec[T]) Reserve(additional int) {
	if v == nil || additional <= 0 {
		return
	}
	if v.length+additional > len(v.buf) {
		newCap := max(v.length+additional, len(v.buf)*2)
		newCap = max(newCap, defaultCapacity)
		buf := make([]T, newCap)
		copy(buf, v.buf[:v.length])
		v.buf = buf
	}
}

// Len returns the number of stored elements.
func (v *Vec[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// IsEmpty reports whether the Vec holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.Len() == 0
}

// At returns the element at index i. Indices outside [0, Len) return the
// zero value.
func (v *Vec[T]) At(i int) T {
	var zero T
	if v == nil || i < 0 || i >= v.length {
		return zero
	}
	return v.buf[i]
}

// Push appends an element, taking ownership of it.
func (v *Vec[T]) Push(elem T) {
	if v == nil {
		return
	}
	v.Reserve(1)
	v.buf[v.length] = elem
	v.length++
}

// PushAll appends a batch of elements, taking ownership of them.
func (v *Vec[T]) PushAll(elems []T) {
	if v == nil || elems == nil {
		return
	}
	v.Reserve(len(elems))
	copy(v.buf[v.length:], elems)
	v.length += len(elems)
}

// Clear destroys all elements but keeps the backing storage for reuse.
func (v *Vec[T]) Clear() {
	if v == nil {
		return
	}
	if v.info.Drop != nil {
		for i := 0; i < v.length; i++ {
			v.info.drop(&v.buf[i])
		}
	}
	var zero T
	for i := 0; i < v.length; i++ {
		v.buf[i] = zero
	}
	v.length = 0
}

// Contains reports whether an element comparing equal to elem is stored,
// by linear scan with the descriptor's Compare.
func (v *Vec[T]) Contains(elem T) bool {
	if v == nil || v.info.Compare == nil {
		return false
	}
	for i := 0; i < v.length; i++ {
		if v.info.Compare(v.buf[i], elem) == 0 {
			return true
		}
	}
	return false
}
