// internal/collections/typeinfo.go
//
// Capability descriptor shared by every container in this package.
// A TypeInfo describes the optional behaviors of an element type:
//   - Drop:    releases resources owned by an element (run once per owned
//              element when a container is dropped or cleared).
//   - Compare: total order; negative/zero/positive like strings.Compare.
//   - Hash:    maps an element to an unsigned integer.
//
// Containers copy the descriptor by value at construction and never own it
// beyond that. Which capabilities are required depends on the container:
// TreeSet needs Compare, HashSet needs Hash and Compare, Vec needs Compare
// only for Contains. A nil capability a container never calls is fine.

package collections

// defaultCapacity is the floor for every buffer-backed container's growth,
// avoiding repeated reallocation for small collections.
const defaultCapacity = 16

// TypeInfo bundles the optional element capabilities a container needs.
// The zero value describes a trivially-releasable, unordered, unhashable type.
type TypeInfo[T any] struct {
	// Drop releases resources owned by the element. Containers invoke it
	// exactly once per owned element on Drop and Clear. Nil means the
	// element owns nothing beyond its bytes.
	Drop func(*T)

	// Compare returns a negative, zero, or positive value for a<b, a==b,
	// a>b. Required by TreeSet and by HashSet/Vec Contains.
	Compare func(a, b T) int

	// Hash maps an element to an unsigned integer. Required by HashSet.
	Hash func(T) uint32
}

// drop runs the descriptor's destructor on elem, if any.
func (ti *TypeInfo[T]) drop(elem *T) {
	if ti.Drop != nil {
		ti.Drop(elem)
	}
}

// StringInfo returns the descriptor for plain strings: lexicographic order
// and the djb2 polynomial hash. Strings own no resources in Go, so there is
// no destructor. This is the only descriptor the surrounding program needs —
// every container it builds stores words or usernames.
func StringInfo() TypeInfo[string] {
	return TypeInfo[string]{
		Compare: func(a, b string) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		},
		Hash: HashString,
	}
}

// HashString is the djb2 string hash: h = h*33 + c, seeded with 5381.
func HashString(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint32(s[i])
	}
	return h
}
