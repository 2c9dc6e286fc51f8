package collections

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iterate drains the sorted cursor into a slice.
func iterate[T any](s *TreeSet[T]) []T {
	var out []T
	for elem := s.GetNext(nil); elem != nil; elem = s.GetNext(elem) {
		out = append(out, *elem)
	}
	return out
}

// checkRedBlack verifies the structural invariants: black root, no red node
// with a red child, and equal black counts on every root-to-nil path.
// Returns the black height of the subtree.
func checkRedBlack[T any](t *testing.T, node *treeNode[T]) int {
	t.Helper()
	if node == nil {
		return 1
	}
	if node.color == red {
		if node.left != nil {
			assert.Equal(t, black, node.left.color, "red node has red left child")
		}
		if node.right != nil {
			assert.Equal(t, black, node.right.color, "red node has red right child")
		}
	}
	if node.left != nil {
		assert.Same(t, node, node.left.parent, "broken parent link")
	}
	if node.right != nil {
		assert.Same(t, node, node.right.parent, "broken parent link")
	}
	leftHeight := checkRedBlack(t, node.left)
	rightHeight := checkRedBlack(t, node.right)
	require.Equal(t, leftHeight, rightHeight, "unequal black heights")
	if node.color == black {
		return leftHeight + 1
	}
	return leftHeight
}

func requireRedBlack[T any](t *testing.T, s *TreeSet[T]) {
	t.Helper()
	if s.root == nil {
		return
	}
	require.Equal(t, black, s.root.color, "root must be black")
	require.Nil(t, s.root.parent)
	checkRedBlack(t, s.root)
}

func TestTreeSetInsertAndContains(t *testing.T) {
	s := NewTreeSet(StringInfo())

	assert.True(t, s.IsEmpty())
	s.Insert("crate")
	s.Insert("ben")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("crate"))
	assert.True(t, s.Contains("ben"))
	assert.False(t, s.Contains("funny"))

	s.Insert("funny")
	assert.True(t, s.Contains("crate"))
	assert.True(t, s.Contains("ben"))
}

func TestTreeSetDeduplicates(t *testing.T) {
	s := NewTreeSet(StringInfo())
	s.Insert("crate")
	s.Insert("crate")

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"crate"}, iterate(s))
}

func TestTreeSetSortedIteration(t *testing.T) {
	s := NewTreeSet(StringInfo())
	for _, w := range []string{"pours", "crate", "funny", "ben"} {
		s.Insert(w)
	}

	assert.Equal(t, []string{"ben", "crate", "funny", "pours"}, iterate(s))
}

func TestTreeSetEmptyIteration(t *testing.T) {
	s := NewTreeSet(StringInfo())
	assert.Nil(t, s.GetNext(nil))
}

func TestTreeSetSuccessorOfMaximum(t *testing.T) {
	// The walk-up from the maximum reaches the root without crossing a left
	// edge; the cursor must return nil rather than dereference a nil parent.
	s := TreeSetFrom(StringInfo(), []string{"b", "a", "c"})

	cur := s.GetNext(nil)
	cur = s.GetNext(cur) // b
	cur = s.GetNext(cur) // c
	require.NotNil(t, cur)
	assert.Equal(t, "c", *cur)
	assert.Nil(t, s.GetNext(cur))
}

func TestTreeSetSuccessorOfUnknownElement(t *testing.T) {
	s := TreeSetFrom(StringInfo(), []string{"a", "b"})
	unknown := "zzz"
	assert.Nil(t, s.GetNext(&unknown))
}

func TestTreeSetInvariantsAscendingInsert(t *testing.T) {
	// Ascending insertion is the classic degenerate case for a plain BST;
	// the fixup must keep the tree balanced.
	s := NewTreeSet(StringInfo())
	for i := 0; i < 64; i++ {
		s.Insert(fmt.Sprintf("w%03d", i))
		requireRedBlack(t, s)
	}
	assert.Equal(t, 64, s.Len())
}

func TestTreeSetInvariantsRandomInsert(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))
	s := NewTreeSet(StringInfo())
	inserted := map[string]bool{}
	for i := 0; i < 256; i++ {
		w := fmt.Sprintf("w%03d", rng.Intn(128))
		s.Insert(w)
		inserted[w] = true
		requireRedBlack(t, s)
	}

	assert.Equal(t, len(inserted), s.Len())
	got := iterate(s)
	require.Len(t, got, len(inserted))
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i], "iteration not strictly increasing")
	}
}

func TestTreeSetDropRunsDestructorPerElement(t *testing.T) {
	dropped := 0
	info := StringInfo()
	info.Drop = func(*string) { dropped++ }

	s := NewTreeSet(info)
	s.Insert("a")
	s.Insert("b")
	s.Insert("b") // duplicate discarded, owns nothing
	s.Insert("c")
	s.Drop()

	assert.Equal(t, 3, dropped)
	assert.Equal(t, 0, s.Len())
}

func TestTreeSetClear(t *testing.T) {
	s := TreeSetFrom(StringInfo(), []string{"a", "b", "c"})
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.GetNext(nil))

	s.Insert("d")
	assert.Equal(t, []string{"d"}, iterate(s))
}

func TestTreeSetClone(t *testing.T) {
	s := TreeSetFrom(StringInfo(), []string{"b", "a", "c"})
	c := s.Clone()
	s.Insert("d")

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"a", "b", "c"}, iterate(c))
	requireRedBlack(t, c)
}

func TestTreeSetNilReceiverIsSafe(t *testing.T) {
	var s *TreeSet[string]

	s.Insert("a")
	s.Clear()
	s.Drop()

	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains("a"))
	assert.Nil(t, s.GetNext(nil))
	assert.NotNil(t, s.Clone())
}
