// internal/collections/treeset.go
//
// TreeSet is a red-black-tree-backed ordered set over T using the
// descriptor's Compare capability.
// Characteristics:
//   - Strict set semantics: inserting an element comparing equal to a stored
//     one is a no-op (unlike HashSet).
//   - In-order iteration via the stateless GetNext cursor yields elements in
//     strictly increasing Compare order.
//   - Standard red-black invariants: the root is black, a red node never has
//     a red child, and every root-to-leaf path carries the same number of
//     black nodes, bounding the height at O(log n).
//
// Parent links are non-owning back-references used only for rotation and the
// successor walk; destruction is strictly top-down through left/right.

package collections

type nodeColor uint8

const (
	red nodeColor = iota
	black
)

// treeNode is a single tree node. The tree exclusively owns the node and the
// element it stores.
type treeNode[T any] struct {
	data   T
	color  nodeColor
	parent *treeNode[T]
	left   *treeNode[T]
	right  *treeNode[T]
}

// TreeSet is a red-black-tree-backed sorted set over T. Construct with
// NewTreeSet or TreeSetFrom. A TreeSet has exactly one owner; it must not be
// mutated through aliased handles.
type TreeSet[T any] struct {
	length int
	root   *treeNode[T]
	info   TypeInfo[T]
}

// NewTreeSet returns an empty set. No allocation happens until the first
// insert.
func NewTreeSet[T any](info TypeInfo[T]) *TreeSet[T] {
	return &TreeSet[T]{info: info}
}

// TreeSetFrom builds a set from a batch of elements, taking ownership.
// Duplicates in the batch are discarded.
func TreeSetFrom[T any](info TypeInfo[T], elems []T) *TreeSet[T] {
	s := NewTreeSet(info)
	for _, e := range elems {
		s.Insert(e)
	}
	return s
}

// Clone returns a copy of the set built by re-inserting every element in
// order. Elements are copied by value.
func (s *TreeSet[T]) Clone() *TreeSet[T] {
	if s == nil {
		return NewTreeSet(TypeInfo[T]{})
	}
	clone := NewTreeSet(s.info)
	for elem := s.GetNext(nil); elem != nil; elem = s.GetNext(elem) {
		clone.Insert(*elem)
	}
	return clone
}

// dropSubtree destroys a subtree post-order: both children first, then the
// node's element, so nested owned data is released before its holder.
func (s *TreeSet[T]) dropSubtree(node *treeNode[T]) {
	if node == nil {
		return
	}
	s.dropSubtree(node.left)
	s.dropSubtree(node.right)
	s.info.drop(&node.data)
	node.parent = nil
	node.left = nil
	node.right = nil
}

// Drop destroys the set and every element it owns. The set must not be used
// afterwards.
func (s *TreeSet[T]) Drop() {
	if s == nil {
		return
	}
	s.dropSubtree(s.root)
	s.root = nil
	s.length = 0
}

// Len returns the number of stored elements.
func (s *TreeSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// IsEmpty reports whether the set holds no elements.
func (s *TreeSet[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Insert stores elem, taking ownership of it. If an element comparing equal
// is already stored, the tree is left unchanged.
func (s *TreeSet[T]) Insert(elem T) {
	if s == nil {
		return
	}

	if s.root == nil {
		// Empty tree: the root is always black.
		s.root = &treeNode[T]{data: elem, color: black}
		s.length++
		return
	}

	// Find the attachment point for the new node.
	cur := s.root
	var parent *treeNode[T]
	comparison := 0
	for cur != nil {
		parent = cur
		comparison = s.info.Compare(elem, cur.data)
		switch {
		case comparison < 0:
			cur = cur.left
		case comparison > 0:
			cur = cur.right
		default:
			// Element already exists: set semantics, no duplicates.
			return
		}
	}

	node := &treeNode[T]{data: elem, color: red, parent: parent}
	if comparison < 0 {
		parent.left = node
	} else {
		parent.right = node
	}
	s.insertFixup(node)
	s.length++
}

// Clear destroys all elements. Unlike Vec and HashSet there is no backing
// storage to keep: nodes are owned individually.
func (s *TreeSet[T]) Clear() {
	if s == nil {
		return
	}
	s.dropSubtree(s.root)
	s.root = nil
	s.length = 0
}

// getNode returns the node storing an element comparing equal to elem,
// or nil.
func (s *TreeSet[T]) getNode(elem T) *treeNode[T] {
	if s == nil {
		return nil
	}
	node := s.root
	for node != nil {
		comparison := s.info.Compare(elem, node.data)
		switch {
		case comparison < 0:
			node = node.left
		case comparison > 0:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Contains reports whether an element comparing equal to elem is stored.
func (s *TreeSet[T]) Contains(elem T) bool {
	return s.getNode(elem) != nil
}

// GetNext is a stateless iteration cursor in sorted order. Passing nil
// returns a pointer to the minimum element; passing a pointer previously
// returned by GetNext returns the in-order successor, or nil after the
// maximum. The cursor is invalidated by any mutation.
func (s *TreeSet[T]) GetNext(prev *T) *T {
	if s == nil || s.root == nil {
		return nil
	}

	if prev == nil {
		node := s.root
		for node.left != nil {
			node = node.left
		}
		return &node.data
	}

	node := s.getNode(*prev)
	if node == nil {
		return nil
	}

	if node.right != nil {
		// Successor is the leftmost node of the right subtree.
		node = node.right
		for node.left != nil {
			node = node.left
		}
		return &node.data
	}

	// Walk up until we arrive at a parent via a left-child edge. Reaching a
	// nil parent means prev was the maximum: iteration is over.
	parent := node.parent
	for parent != nil && node == parent.right {
		node = parent
		parent = parent.parent
	}
	if parent == nil {
		return nil
	}
	return &parent.data
}

/*
 * Fixup legend:
 *
 * G - grandparent
 * P - parent
 * U - uncle
 * C - current node
 * -{R/B} - red/black
 */

// insertFixup restores the red-black invariants after node has been inserted
// red. The loop runs while two reds are adjacent; each iteration either
// recolors and ascends (red uncle) or rotates and terminates.
func (s *TreeSet[T]) insertFixup(node *treeNode[T]) {
	for node != s.root && node.parent.color == red {
		grandparent := node.parent.parent

		if node.parent == grandparent.left {
			// Parent is the left subtree, uncle is the right. nil = black.
			uncle := grandparent.right
			if uncle != nil && uncle.color == red {
				node = fixRedUncle(node, uncle)
			} else {
				if node == node.parent.right {
					node = s.fixZigZag(node, true)
				}
				node = s.fixRotateChain(node, true)
			}
		} else {
			// Mirrored: parent is the right subtree, uncle is the left.
			uncle := grandparent.left
			if uncle != nil && uncle.color == red {
				node = fixRedUncle(node, uncle)
			} else {
				if node == node.parent.left {
					node = s.fixZigZag(node, false)
				}
				node = s.fixRotateChain(node, false)
			}
		}
	}

	// The root is always black; the walk may have recolored it red.
	s.root.color = black
}

// fixRedUncle handles a red uncle by recoloring:
//
//	    G-B              G-R
//	P-R     U-R  =>  P-B     U-B
//	C-R              C-R
//
// The grandparent turned red, so the fixup continues from it.
func fixRedUncle[T any](node, uncle *treeNode[T]) *treeNode[T] {
	node.parent.parent.color = red
	node.parent.color = black
	uncle.color = black
	return node.parent.parent
}

// fixZigZag straightens an inner-child ("zig-zag") shape by rotating at the
// parent, after which the old parent is treated as the inserted node:
//
//	    G-B              G-B
//	P-R      =>      C-R
//	    C-R      P-R
func (s *TreeSet[T]) fixZigZag(node *treeNode[T], parentIsLeft bool) *treeNode[T] {
	node = node.parent
	if parentIsLeft {
		s.rotateLeft(node)
	} else {
		s.rotateRight(node)
	}
	return node
}

// fixRotateChain finishes a straight-line chain by recoloring parent and
// grandparent and rotating at the grandparent, which terminates the loop:
//
//	        G-B          P-B
//	    P-R      =>  C-R     G-R
//	C-R
func (s *TreeSet[T]) fixRotateChain(node *treeNode[T], parentIsLeft bool) *treeNode[T] {
	node.parent.color = black
	node.parent.parent.color = red
	if parentIsLeft {
		s.rotateRight(node.parent.parent)
	} else {
		s.rotateLeft(node.parent.parent)
	}
	return node
}

// rotateLeft promotes node's right child:
//
//	    N                   R
//	L       R     =>    N       RR
//	     RL   RR      L   RL
func (s *TreeSet[T]) rotateLeft(node *treeNode[T]) {
	rightChild := node.right

	rightChild.parent = node.parent
	switch {
	case node.parent == nil:
		s.root = rightChild
	case node == node.parent.left:
		node.parent.left = rightChild
	default:
		node.parent.right = rightChild
	}

	node.right = rightChild.left
	if node.right != nil {
		node.right.parent = node
	}

	rightChild.left = node
	node.parent = rightChild
}

// rotateRight promotes node's left child:
//
//	       N               L
//	   L       R  =>  LL       N
//	LL   LR                 LR   R
func (s *TreeSet[T]) rotateRight(node *treeNode[T]) {
	leftChild := node.left

	leftChild.parent = node.parent
	switch {
	case node.parent == nil:
		s.root = leftChild
	case node == node.parent.left:
		node.parent.left = leftChild
	default:
		node.parent.right = leftChild
	}

	node.left = leftChild.right
	if node.left != nil {
		node.left.parent = node
	}

	leftChild.right = node
	node.parent = leftChild
}
