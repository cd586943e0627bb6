package rbtree

// Color is the rebalancing color of a tree node.
type Color int8

// Node colors. The sentinel is always Black.
const (
	Red Color = iota
	Black
)

// CompareFunc establishes a strict total order over payloads. It returns a
// negative value if a orders before b, zero if they compare equal, and a
// positive value if a orders after b.
//
// The comparator must stay total and consistent for the lifetime of the
// tree; there is no way to exchange it after construction.
type CompareFunc[T any] func(a, b T) int

// DisposeFunc releases a payload. It is only ever invoked when explicitly
// passed to Delete, Clear or Destroy, and then exactly once per payload.
type DisposeFunc[T any] func(payload T)

// Predicate decides whether a payload belongs to a filter result. ctx is the
// caller-supplied context passed through Filter and FilterAppend unchanged.
type Predicate[T any] func(payload T, ctx any) bool

// Node is a single element of a tree. Nodes are created by Insert and stay
// owned by their tree; callers hold them only to address Delete, Successor
// and Predecessor calls.
type Node[T any] struct {
	payload T
	color   Color
	left    *Node[T]
	right   *Node[T]
	parent  *Node[T]
}

// Payload returns the payload stored in n, or the zero value for a nil node.
func (n *Node[T]) Payload() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.payload
}

// Tree is an ordered index over payloads of type T.
//
// A tree must be created with New; the zero value is not usable. All absent
// links inside the tree point to a single shared sentinel node, never to nil.
type Tree[T any] struct {
	root     *Node[T]
	sentinel *Node[T]
	cmp      CompareFunc[T]
}

// New creates an empty tree ordered by cmp.
func New[T any](cmp CompareFunc[T]) *Tree[T] {
	assert(cmp != nil, "rbtree.New requires a comparator")
	s := &Node[T]{color: Black}
	s.left, s.right, s.parent = s, s, s
	return &Tree[T]{root: s, sentinel: s, cmp: cmp}
}

func (t *Tree[T]) allocNode(payload T) *Node[T] {
	return &Node[T]{
		payload: payload,
		color:   Red,
		left:    t.sentinel,
		right:   t.sentinel,
		parent:  t.sentinel,
	}
}

// alive reports whether t is a usable tree handle. A destroyed tree is not.
func (t *Tree[T]) alive() bool {
	return t != nil && t.sentinel != nil
}

// IsEmpty reports whether the tree holds no payloads.
func (t *Tree[T]) IsEmpty() bool {
	return !t.alive() || t.root == t.sentinel
}

// ---------------------- Rotations ----------------------

func (t *Tree[T]) leftRotate(x *Node[T]) {
	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[T]) rightRotate(y *Node[T]) {
	x := y.left
	y.left = x.right
	if x.right != t.sentinel {
		x.right.parent = y
	}
	x.parent = y.parent
	switch {
	case y.parent == t.sentinel:
		t.root = x
	case y == y.parent.right:
		y.parent.right = x
	default:
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

// ---------------------- Insertion ----------------------

// Insert adds a payload to the tree.
//
// Payloads comparing equal to an existing one are kept as distinct nodes;
// the descent places ties into the right subtree. The comparator must define
// a strict total order over all payloads ever inserted.
func (t *Tree[T]) Insert(payload T) {
	if !t.alive() {
		return
	}
	z := t.allocNode(payload)
	y := t.sentinel
	x := t.root
	for x != t.sentinel {
		y = x
		if t.cmp(z.payload, x.payload) < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	z.parent = y
	switch {
	case y == t.sentinel:
		t.root = z
	case t.cmp(z.payload, y.payload) < 0:
		y.left = z
	default:
		y.right = z
	}
	t.insertFixup(z)
}

// insertFixup restores the red-black invariants after z was linked in as a
// red leaf. Terminates by forcing the root black.
func (t *Tree[T]) insertFixup(k *Node[T]) {
	for k.parent.color == Red {
		if k.parent == k.parent.parent.left {
			uncle := k.parent.parent.right
			if uncle.color == Red {
				k.parent.color = Black
				uncle.color = Black
				k.parent.parent.color = Red
				k = k.parent.parent
			} else {
				if k == k.parent.right {
					k = k.parent
					t.leftRotate(k)
				}
				k.parent.color = Black
				k.parent.parent.color = Red
				t.rightRotate(k.parent.parent)
			}
		} else {
			uncle := k.parent.parent.left
			if uncle.color == Red {
				k.parent.color = Black
				uncle.color = Black
				k.parent.parent.color = Red
				k = k.parent.parent
			} else {
				if k == k.parent.left {
					k = k.parent
					t.rightRotate(k)
				}
				k.parent.color = Black
				k.parent.parent.color = Red
				t.leftRotate(k.parent.parent)
			}
		}
	}
	t.root.color = Black
}

// ---------------------- Search ----------------------

// Search locates a node whose payload compares equal to payload. It returns
// nil when no such node exists. With duplicate payloads, which of the
// equal-comparing nodes is returned is unspecified.
func (t *Tree[T]) Search(payload T) *Node[T] {
	if !t.alive() {
		return nil
	}
	x := t.root
	for x != t.sentinel {
		cmp := t.cmp(payload, x.payload)
		if cmp == 0 {
			return x
		}
		if cmp < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

// Find returns a payload comparing equal to key, and whether one exists.
func (t *Tree[T]) Find(key T) (T, bool) {
	if node := t.Search(key); node != nil {
		return node.payload, true
	}
	var zero T
	return zero, false
}

// ---------------------- Deletion ----------------------

// transplant replaces the subtree rooted at node with the subtree rooted at v.
func (t *Tree[T]) transplant(node, v *Node[T]) {
	switch {
	case node.parent == t.sentinel:
		t.root = v
	case node == node.parent.left:
		node.parent.left = v
	default:
		node.parent.right = v
	}
	v.parent = node.parent
}

func (t *Tree[T]) minimum(node *Node[T]) *Node[T] {
	for node.left != t.sentinel {
		node = node.left
	}
	return node
}

func (t *Tree[T]) maximum(node *Node[T]) *Node[T] {
	for node.right != t.sentinel {
		node = node.right
	}
	return node
}

// Delete removes a node previously obtained from this tree.
//
// Passing nil (the Search result for an absent payload) is a no-op. Passing
// a node belonging to a different tree is undefined and must be prevented by
// the caller. dispose, if non-nil, runs exactly once on the removed payload.
func (t *Tree[T]) Delete(node *Node[T], dispose DisposeFunc[T]) {
	if !t.alive() || node == nil || node == t.sentinel {
		return
	}
	y := node
	yOriginalColor := y.color
	var x *Node[T]

	switch {
	case node.left == t.sentinel:
		x = node.right
		t.transplant(node, node.right)
	case node.right == t.sentinel:
		x = node.left
		t.transplant(node, node.left)
	default:
		y = t.minimum(node.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == node {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = node.right
			y.right.parent = y
		}
		t.transplant(node, y)
		y.left = node.left
		y.left.parent = y
		y.color = node.color
	}

	if yOriginalColor == Black {
		t.deleteFixup(x)
	}

	if dispose != nil {
		dispose(node.payload)
	}
	node.left, node.right, node.parent = nil, nil, nil
}

// deleteFixup rebalances after a black node was removed, starting at the
// node that physically replaced it.
func (t *Tree[T]) deleteFixup(x *Node[T]) {
	for x != t.root && x.color == Black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == Black && w.right.color == Black {
				w.color = Red
				x = x.parent
			} else {
				if w.right.color == Black {
					w.left.color = Black
					w.color = Red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = Black
				w.right.color = Black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == Black && w.left.color == Black {
				w.color = Red
				x = x.parent
			} else {
				if w.left.color == Black {
					w.right.color = Black
					w.color = Red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = Black
				w.left.color = Black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = Black
}

// ---------------------- Neighbors ----------------------

// Min returns the node holding the smallest payload, or nil on an empty tree.
func (t *Tree[T]) Min() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return t.minimum(t.root)
}

// Max returns the node holding the largest payload, or nil on an empty tree.
func (t *Tree[T]) Max() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return t.maximum(t.root)
}

// Successor returns the in-order neighbor following node, or nil at the
// upper end of the order.
func (t *Tree[T]) Successor(node *Node[T]) *Node[T] {
	if !t.alive() || node == nil || node == t.sentinel {
		return nil
	}
	if node.right != t.sentinel {
		return t.minimum(node.right)
	}
	y := node.parent
	for y != t.sentinel && node == y.right {
		node = y
		y = y.parent
	}
	if y != t.sentinel {
		return y
	}
	return nil
}

// Predecessor returns the in-order neighbor preceding node, or nil at the
// lower end of the order.
func (t *Tree[T]) Predecessor(node *Node[T]) *Node[T] {
	if !t.alive() || node == nil || node == t.sentinel {
		return nil
	}
	if node.left != t.sentinel {
		return t.maximum(node.left)
	}
	y := node.parent
	for y != t.sentinel && node == y.left {
		node = y
		y = y.parent
	}
	if y != t.sentinel {
		return y
	}
	return nil
}

// ---------------------- Teardown ----------------------

func (t *Tree[T]) freeNodes(node *Node[T], dispose DisposeFunc[T]) {
	if node == t.sentinel {
		return
	}
	t.freeNodes(node.left, dispose)
	t.freeNodes(node.right, dispose)
	if dispose != nil {
		dispose(node.payload)
	}
	node.left, node.right, node.parent = nil, nil, nil
}

// Clear detaches every node, leaving an empty tree ready for reuse.
// dispose, if non-nil, is called once per payload.
func (t *Tree[T]) Clear(dispose DisposeFunc[T]) {
	if !t.alive() || t.root == t.sentinel {
		return
	}
	t.freeNodes(t.root, dispose)
	t.root = t.sentinel
	tracer().Debugf("rbtree: cleared all nodes")
}

// Destroy clears the tree and severs the handle. A destroyed tree behaves
// like an absent tree: every operation degrades to its empty result. Safe to
// call on a nil or already-destroyed tree.
func (t *Tree[T]) Destroy(dispose DisposeFunc[T]) {
	if t == nil {
		return
	}
	t.Clear(dispose)
	t.root = nil
	t.sentinel = nil
	t.cmp = nil
}
