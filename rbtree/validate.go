package rbtree

// Status classifies the outcome of a structural validation pass.
type Status int

// Validation outcomes. StatusOK means every red-black invariant holds.
const (
	StatusOK            Status = 0
	StatusBSTViolation  Status = 1  // BST ordering violated at some node
	StatusRedViolation  Status = 2  // red node with a red child
	StatusBlackHeight   Status = 3  // black-height mismatch between subtrees
	StatusInvalidTree   Status = -1 // nil or destroyed tree handle
	StatusSentinelColor Status = -2 // sentinel is not black
	StatusGeneric       Status = -4
)

// String returns the human-readable description of a status code.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "No error"
	case StatusBSTViolation:
		return "BST property violation"
	case StatusRedViolation:
		return "Red node has red child"
	case StatusBlackHeight:
		return "Black-height mismatch"
	case StatusInvalidTree:
		return "Invalid tree pointer"
	case StatusSentinelColor:
		return "Nil sentinel not black"
	case StatusGeneric:
		return "Generic failure"
	}
	return "Unknown error"
}

// Validate walks the whole tree and reports the first invariant violation
// found. The tree is never repaired; a non-OK status means the structure was
// corrupted from outside or exposes an algorithm bug.
//
// Per node the checks run in fixed order: red property first, then BST
// ordering against both children, then black-height agreement of the two
// subtrees. The sentinel's color is checked once, up front.
func (t *Tree[T]) Validate() Status {
	if t == nil || t.root == nil || t.sentinel == nil {
		return StatusInvalidTree
	}
	if t.sentinel.color != Black {
		return StatusSentinelColor
	}
	bh, status := t.validateNode(t.root)
	if bh < 0 && status == StatusOK {
		// Defensive: every negative black-height is expected to carry a status.
		return StatusGeneric
	}
	return status
}

// validateNode returns the black-height of the subtree rooted at node, or -1
// together with the violation found.
func (t *Tree[T]) validateNode(node *Node[T]) (int, Status) {
	if node == t.sentinel {
		return 1, StatusOK // black-height of the sentinel is 1
	}

	if node.color == Red {
		if node.left.color == Red || node.right.color == Red {
			return -1, StatusRedViolation
		}
	}

	if node.left != t.sentinel && t.cmp(node.left.payload, node.payload) >= 0 {
		return -1, StatusBSTViolation
	}
	if node.right != t.sentinel && t.cmp(node.right.payload, node.payload) <= 0 {
		return -1, StatusBSTViolation
	}

	leftBH, status := t.validateNode(node.left)
	if leftBH < 0 {
		return -1, status
	}
	rightBH, status := t.validateNode(node.right)
	if rightBH < 0 {
		return -1, status
	}

	if leftBH != rightBH {
		return -1, StatusBlackHeight
	}

	if node.color == Black {
		return leftBH + 1, StatusOK
	}
	return leftBH, StatusOK
}
