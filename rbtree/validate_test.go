package rbtree

import "testing"

func TestValidateNilTree(t *testing.T) {
	var tree *Tree[int]
	if got := tree.Validate(); got != StatusInvalidTree {
		t.Errorf("Validate on nil tree = %v, want %v", got, StatusInvalidTree)
	}
}

func TestValidateSentinelColor(t *testing.T) {
	tree := intTree(1, 2, 3)
	tree.sentinel.color = Red
	if got := tree.Validate(); got != StatusSentinelColor {
		t.Errorf("Validate = %v, want %v", got, StatusSentinelColor)
	}
}

func TestValidateRedViolation(t *testing.T) {
	// After inserting 1,2,3 the root is black with two red children.
	tree := intTree(1, 2, 3)
	tree.root.color = Red
	if got := tree.Validate(); got != StatusRedViolation {
		t.Errorf("Validate = %v, want %v", got, StatusRedViolation)
	}
}

func TestValidateBSTViolation(t *testing.T) {
	tree := intTree(1, 2, 3)
	tree.root.left.payload = 99
	if got := tree.Validate(); got != StatusBSTViolation {
		t.Errorf("Validate = %v, want %v", got, StatusBSTViolation)
	}
}

func TestValidateBlackHeightMismatch(t *testing.T) {
	tree := intTree(1, 2, 3)
	tree.root.left.color = Black
	if got := tree.Validate(); got != StatusBlackHeight {
		t.Errorf("Validate = %v, want %v", got, StatusBlackHeight)
	}
}

func TestValidateRedTakesPriorityOverBST(t *testing.T) {
	// Both a red-red pair and a BST violation at the root: the red check
	// runs first per node.
	tree := intTree(1, 2, 3)
	tree.root.color = Red
	tree.root.left.payload = 99
	if got := tree.Validate(); got != StatusRedViolation {
		t.Errorf("Validate = %v, want %v", got, StatusRedViolation)
	}
}

func TestStatusStrings(t *testing.T) {
	cases := map[Status]string{
		StatusOK:            "No error",
		StatusBSTViolation:  "BST property violation",
		StatusRedViolation:  "Red node has red child",
		StatusBlackHeight:   "Black-height mismatch",
		StatusInvalidTree:   "Invalid tree pointer",
		StatusSentinelColor: "Nil sentinel not black",
		StatusGeneric:       "Generic failure",
		Status(77):          "Unknown error",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
