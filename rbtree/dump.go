package rbtree

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// FormatFunc renders a payload for printing.
type FormatFunc[T any] func(payload T) string

var redTag = color.New(color.FgRed)

// colorTag returns the node's color tag, colorized when paint is set.
func colorTag[T any](node *Node[T], paint bool) string {
	if node.color == Red {
		if paint {
			return redTag.Sprint("R")
		}
		return "R"
	}
	return "B"
}

// paintFor reports whether color escape sequences are appropriate for w.
// Only interactive terminals are painted; files and buffers stay plain.
func paintFor(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// InorderPrint writes the payloads of the subtree rooted at node to w, one
// per line, in comparator order. node may be t.Root() or any node obtained
// from this tree.
func (t *Tree[T]) InorderPrint(w io.Writer, node *Node[T], format FormatFunc[T]) {
	if !t.alive() || node == nil || node == t.sentinel || format == nil {
		return
	}
	if node.left != t.sentinel {
		t.InorderPrint(w, node.left, format)
	}
	fmt.Fprintln(w, format(node.payload))
	if node.right != t.sentinel {
		t.InorderPrint(w, node.right, format)
	}
}

// Root returns the root node, or nil on an empty tree. Intended for
// diagnostics like InorderPrint; callers must not relink nodes.
func (t *Tree[T]) Root() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return t.root
}

// PrintStructure writes an ASCII rendering of the tree shape to w, with
// guide lines and a color tag per node. Red tags are colorized when w is an
// interactive terminal.
func (t *Tree[T]) PrintStructure(w io.Writer, format FormatFunc[T]) {
	if !t.alive() || t.root == t.sentinel {
		fmt.Fprintln(w, "<empty tree>")
		return
	}
	t.printStructure(w, t.root, "", false, format, paintFor(w))
}

func (t *Tree[T]) printStructure(w io.Writer, node *Node[T], prefix string, isLeft bool,
	format FormatFunc[T], paint bool) {
	if node == t.sentinel {
		return
	}
	guide, indent := "└── ", "    "
	if isLeft {
		guide, indent = "├── ", "│   "
	}
	fmt.Fprintf(w, "%s%s%s (%s)\n", prefix, guide, format(node.payload), colorTag(node, paint))
	t.printStructure(w, node.left, prefix+indent, true, format, paint)
	t.printStructure(w, node.right, prefix+indent, false, format, paint)
}

// PrintLevelOrder writes the payloads level by level (BFS) to w, each with
// its color tag, all on one line.
func (t *Tree[T]) PrintLevelOrder(w io.Writer, format FormatFunc[T]) {
	if !t.alive() || t.root == t.sentinel {
		fmt.Fprintln(w, "<empty tree>")
		return
	}
	paint := paintFor(w)
	queue := []*Node[T]{t.root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == t.sentinel {
			continue
		}
		fmt.Fprintf(w, "%s (%s)  ", format(node.payload), colorTag(node, paint))
		queue = append(queue, node.left, node.right)
	}
	fmt.Fprintln(w)
}
