/*
Package rbtree implements an ordered, self-balancing container for opaque
payloads.

The tree is a classic red-black tree: every node is colored red or black, no
red node has a red child, and every path from a node down to a leaf crosses
the same number of black nodes. Absent children and the parent of the root
are represented by a single shared sentinel node per tree, which is always
black. Ordering is established by a caller-supplied three-way comparator,
fixed at construction time.

On top of point operations (insert, delete, search, min/max,
successor/predecessor) the package offers

  - unbounded forward and reverse iteration,
  - bounded range iteration with independent inclusive/exclusive flags per
    bound and a direction,
  - materialized range slices and predicate filters,
  - a structural validator that classifies the first invariant violation it
    finds,
  - printers for in-order, structural and level-order dumps.

Trees are not synchronized. Callers must not mutate a tree while an iterator
over it is live, and must serialize concurrent access externally.

# BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gclib'
func tracer() tracing.Trace {
	return tracing.Select("gclib")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
