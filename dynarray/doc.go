/*
Package dynarray provides a small growable sequence.

It exists as the result-collection backend for tree filtering and slicing:
a single-pass alternative to count-then-fill materialization. The contract
is deliberately thin — append with amortized growth, positional access,
unordered removal — with no failure modes beyond growing when full.

# BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package dynarray

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
