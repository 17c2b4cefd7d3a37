package fdon

// defaultDepthLimit is the recommended nesting ceiling from spec.md
// §4.2 ("a conservative depth limit (e.g., 256) is recommended").
const defaultDepthLimit = 256

// Arena is the allocation handle the parser uses for every composite
// node (arrays, objects, decoded-escape buffers) it builds. It is not a
// bump allocator: each allocation is an ordinary Go heap allocation,
// and the Arena only counts what was requested through it. The Arena
// does not own the tree's storage; a parsed tree stays valid after the
// Arena is dropped or Reset, and Go's garbage collector reclaims the
// storage once the tree itself is unreachable, with no per-node
// destructor walk.
//
// An Arena is not safe for concurrent use by multiple parses; create
// one Arena per Parse call (or reuse one sequentially via Reset).
type Arena struct {
	// Depth bounds container nesting. Zero means use defaultDepthLimit.
	Depth int

	bytesUsed int
	nodesUsed int
}

// NewArena returns an Arena with the default nesting depth limit.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) depthLimit() int {
	if a.Depth <= 0 {
		return defaultDepthLimit
	}
	return a.Depth
}

// Reset clears usage accounting so the Arena can back another Parse
// call. It does not reuse prior allocations: the backing storage of
// everything parsed before the reset becomes eligible for collection
// once the caller drops its own references to the old tree.
func (a *Arena) Reset() {
	a.bytesUsed = 0
	a.nodesUsed = 0
}

// allocBytes returns a fresh byte slice of length n for decoded-escape
// content, accounted against the arena's usage counters.
func (a *Arena) allocBytes(n int) []byte {
	a.bytesUsed += n
	return make([]byte, n)
}

// newArray returns an empty, arena-accounted slice with capacity
// hinted by the caller (typically an estimate of element count).
func (a *Arena) newArray(capHint int) []Value {
	a.nodesUsed += capHint
	return make([]Value, 0, capHint)
}

// appendArray appends v to arr, growing the backing array under the
// arena's accounting when capacity is exhausted.
func (a *Arena) appendArray(arr []Value, v Value) []Value {
	if len(arr) == cap(arr) {
		a.nodesUsed += max(4, cap(arr))
	}
	return append(arr, v)
}

// newObject returns an empty, arena-accounted object.
func (a *Arena) newObject() *object {
	a.nodesUsed++
	return newObject()
}
