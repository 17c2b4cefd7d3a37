package fdon

import "github.com/cespare/xxhash/v2"

// object is an open-addressing hash table over object keys (themselves
// borrowed substrings of the input buffer), grounded on spec.md §9's
// call for "a small hash map over short byte-slice keys; a fast
// non-cryptographic hasher with good avalanche." Go's built-in map
// would work too (slicing a string key never copies), but it hashes
// with a per-process-randomized algorithm tuned against hash-flooding
// rather than throughput; xxhash.Sum64String is the deterministic,
// high-avalanche hasher spec.md §9 asks for when flood resistance
// isn't a concern.
//
// Insertion order is not preserved (spec.md §3: "insertion order is
// not required to be preserved"). Duplicate keys overwrite the
// existing binding (last-wins, spec.md §3 invariant 2 and §8).
type object struct {
	keys  []string
	vals  []Value
	occ   []bool
	count int
}

const initialObjectCap = 8

func newObject() *object {
	return &object{
		keys: make([]string, initialObjectCap),
		vals: make([]Value, initialObjectCap),
		occ:  make([]bool, initialObjectCap),
	}
}

// set inserts key/val, overwriting any existing binding for an equal
// key (last-wins).
func (o *object) set(key string, val Value) {
	if o.count*4 >= len(o.occ)*3 { // load factor >= 0.75
		o.grow()
	}
	o.insert(key, val)
}

func (o *object) insert(key string, val Value) {
	mask := uint64(len(o.occ) - 1)
	i := xxhash.Sum64String(key) & mask
	for {
		if !o.occ[i] {
			o.occ[i] = true
			o.keys[i] = key
			o.vals[i] = val
			o.count++
			return
		}
		if o.keys[i] == key {
			o.vals[i] = val
			return
		}
		i = (i + 1) & mask
	}
}

func (o *object) grow() {
	oldKeys, oldVals, oldOcc := o.keys, o.vals, o.occ
	newCap := len(oldOcc) * 2
	o.keys = make([]string, newCap)
	o.vals = make([]Value, newCap)
	o.occ = make([]bool, newCap)
	o.count = 0
	for i, occupied := range oldOcc {
		if occupied {
			o.insert(oldKeys[i], oldVals[i])
		}
	}
}

// get looks up key, reporting whether a binding exists.
func (o *object) get(key string) (Value, bool) {
	if len(o.occ) == 0 {
		return Value{}, false
	}
	mask := uint64(len(o.occ) - 1)
	i := xxhash.Sum64String(key) & mask
	for probes := 0; probes < len(o.occ); probes++ {
		if !o.occ[i] {
			return Value{}, false
		}
		if o.keys[i] == key {
			return o.vals[i], true
		}
		i = (i + 1) & mask
	}
	return Value{}, false
}

// Len reports the number of keys bound in the object.
func (o *object) Len() int {
	return o.count
}

// Range calls f for every key/value binding, in unspecified order. It
// stops early if f returns false.
func (o *object) Range(f func(key string, val Value) bool) {
	for i, occupied := range o.occ {
		if occupied {
			if !f(o.keys[i], o.vals[i]) {
				return
			}
		}
	}
}
