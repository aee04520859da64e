package glint

// Record is a persistent radix trie mapping bitstring labels (Symbols) to
// Values. Each node of the trie consumes one bit of the key; a value is
// stored at the node reached after consuming exactly len(key) bits. Put and
// Del copy only the O(depth) nodes on the path to the affected key, sharing
// every other node with the original Record — the structural sharing note 9
// of the spec asks for.
type Record struct {
	has        bool
	value      Value
	zero, one  *Record
	count      int
}

var emptyRecord = &Record{}

// Len returns the number of entries in r.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return r.count
}

// Get looks up key, returning its value and true if present.
func (r *Record) Get(key Bits) (Value, bool) {
	n := r
	for i := 0; i < key.Len; i++ {
		if n == nil {
			return Value{}, false
		}
		if key.Bit(i) {
			n = n.one
		} else {
			n = n.zero
		}
	}
	if n == nil || !n.has {
		return Value{}, false
	}
	return n.value, true
}

// Put returns a new Record with key bound to v, leaving r unmodified.
func (r *Record) Put(key Bits, v Value) *Record {
	return r.putAt(key, 0, v)
}

func (r *Record) putAt(key Bits, i int, v Value) *Record {
	if i == key.Len {
		clone := r.clone()
		if !clone.has {
			clone.count++
		}
		clone.has = true
		clone.value = v
		return clone
	}
	clone := r.clone()
	if key.Bit(i) {
		before := clone.one.Len()
		clone.one = clone.one.putAt(key, i+1, v)
		clone.count += clone.one.Len() - before
	} else {
		before := clone.zero.Len()
		clone.zero = clone.zero.putAt(key, i+1, v)
		clone.count += clone.zero.Len() - before
	}
	return clone
}

// Del returns a new Record with key removed, leaving r unmodified. Deleting
// an absent key is a no-op (returns an equivalent Record).
func (r *Record) Del(key Bits) *Record {
	out, _ := r.delAt(key, 0)
	if out == nil {
		return emptyRecord
	}
	return out
}

func (r *Record) delAt(key Bits, i int) (*Record, bool) {
	if r == nil {
		return nil, false
	}
	if i == key.Len {
		if !r.has {
			return r, false
		}
		clone := &Record{zero: r.zero, one: r.one, count: r.count - 1}
		return clone.normalize(), true
	}
	clone := r.clone()
	var removed bool
	if key.Bit(i) {
		clone.one, removed = clone.one.delAt(key, i+1)
	} else {
		clone.zero, removed = clone.zero.delAt(key, i+1)
	}
	if removed {
		clone.count--
	}
	return clone.normalize(), removed
}

// normalize collapses an empty, childless node to nil so that equal Records
// never differ only by dangling empty nodes.
func (r *Record) normalize() *Record {
	if r == nil {
		return nil
	}
	if !r.has && r.zero.Len() == 0 && r.one.Len() == 0 {
		return nil
	}
	return r
}

func (r *Record) clone() *Record {
	if r == nil {
		return &Record{}
	}
	c := *r
	return &c
}

// Each walks r's entries in label-bit-lexicographic order (0 before 1 at
// each position, a key before any of its proper extensions), calling fn for
// each. Each stops early if fn returns false.
func (r *Record) Each(fn func(key Bits, v Value) bool) {
	r.each(Bits{}, fn)
}

func (r *Record) each(prefix Bits, fn func(key Bits, v Value) bool) bool {
	if r == nil {
		return true
	}
	if r.has {
		if !fn(prefix, r.value) {
			return false
		}
	}
	if !r.zero.each(extend(prefix, false), fn) {
		return false
	}
	if !r.one.each(extend(prefix, true), fn) {
		return false
	}
	return true
}

func extend(b Bits, bit bool) Bits {
	bools := append(b.Bools(), bit)
	return BitsFromBools(bools)
}

// Keys returns r's keys in label-bit-lexicographic order.
func (r *Record) Keys() []Bits {
	keys := make([]Bits, 0, r.Len())
	r.Each(func(k Bits, _ Value) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// first returns an arbitrary entry of r (the lexicographically-first one),
// used to implement AsVariant for single-entry records.
func (r *Record) first() (Bits, Value, bool) {
	var k Bits
	var v Value
	found := false
	r.Each(func(key Bits, val Value) bool {
		k, v, found = key, val, true
		return false
	})
	return k, v, found
}
