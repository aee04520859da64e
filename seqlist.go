package glint

// List is a persistent indexed sequence of Values. It is represented as a
// binary tree of single-element leaves: every internal node caches the
// combined size of its two children, so Index and Split descend one path
// and Join is O(1). Join never rebalances, so the tree's depth, and with it
// the cost of Index, Split, PopL and PopR, depends on how the list was
// built: FromValues and repeated PushR produce a left-leaning tree of depth
// n. Trees are immutable; every mutating-looking operation returns a new
// root sharing untouched subtrees with the original.
type List struct {
	size int
	leaf bool
	val  Value
	l, r *List
}

var emptyList = &List{}

func singleton(v Value) *List {
	return &List{size: 1, leaf: true, val: v}
}

// Len returns the number of elements in l.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Index returns the i'th element (0-based) of l.
func (l *List) Index(i int) (Value, bool) {
	if l == nil || i < 0 || i >= l.size {
		return Value{}, false
	}
	if l.leaf {
		return l.val, true
	}
	if i < l.l.Len() {
		return l.l.Index(i)
	}
	return l.r.Index(i - l.l.Len())
}

// Join concatenates l and other, preserving order.
func Join(l, other *List) *List {
	if l.Len() == 0 {
		if other == nil {
			return emptyList
		}
		return other
	}
	if other.Len() == 0 {
		return l
	}
	return &List{size: l.Len() + other.Len(), l: l, r: other}
}

// Split divides l into its first n elements and the remainder. It fails if n
// exceeds l's length.
func Split(l *List, n int) (*List, *List, bool) {
	if n < 0 || n > l.Len() {
		return nil, nil, false
	}
	left, right := splitAt(l, n)
	return left, right, true
}

func splitAt(l *List, n int) (*List, *List) {
	if n == 0 {
		return emptyList, orEmpty(l)
	}
	if n == l.Len() {
		return orEmpty(l), emptyList
	}
	if l.leaf {
		// n is 0 or 1 here since l.Len() == 1; both cases handled above.
		return orEmpty(l), emptyList
	}
	if n <= l.l.Len() {
		ll, lr := splitAt(l.l, n)
		return ll, Join(lr, l.r)
	}
	rl, rr := splitAt(l.r, n-l.l.Len())
	return Join(l.l, rl), rr
}

func orEmpty(l *List) *List {
	if l == nil {
		return emptyList
	}
	return l
}

// PushL returns a new List with v prepended.
func PushL(l *List, v Value) *List {
	return Join(singleton(v), l)
}

// PushR returns a new List with v appended.
func PushR(l *List, v Value) *List {
	return Join(l, singleton(v))
}

// PopL splits the first element from l.
func PopL(l *List) (Value, *List, bool) {
	if l.Len() == 0 {
		return Value{}, nil, false
	}
	head, tail, _ := Split(l, 1)
	v, _ := head.Index(0)
	return v, tail, true
}

// PopR splits the last element from l.
func PopR(l *List) (Value, *List, bool) {
	n := l.Len()
	if n == 0 {
		return Value{}, nil, false
	}
	init, last, _ := Split(l, n-1)
	v, _ := last.Index(0)
	return v, init, true
}

// FromValues builds a List from vs, left to right.
func FromValues(vs ...Value) *List {
	l := emptyList
	for _, v := range vs {
		l = PushR(l, v)
	}
	return l
}

// ToValues flattens l into a slice, left to right.
func (l *List) ToValues() []Value {
	out := make([]Value, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		v, _ := l.Index(i)
		out = append(out, v)
	}
	return out
}
