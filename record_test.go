package glint

import "testing"

func TestRecordPutGetDel(t *testing.T) {
	k := Sym("key")
	v := NewBits(Sym("value"))

	r := emptyRecord.Put(k, v)
	got, ok := r.Get(k)
	if !ok || !Equal(got, v) {
		t.Fatalf("get after put: got=%v ok=%v", got, ok)
	}

	r2 := r.Del(k)
	if _, ok := r2.Get(k); ok {
		t.Fatal("get after del should fail")
	}
	if _, ok := r.Get(k); !ok {
		t.Fatal("Del must not mutate the original record")
	}
}

func TestRecordPutDelCommute(t *testing.T) {
	k := Sym("key")
	v1, v2 := NewBits(Sym("v1")), NewBits(Sym("v2"))
	r := emptyRecord.Put(k, v1)

	a := r.Put(k, v2).Del(k)
	b := emptyRecord.Del(k)
	if a.Len() != b.Len() {
		t.Fatalf("del(k,put(k,v2,r)) should equal del(k,r): lens %d vs %d", a.Len(), b.Len())
	}

	// put(k,v,del(k,r)) = put(k,v,r)
	c := r.Del(k).Put(k, v2)
	d := r.Put(k, v2)
	if !Equal(NewRecord(c), NewRecord(d)) {
		t.Fatal("put(k,v,del(k,r)) != put(k,v,r)")
	}
}

func TestRecordLenAndEach(t *testing.T) {
	r := emptyRecord
	want := map[string]bool{"a": true, "bb": true, "ccc": true}
	for name := range want {
		r = r.Put(Sym(name), Unit)
	}
	if r.Len() != len(want) {
		t.Fatalf("Len: got %d want %d", r.Len(), len(want))
	}
	seen := map[string]bool{}
	var prev Bits
	first := true
	r.Each(func(k Bits, _ Value) bool {
		if !first && !prev.less(k) {
			t.Error("Each did not iterate in bit-lexicographic order")
		}
		prev, first = k, false
		s, ok := NewBits(k).SymString()
		if !ok {
			t.Fatal("key did not round-trip as a symbol")
		}
		seen[s] = true
		return true
	})
	for name := range want {
		if !seen[name] {
			t.Errorf("Each skipped %q", name)
		}
	}
}
