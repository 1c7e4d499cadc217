package hash

import (
	"fmt"
	"testing"
)

func TestKeyHashFunc_intIdentity(t *testing.T) {
	for _, key := range []int{0, 1, 5, 1024 * 1024} {
		if KeyHashFunc(key) != uint64(key) {
			t.Errorf("integer key %v did not hash to itself: %v", key, KeyHashFunc(key))
		}
	}
}

func TestKeyHashFunc_deterministic(t *testing.T) {
	keys := []interface{}{"a string", []byte{1, 2, 3}, 42, uint64(42), 3.14, struct{ A int }{A: 1}}
	for _, key := range keys {
		if KeyHashFunc(key) != KeyHashFunc(key) {
			t.Errorf("hash of %v is not deterministic", key)
		}
	}
}

func TestKeyHashFunc_stringsDiffer(t *testing.T) {
	if KeyHashFunc("a") == KeyHashFunc("b") {
		t.Errorf(`"a" and "b" hash to the same value`)
	}
}

func TestKeyCompareFunc_threeWay(t *testing.T) {
	cases := []struct {
		a, b     interface{}
		expected int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{2, 2, 0},
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "a", 0},
		{uint64(1), uint64(1), 0},
		{1.5, 2.5, -1},
		{[]byte{1}, []byte{1}, 0},
		{[]byte{1}, []byte{2}, -1},
	}
	for _, c := range cases {
		if got := KeyCompareFunc(c.a, c.b); got != c.expected {
			t.Errorf("compare(%v, %v) == %v, expected %v", c.a, c.b, got, c.expected)
		}
	}
}

func TestKeyCompareFunc_mixedTypesAreStrict(t *testing.T) {
	// Mismatched types must produce a consistent strict ordering, even when
	// the Sprintf renderings of the two keys match.
	cases := []struct {
		a, b interface{}
	}{
		{1, "a string"},
		{int(1), int8(1)},
		{int(1), uint(1)},
		{int64(1), uint64(1)},
		{"1", 1},
		{[]byte("ab"), "ab"},
		{float64(1), int(1)},
	}
	for _, c := range cases {
		ab := KeyCompareFunc(c.a, c.b)
		ba := KeyCompareFunc(c.b, c.a)
		if ab == 0 || ba == 0 {
			t.Errorf("distinct keys %T(%v) and %T(%v) compare equal: %v %v", c.a, c.a, c.b, c.b, ab, ba)
		}
		if ab == ba {
			t.Errorf("comparison of %T(%v) and %T(%v) is not antisymmetric: %v %v", c.a, c.a, c.b, c.b, ab, ba)
		}
	}
}

func TestRecordFormatFunc(t *testing.T) {
	got := RecordFormatFunc(5, "five")
	expected := fmt.Sprintf("(%v, %v)", 5, "five")
	if got != expected {
		t.Errorf(`formatted record is %q, expected %q`, got, expected)
	}
}
