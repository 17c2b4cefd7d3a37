package fdon

import (
	"fmt"
	"testing"
)

func TestObjectSetGet(t *testing.T) {
	obj := newObject()
	obj.set("a", Value{kind: KindInt, intVal: 1})
	obj.set("b", Value{kind: KindInt, intVal: 2})

	v, ok := obj.get("a")
	if !ok || v.intVal != 1 {
		t.Errorf("get(a) = %v, %v", v, ok)
	}
	if _, ok := obj.get("missing"); ok {
		t.Error("expected missing key to report ok=false")
	}
	if obj.Len() != 2 {
		t.Errorf("Len() = %d, want 2", obj.Len())
	}
}

func TestObjectDuplicateKeyLastWins(t *testing.T) {
	obj := newObject()
	obj.set("k", Value{kind: KindInt, intVal: 1})
	obj.set("k", Value{kind: KindInt, intVal: 2})

	v, ok := obj.get("k")
	if !ok || v.intVal != 2 {
		t.Errorf("get(k) = %v, %v, want Int(2), true", v, ok)
	}
	if obj.Len() != 1 {
		t.Errorf("Len() = %d, want 1", obj.Len())
	}
}

func TestObjectGrows(t *testing.T) {
	obj := newObject()
	const n = 500
	for i := 0; i < n; i++ {
		obj.set(fmt.Sprintf("key%d", i), Value{kind: KindInt, intVal: int64(i)})
	}
	if obj.Len() != n {
		t.Fatalf("Len() = %d, want %d", obj.Len(), n)
	}
	for i := 0; i < n; i++ {
		v, ok := obj.get(fmt.Sprintf("key%d", i))
		if !ok || v.intVal != int64(i) {
			t.Fatalf("get(key%d) = %v, %v, want Int(%d), true", i, v, ok, i)
		}
	}
}

func TestObjectRange(t *testing.T) {
	obj := newObject()
	want := map[string]int64{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		obj.set(k, Value{kind: KindInt, intVal: v})
	}
	got := map[string]int64{}
	obj.Range(func(key string, val Value) bool {
		got[key] = val.intVal
		return true
	})
	if len(got) != len(want) {
		t.Fatalf("Range visited %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Range[%s] = %d, want %d", k, got[k], v)
		}
	}
}

func TestObjectRangeStopsEarly(t *testing.T) {
	obj := newObject()
	obj.set("a", Value{kind: KindInt, intVal: 1})
	obj.set("b", Value{kind: KindInt, intVal: 2})

	visited := 0
	obj.Range(func(key string, val Value) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("Range visited %d entries after false return, want 1", visited)
	}
}
