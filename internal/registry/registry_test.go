package registry

import (
	"fmt"
	"sync"
	"testing"
)

type rec struct {
	Key   string
	Value int
}

func newTestRegistry() *Registry[rec] {
	return New(func(r rec) string { return r.Key })
}

func TestRegistry_ListKeepsInsertionOrder(t *testing.T) {
	r := newTestRegistry()

	for i := 0; i < 5; i++ {
		r.Add(rec{Key: fmt.Sprintf("k%d", i), Value: i})
	}

	got := r.List()
	if len(got) != 5 {
		t.Fatalf("len = %d", len(got))
	}
	for i, rc := range got {
		if rc.Value != i {
			t.Fatalf("list[%d].Value = %d", i, rc.Value)
		}
	}
}

func TestRegistry_FindIsCaseInsensitiveFirstMatch(t *testing.T) {
	r := newTestRegistry()

	r.Add(rec{Key: "Cabernet", Value: 1})
	r.Add(rec{Key: "cabernet", Value: 2})

	got, ok := r.Find("CABERNET")
	if !ok {
		t.Fatal("not found")
	}
	if got.Value != 1 {
		t.Fatalf("got value %d, want first match 1", got.Value)
	}

	if _, ok := r.Find("merlot"); ok {
		t.Fatal("found a record that was never added")
	}
}

func TestRegistry_ListReturnsCopy(t *testing.T) {
	r := newTestRegistry()
	r.Add(rec{Key: "a", Value: 1})

	out := r.List()
	out[0].Value = 99

	again, _ := r.Find("a")
	if again.Value != 1 {
		t.Fatalf("mutation through List leaked into the registry")
	}
}

func TestRegistry_ConcurrentAdd(t *testing.T) {
	r := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Add(rec{Key: fmt.Sprintf("k%d", n), Value: n})
		}(i)
	}
	wg.Wait()

	if r.Len() != 50 {
		t.Fatalf("len = %d, want 50", r.Len())
	}
}
