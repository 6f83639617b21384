package gomaskx

import (
	"reflect"
	"sync"
	"testing"
)

type cachedUser struct {
	Name  string `mask:"name"`
	Email string `mask:"email"`
}

type cachedOrder struct {
	ID string
}

func TestCacheGetReturnsSameInstance(t *testing.T) {
	c := NewCache()
	d1, err := c.Get(reflect.TypeOf(cachedUser{}))
	if err != nil {
		t.Fatal(err)
	}
	d2, err := c.Get(reflect.TypeOf(cachedUser{}))
	if err != nil {
		t.Fatal(err)
	}
	if d1 != d2 {
		t.Error("Get should return the same descriptor instance for the same type")
	}
}

func TestCacheDifferentTypes(t *testing.T) {
	c := NewCache()
	d1, _ := c.Get(reflect.TypeOf(cachedUser{}))
	d2, _ := c.Get(reflect.TypeOf(cachedOrder{}))
	if d1 == d2 {
		t.Error("different types should have different descriptors")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache()
	typ := reflect.TypeOf(cachedUser{})

	d1, _ := c.Get(typ)
	c.Invalidate(typ)
	d2, _ := c.Get(typ)
	if d1 == d2 {
		t.Error("Get after Invalidate should build a fresh descriptor instance")
	}

	// Equivalent content even though the instance is new.
	if len(d1.Fields) != len(d2.Fields) {
		t.Fatalf("field count changed across rebuild: %d vs %d", len(d1.Fields), len(d2.Fields))
	}
	for i := range d1.Fields {
		if d1.Fields[i].Name != d2.Fields[i].Name || d1.Fields[i].Type != d2.Fields[i].Type {
			t.Errorf("field %d differs across rebuild", i)
		}
	}
}

func TestCacheInvalidateUnknownTypeIsNoop(t *testing.T) {
	c := NewCache()
	c.Invalidate(reflect.TypeOf(cachedOrder{})) // never cached, must not panic
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	d1, _ := c.Get(reflect.TypeOf(cachedUser{}))
	c.Clear()
	d2, _ := c.Get(reflect.TypeOf(cachedUser{}))
	if d1 == d2 {
		t.Error("Get after Clear should build a fresh descriptor instance")
	}
}

func TestCacheFailedBuildNotCached(t *testing.T) {
	type broken struct {
		Value string `mask:"custom=["`
	}
	c := NewCache()
	typ := reflect.TypeOf(broken{})

	if _, err := c.Get(typ); err == nil {
		t.Fatal("expected build error")
	}
	// A retry fails identically; the broken type is never stored.
	if _, err := c.Get(typ); err == nil {
		t.Fatal("expected build error on retry")
	}
	if _, ok := c.descriptors.Load(typ); ok {
		t.Error("failed build must not be cached")
	}
}

func TestCacheConcurrentFirstUse(t *testing.T) {
	const goroutines = 32
	c := NewCache()
	typ := reflect.TypeOf(cachedUser{})

	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		results = make([]*TypeDescriptor, goroutines)
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			d, err := c.Get(typ)
			if err != nil {
				t.Errorf("concurrent Get returned error: %v", err)
				return
			}
			results[i] = d
		}(i)
	}
	close(start)
	wg.Wait()

	// All callers converge on the stored instance.
	stable, _ := c.Get(typ)
	for i, d := range results {
		if d != stable {
			t.Errorf("goroutine %d observed a different descriptor instance", i)
		}
	}
}
