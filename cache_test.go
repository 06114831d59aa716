package algodft

import (
	"sync"
	"testing"
)

func TestPlanCacheIdentity(t *testing.T) {
	t.Parallel()

	cache := NewPlanCache()

	a, err := cache.Get(16)
	if err != nil {
		t.Fatalf("Get(16): %v", err)
	}
	b, err := cache.Get(16)
	if err != nil {
		t.Fatalf("Get(16) again: %v", err)
	}
	if a != b {
		t.Fatal("repeated Get(16) returned distinct instances")
	}

	c, err := cache.Get(32)
	if err != nil {
		t.Fatalf("Get(32): %v", err)
	}
	if c == a {
		t.Fatal("Get(32) returned the size-16 instance")
	}

	if cache.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cache.Len())
	}
}

func TestPlanCacheInvalidSizeNotCached(t *testing.T) {
	t.Parallel()

	cache := NewPlanCache()

	if _, err := cache.Get(12); err != ErrInvalidLength {
		t.Fatalf("Get(12): err = %v, want ErrInvalidLength", err)
	}
	if cache.Len() != 0 {
		t.Fatalf("failed construction was cached, Len = %d", cache.Len())
	}
}

func TestPlanCacheConcurrentGet(t *testing.T) {
	t.Parallel()

	cache := NewPlanCache()

	const workers = 32
	plans := make([]*Plan, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		w := w
		go func() {
			defer wg.Done()
			p, err := cache.Get(64)
			if err != nil {
				t.Errorf("Get(64): %v", err)
				return
			}
			plans[w] = p
		}()
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		if plans[w] != plans[0] {
			t.Fatalf("worker %d received a distinct instance", w)
		}
	}
}
