package algodft

import "sync"

// PlanCache memoizes one Plan per transform size. Entries are created
// lazily and never evicted; a handful of distinct sizes are ever requested
// in practice.
//
// All methods are safe for concurrent use. Lazy construction is serialized
// under a single lock so concurrent first-time requests for a size build
// exactly one Plan.
type PlanCache struct {
	mu    sync.Mutex
	plans map[int]*Plan
}

// NewPlanCache returns an empty plan cache.
func NewPlanCache() *PlanCache {
	return &PlanCache{plans: make(map[int]*Plan)}
}

// Get returns the memoized Plan for n complex samples, constructing and
// caching one on first request. Repeated calls with the same size return
// the same instance. Construction failures are returned to the caller and
// not cached.
func (c *PlanCache) Get(n int) (*Plan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.plans[n]; ok {
		return p, nil
	}

	p, err := NewPlan(n)
	if err != nil {
		return nil, err
	}

	c.plans[n] = p

	return p, nil
}

// Len returns the number of cached plans.
func (c *PlanCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.plans)
}

// DefaultCache is the process-wide cache used by the package-level Forward
// and Inverse functions. Applications that want explicit ownership can
// create their own PlanCache instead.
var DefaultCache = NewPlanCache()

// GetPlan returns the plan for n complex samples from DefaultCache.
func GetPlan(n int) (*Plan, error) {
	return DefaultCache.Get(n)
}
