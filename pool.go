package fixturego

import (
	"fmt"
	"sync"
)

// Pool is a bounded allocator for Employee records. It gives the record
// constructor an explicit allocation-failure path: once the configured
// capacity is spent, Get reports ErrExhausted instead of allocating, and
// records come back into circulation only when the caller releases them
// with Put.
//
// A Pool is safe for concurrent use.
type Pool struct {
	mu        sync.Mutex
	capacity  int
	allocated int
	reuses    int64
	free      []*Employee
	parked    map[*Employee]struct{}
}

// NewPool creates a pool that hands out at most capacity live records.
// A capacity of zero leaves the pool unbounded.
func NewPool(capacity int) *Pool {
	return &Pool{
		capacity: capacity,
		parked:   make(map[*Employee]struct{}),
	}
}

// Get returns a record populated from the given fields, reusing released
// storage when any is available. Ownership of the record transfers
// exclusively to the caller until it is handed back with Put. When the pool
// is bounded and every record is live, Get fails with a wrapped
// ErrExhausted.
func (p *Pool) Get(id int, name string, salary float64) (*Employee, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		e := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		delete(p.parked, e)
		e.id = id
		e.name = truncateName(name)
		e.salary = salary
		p.reuses++
		return e, nil
	}

	if p.capacity > 0 && p.allocated >= p.capacity {
		return nil, fmt.Errorf("employee pool: capacity %d spent: %w", p.capacity, ErrExhausted)
	}

	p.allocated++
	return &Employee{
		id:     id,
		name:   truncateName(name),
		salary: salary,
	}, nil
}

// Put releases a record back to the pool for reuse. Releasing nil, or a
// record that is already parked, is a no-op; a record is never in the free
// list twice, so no two Get calls can hand out the same record. A record
// must not be used after it is released; its storage will be reinitialized
// by a later Get.
func (p *Pool) Put(e *Employee) {
	if e == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.parked[e]; ok {
		return
	}

	e.name = "" // drop the string reference while parked
	p.parked[e] = struct{}{}
	p.free = append(p.free, e)
}

// Stats returns pool statistics
func (p *Pool) Stats() map[string]interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	return map[string]interface{}{
		"capacity":  int64(p.capacity),
		"allocated": int64(p.allocated),
		"free":      int64(len(p.free)),
		"reuses":    p.reuses,
	}
}
