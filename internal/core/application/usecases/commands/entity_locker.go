package commands

import (
	"sync"

	"fleet/internal/core/domain/model/kernel"
)

// EntityLocker serializes admissions per entity. Two concurrent admissions
// referencing the same truck or the same driver must not both observe a
// pre-limit delivery count; holding the entity's mutex across the
// count-checks and the persist closes that race within the process, while
// the serializable transaction closes it across processes.
//
// Mutexes are created on first use and kept for the entity's lifetime; the
// fleet is small, so unbounded growth is not a concern here.
type EntityLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewEntityLocker creates an empty locker.
func NewEntityLocker() *EntityLocker {
	return &EntityLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutexes for the given entities in the order supplied.
// Callers must always pass entities in the same order (truck before driver)
// so two admissions can never deadlock on each other. A repeated id is
// acquired once; locking runs before any existence check, so client input
// may name the same entity twice. It returns an unlock function releasing
// the mutexes in reverse order.
func (l *EntityLocker) Lock(ids ...kernel.UUID) func() {
	acquired := make([]*sync.Mutex, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		key := id.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		m := l.lockFor(key)
		m.Lock()
		acquired = append(acquired, m)
	}

	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}

func (l *EntityLocker) lockFor(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}
