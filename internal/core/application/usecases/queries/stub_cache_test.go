package queries_test

import (
	"context"
	"encoding/json"
	"sync"

	"fleet/internal/core/ports"
)

// stubCache is an in-memory ports.Cache. JSON round-tripping mirrors what
// the redis adapter does, so type mismatches between writers and readers of
// a key show up in these tests too.
type stubCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key ports.CacheKey, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.entries[key.String()]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubCache) Set(_ context.Context, key ports.CacheKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key.String()] = raw
	return nil
}

func (c *stubCache) Delete(_ context.Context, key ports.CacheKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key.String())
	return nil
}

func (c *stubCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
}
