package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"clinic-cms/pkg/cache"
)

// MemoryCache is an in-process cache.Cache backed by go-cache.
// Values are copied through JSON so callers never share mutable state with the cache.
type MemoryCache struct {
	store *gocache.Cache
}

var _ cache.Cache = (*MemoryCache)(nil)

func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	v, ok := m.store.Get(key)
	if !ok {
		return false, nil
	}
	raw, ok := v.([]byte)
	if !ok {
		return false, fmt.Errorf("memory cache: unexpected value type for %s", key)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("memory cache decode %s: %w", key, err)
	}
	return true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory cache encode %s: %w", key, err)
	}
	m.store.Set(key, raw, ttl)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.store.Delete(k)
	}
	return nil
}

func (m *MemoryCache) Ping(context.Context) error { return nil }
