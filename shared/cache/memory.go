package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"atoll/infras/otel"

	"github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *cache.Cache
	otel  otel.Otel
}

// NewMemoryCache keeps encoded values in a go-cache store so callers get the same copy semantics as Redis.
func NewMemoryCache(store *cache.Cache, ot otel.Otel) Cache {
	return &memoryCache{
		store: store,
		otel:  ot,
	}
}

func (m *memoryCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	_, scope := m.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	data, err := encode(value)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	expiration := cache.DefaultExpiration
	if duration > 0 {
		expiration = time.Duration(duration) * time.Second
	}

	m.store.Set(key, data, expiration)

	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string, value any) (err error) {
	_, scope := m.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	item, found := m.store.Get(key)
	if !found {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	data, ok := item.([]byte)
	if !ok {
		return fmt.Errorf("failed to get cache value: unexpected %T", item)
	}

	return decode(data, value)
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	_, scope := m.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	m.store.Delete(key)

	return nil
}

func (m *memoryCache) Clear(ctx context.Context, prefix string) error {
	_, scope := m.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, prefix)

	for key := range m.store.Items() {
		if strings.HasPrefix(key, prefix) {
			m.store.Delete(key)
		}
	}

	return nil
}
