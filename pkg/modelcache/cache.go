package modelcache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

type contextKey struct{}

// Cache holds request-scoped load results and dispatches load events.
// Create one per request via WithRequest (usually through Middleware)
// and retrieve it with FromContext.
// Cache 保存请求级的加载结果并分发加载事件。
// 通过 WithRequest（通常经由 Middleware）按请求创建，用 FromContext 获取。
type Cache struct {
	group     singleflight.Group
	mu        sync.RWMutex
	store     map[string]any
	caching   bool
	metrics   bool
	listeners []sdk.LoadListener
	rules     Excluder
	log       sdk.Logger
}

// WithRequest returns a child context carrying a new Cache.
// WithRequest 返回携带新 Cache 的子 context。
func WithRequest(ctx context.Context, opts ...Option) context.Context {
	c := &Cache{
		store:   make(map[string]any),
		caching: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext retrieves the Cache from ctx, or nil if none is present.
// FromContext 从 ctx 中获取 Cache，不存在时返回 nil。
func FromContext(ctx context.Context) *Cache {
	c, _ := ctx.Value(contextKey{}).(*Cache)
	return c
}

// Load fetches the entity named by key and id through the request cache.
// Listeners observe every call, cache hit or not. Concurrent callers for
// the same key and id share one in-flight loader call, and a successful
// result is cached for the request lifetime. Errors are not cached.
// When ctx carries no Cache the loader is called directly.
//
// When concurrent loads coalesce, the loader runs under the context of
// the call that won the flight.
//
// Load 通过请求缓存获取由 key 和 id 命名的实体。监听器观察每一次调用，
// 无论是否命中缓存。相同 key 和 id 的并发调用共享一次加载器调用，
// 成功结果在请求生命周期内缓存。错误不缓存。
// ctx 中没有 Cache 时直接调用加载器。
func Load[T any](ctx context.Context, key Key[T], id string, loader func(context.Context) (T, error)) (T, error) {
	c := FromContext(ctx)
	if c == nil {
		return loader(ctx)
	}
	return load(ctx, c, key, id, loader)
}

// load keeps one fixed dispatch hop between Load's caller and the
// listener's stack capture. The call-site window in the diagnostics
// report depends on the depth staying exactly
// Load → load → notify → OnModelLoad → Callers.
// load 在 Load 的调用者与监听器的栈捕获之间保持固定的一跳分发深度。
// 诊断报告中的调用位置窗口依赖该深度保持不变。
func load[T any](ctx context.Context, c *Cache, key Key[T], id string, loader func(context.Context) (T, error)) (T, error) {
	c.notify(key.typeName, id)

	if c.rules != nil && c.rules.Excluded(key.typeName, id) {
		c.markExcluded(key.typeName)
		return loader(ctx)
	}
	if !c.caching {
		return loader(ctx)
	}

	sk := key.storeKey(id)

	// Fast path: already cached. / 快速路径：已缓存。
	c.mu.RLock()
	if v, ok := c.store[sk]; ok {
		c.mu.RUnlock()
		c.markHit(key.typeName)
		return v.(T), nil
	}
	c.mu.RUnlock()

	// Slow path: coalesce concurrent loads. / 慢路径：合并并发加载。
	var invoked bool
	val, err, _ := c.group.Do(sk, func() (any, error) {
		// Double-check: a winner may have cached while we queued.
		// 双重检查：排队期间可能已有结果写入。
		c.mu.RLock()
		if v, ok := c.store[sk]; ok {
			c.mu.RUnlock()
			return v, nil
		}
		c.mu.RUnlock()

		invoked = true
		result, err := loader(ctx)
		if err != nil {
			// Errors are not cached; the next load retries.
			// 错误不缓存；下一次加载会重试。
			return result, err
		}

		c.mu.Lock()
		c.store[sk] = result
		c.mu.Unlock()
		return result, nil
	})
	if err != nil {
		if invoked {
			c.markMiss(key.typeName)
		}
		var zero T
		return zero, err
	}
	if invoked {
		c.markMiss(key.typeName)
	} else {
		c.markHit(key.typeName)
	}
	return val.(T), nil
}

// notify dispatches the load event synchronously on the calling
// goroutine so listeners can inspect the caller's stack.
// notify 在调用 goroutine 上同步分发加载事件，使监听器能检查调用方的栈。
func (c *Cache) notify(typeName string, id string) {
	c.markLoad(typeName)
	if len(c.listeners) == 0 {
		return
	}
	ev := sdk.LoadEvent{Type: typeName, ID: id}
	for _, l := range c.listeners {
		l.OnModelLoad(ev)
	}
}
