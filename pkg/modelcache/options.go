package modelcache

import "github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"

// Excluder decides whether a load bypasses the cache store.
// Excluder 决定一次加载是否绕过缓存存储。
type Excluder interface {
	Excluded(entityType string, id string) bool
}

// Option configures the Cache installed by WithRequest.
// Option 配置由 WithRequest 安装的 Cache。
type Option func(*Cache)

// WithListener attaches a listener notified synchronously on every
// logical load, cache hit or not.
// WithListener 附加一个监听器，在每次逻辑加载时同步收到通知，无论是否命中缓存。
func WithListener(l sdk.LoadListener) Option {
	return func(c *Cache) {
		if l != nil {
			c.listeners = append(c.listeners, l)
		}
	}
}

// WithRules attaches exclusion rules. Matching loads bypass the store
// and always hit the loader.
// WithRules 附加排除规则。匹配的加载绕过存储，始终调用加载器。
func WithRules(x Excluder) Option {
	return func(c *Cache) { c.rules = x }
}

// WithMetrics toggles the process-wide prometheus counters.
// WithMetrics 切换进程级 prometheus 计数器。
func WithMetrics(enabled bool) Option {
	return func(c *Cache) { c.metrics = enabled }
}

// WithCaching toggles load deduplication. When disabled the cache still
// dispatches load events, so diagnostics keep working.
// WithCaching 切换加载去重。禁用时仍会分发加载事件，诊断继续工作。
func WithCaching(enabled bool) Option {
	return func(c *Cache) { c.caching = enabled }
}

// WithLogger attaches a logger for per-request summaries.
// WithLogger 附加用于按请求摘要的日志记录器。
func WithLogger(log sdk.Logger) Option {
	return func(c *Cache) { c.log = log }
}
