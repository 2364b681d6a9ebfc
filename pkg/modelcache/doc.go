// Package modelcache provides a request-scoped entity cache with built-in
// detection of repeated model loads.
//
// Within one HTTP request, loading the same entity twice usually means a
// missing local cache or a hidden N+1. The package deduplicates such loads
// and, when enabled, writes an end-of-request report naming each repeated
// (type, id) pair together with the code locations that loaded it.
//
// Define typed keys, install the middleware, then load through the cache:
//
//	var productKey = modelcache.NewKey[*Product]("catalog/product")
//
//	handler = modelcache.Middleware(cfg, sink)(handler)
//
//	p, err := modelcache.Load(ctx, productKey, "42", func(ctx context.Context) (*Product, error) {
//		return store.Product(ctx, "42")
//	})
//
// Concurrent loads of the same key and id share a single loader call and
// successful results are cached for the request lifetime. Errors are not
// cached, so a failed load can be retried. If ctx carries no cache, Load
// calls the loader directly.
//
// Reporting is armed process-wide by the AOE_MODELCACHE_PROFILER
// environment variable and gated per request by the
// dev/aoe_modelcache/log_active configuration flag.
package modelcache
