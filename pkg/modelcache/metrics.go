package modelcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Process-wide cache counters, labeled by logical entity type. These
// aggregate across requests; the per-request diagnostics report does not.
// 进程级缓存计数器，按逻辑实体类型打标签。
// 它们跨请求聚合；按请求的诊断报告则不聚合。
var (
	loadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modelcache_loads_total",
			Help: "Total logical model loads, including cache hits",
		},
		[]string{"type"},
	)
	hitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modelcache_hits_total",
			Help: "Loads served from the request cache",
		},
		[]string{"type"},
	)
	missesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modelcache_misses_total",
			Help: "Loads that invoked the underlying loader",
		},
		[]string{"type"},
	)
	excludedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modelcache_excluded_total",
			Help: "Loads that bypassed the cache due to exclusion rules",
		},
		[]string{"type"},
	)
)

func (c *Cache) markLoad(typeName string) {
	if c.metrics {
		loadsTotal.WithLabelValues(typeName).Inc()
	}
}

func (c *Cache) markHit(typeName string) {
	if c.metrics {
		hitsTotal.WithLabelValues(typeName).Inc()
	}
}

func (c *Cache) markMiss(typeName string) {
	if c.metrics {
		missesTotal.WithLabelValues(typeName).Inc()
	}
}

func (c *Cache) markExcluded(typeName string) {
	if c.metrics {
		excludedTotal.WithLabelValues(typeName).Inc()
	}
}
