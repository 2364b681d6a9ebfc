package loadlog

import (
	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

// Collector accumulates model-load observations for a single request.
// One collector belongs to exactly one in-flight request and is driven from
// that request's goroutine only; it deliberately does no internal locking.
// Concurrent callers must serialize in front of it (the HTTP middleware's
// listener adapter does).
// Collector 为单个请求累积模型加载观测。
// 一个 Collector 恰好属于一个进行中的请求，且仅由该请求的 goroutine 驱动；
// 它刻意不做内部加锁。并发调用方必须在其前方串行化（HTTP 中间件的监听适配器负责此事）。
type Collector struct {
	cfg  sdk.Config
	log  *LoadLog
	done bool
}

// NewCollector creates a collector reading its toggles from cfg.
// NewCollector 创建从 cfg 读取开关的收集器。
func NewCollector(cfg sdk.Config) *Collector {
	return &Collector{
		cfg: cfg,
		log: New(),
	}
}

// Record notes one model load. It never fails and never blocks.
// No-ops: empty entity type, logging switched off (the flag is re-read on
// every call so runtime toggles take effect), or a collector already flushed.
// Record 记录一次模型加载。永不失败，永不阻塞。
// 以下情况为空操作：实体类型为空、日志开关关闭（每次调用都重新读取开关，
// 运行时切换即时生效）、或收集器已完成刷写。
func (c *Collector) Record(entityType, identifier string, frames []sdk.Frame) {
	if entityType == "" {
		return
	}
	if c.cfg == nil || !c.cfg.Flag(sdk.PathLogActive) {
		return
	}
	if c.done {
		return
	}

	c.log.Add(entityType, identifier, formatCallSite(frames))
}

// TotalLoaded returns the unfiltered number of recorded loads.
// TotalLoaded 返回未过滤的加载记录总数。
func (c *Collector) TotalLoaded() int {
	return c.log.Total()
}

// finish transitions the collector to its terminal state. The first call
// returns the load log for reporting; later calls return nil.
// finish 将收集器转入终态。首次调用返回用于报告的加载日志；后续调用返回 nil。
func (c *Collector) finish() *LoadLog {
	if c.done {
		return nil
	}
	c.done = true
	return c.log
}
