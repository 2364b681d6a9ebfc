package modelcache

import (
	"github.com/deheerhoreca/Aoe-ModelCache/internal/loadlog"
	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

// Diagnostics ties a per-request load recorder to the report pipeline.
// One instance belongs to one request and Flush emits at most one
// report. Middleware wires this up for HTTP servers; non-HTTP
// integrations construct it directly.
// Diagnostics 将按请求的加载记录器与报告管道连接起来。
// 一个实例只属于一个请求，Flush 最多输出一份报告。
// Middleware 为 HTTP 服务器完成装配；非 HTTP 集成可直接构造。
type Diagnostics struct {
	collector *loadlog.Collector
	reporter  *loadlog.Reporter
	urls      sdk.URLSource
}

// NewDiagnostics builds a request diagnostics instance. cfg gates
// recording and reporting, snk receives the rendered report, and urls
// names the request in the report banner. urls may be nil.
// NewDiagnostics 构造一个请求诊断实例。cfg 控制记录与报告，
// snk 接收渲染后的报告，urls 在报告横幅中命名请求。urls 可以为 nil。
func NewDiagnostics(cfg sdk.Config, snk sdk.Sink, urls sdk.URLSource) *Diagnostics {
	return &Diagnostics{
		collector: loadlog.NewCollector(cfg),
		reporter:  loadlog.NewReporter(cfg, snk),
		urls:      urls,
	}
}

// Record notes one load of (entityType, identifier) with its call stack.
// Record 记录一次 (entityType, identifier) 的加载及其调用栈。
func (d *Diagnostics) Record(entityType string, identifier string, frames []sdk.Frame) {
	d.collector.Record(entityType, identifier, frames)
}

// Flush emits the end-of-request report. Later Record calls are dropped
// and later Flush calls do nothing.
// Flush 输出请求结束报告。之后的 Record 调用被丢弃，再次 Flush 无效果。
func (d *Diagnostics) Flush() {
	var url string
	if d.urls != nil {
		url = d.urls.CurrentURL()
	}
	d.reporter.Flush(d.collector, url)
}

// TotalLoaded returns the number of loads recorded so far.
// TotalLoaded 返回到目前为止记录的加载次数。
func (d *Diagnostics) TotalLoaded() int {
	return d.collector.TotalLoaded()
}
