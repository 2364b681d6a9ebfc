package modelcache

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/stack"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/logger"
	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

// Middleware returns an http middleware that installs a request Cache
// and repeated-load diagnostics on every request. The report is flushed
// exactly once when the handler returns, panic or not. The request
// context also carries a logger tagged with a request id.
// Middleware 返回一个 http 中间件，为每个请求安装请求级 Cache 与
// 重复加载诊断。报告在处理器返回时恰好输出一次，即使发生 panic。
// 请求 context 还会携带带请求 id 的日志记录器。
func Middleware(cfg sdk.Config, snk sdk.Sink, opts ...Option) func(http.Handler) http.Handler {
	provider := stack.NewProvider()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := uuid.NewString()

			diag := NewDiagnostics(cfg, snk, &requestURL{r: r})
			listener := &diagListener{provider: provider, diag: diag}

			reqOpts := make([]Option, 0, len(opts)+1)
			reqOpts = append(reqOpts, opts...)
			reqOpts = append(reqOpts, WithListener(listener))

			ctx := WithRequest(r.Context(), reqOpts...)
			c := FromContext(ctx)
			ctx = logger.WithContext(ctx, logger.Get(ctx).With("request_id", reqID))

			defer func() {
				diag.Flush()
				if total := diag.TotalLoaded(); c.log != nil && total > 0 {
					c.log.Infof("request %s: %d model loads", reqID, total)
				}
			}()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// diagListener bridges load events to the diagnostics recorder. Its
// mutex serializes handlers that fan out into several goroutines; the
// recorder itself stays single-goroutine.
// diagListener 将加载事件桥接到诊断记录器。互斥锁用于串行化扇出到
// 多个 goroutine 的处理器；记录器本身保持单 goroutine。
type diagListener struct {
	mu       sync.Mutex
	provider sdk.FrameProvider
	diag     sdk.Diagnostics
}

func (d *diagListener) OnModelLoad(ev sdk.LoadEvent) {
	frames := d.provider.Callers()
	d.mu.Lock()
	d.diag.Record(ev.Type, ev.ID, frames)
	d.mu.Unlock()
}

// requestURL reports the served request's URL, resolved lazily at flush.
// requestURL 报告所服务请求的 URL，在 flush 时惰性解析。
type requestURL struct {
	r *http.Request
}

func (u *requestURL) CurrentURL() string {
	scheme := "http"
	if u.r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + u.r.Host + u.r.RequestURI
}
