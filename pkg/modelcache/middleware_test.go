package modelcache

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

// fakeConfig returns canned flags and values.
// fakeConfig 返回预设的开关和值。
type fakeConfig struct {
	flags  map[string]bool
	values map[string]string
}

func (f *fakeConfig) Flag(path string) bool    { return f.flags[path] }
func (f *fakeConfig) Value(path string) string { return f.values[path] }

func activeConfig() *fakeConfig {
	return &fakeConfig{
		flags: map[string]bool{sdk.PathLogActive: true},
		values: map[string]string{
			sdk.PathLogFile: "model_loads.log",
		},
	}
}

// fakeSink records appended reports.
// fakeSink 记录追加的报告。
type fakeSink struct {
	files    []string
	messages []string
}

func (f *fakeSink) Append(file string, message string) error {
	f.files = append(f.files, file)
	f.messages = append(f.messages, message)
	return nil
}

// fakeLogger captures Infof output.
// fakeLogger 捕获 Infof 输出。
type fakeLogger struct {
	mu    sync.Mutex
	infos []string
}

func (l *fakeLogger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *fakeLogger) Warnf(format string, args ...interface{})  {}
func (l *fakeLogger) Errorf(format string, args ...interface{}) {}

func withProfiler(t *testing.T, on bool) {
	t.Helper()
	initial := sdk.ProfilerEnabled()
	t.Cleanup(func() {
		if initial {
			sdk.EnableProfiler()
		} else {
			sdk.DisableProfiler()
		}
	})
	if on {
		sdk.EnableProfiler()
	} else {
		sdk.DisableProfiler()
	}
}

// TestMiddlewareEmitsReport tests the full request pipeline: repeated
// loads inside a handler end up in the report, with the handler's own
// source location as the innermost reported call site
// TestMiddlewareEmitsReport 测试完整的请求管道：处理器内的重复加载
// 出现在报告中，且最内层的调用位置是处理器自己的源码位置
func TestMiddlewareEmitsReport(t *testing.T) {
	withProfiler(t, true)
	snk := &fakeSink{}
	cfg := activeConfig()

	handler := Middleware(cfg, snk)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		loader := func(ctx context.Context) (string, error) { return "p", nil }
		_, _ = Load(ctx, productKey, "7", loader)
		_, _ = Load(ctx, productKey, "7", loader)
		_, _ = Load(ctx, NewKey[string]("customer/customer"), "3", loader)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/checkout/cart?item=9", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, snk.messages, 1)
	assert.Equal(t, []string{"model_loads.log"}, snk.files)

	msg := snk.messages[0]
	assert.Contains(t, msg, "http://example.com/checkout/cart?item=9")
	assert.Contains(t, msg, "Total number of loaded models: 3")
	assert.Contains(t, msg, "catalog/product:")
	assert.Contains(t, msg, "- ID: 7, Count: 2, Locations:")
	assert.Contains(t, msg, "middleware_test.go")
	assert.NotContains(t, msg, "customer/customer")
}

// TestMiddlewareIsolatesRequests tests that each request gets its own report
// TestMiddlewareIsolatesRequests 测试每个请求得到自己的报告
func TestMiddlewareIsolatesRequests(t *testing.T) {
	withProfiler(t, true)
	snk := &fakeSink{}

	handler := Middleware(activeConfig(), snk)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		loader := func(ctx context.Context) (string, error) { return "p", nil }
		_, _ = Load(ctx, productKey, "1", loader)
		_, _ = Load(ctx, productKey, "1", loader)
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/1", nil))
	}

	require.Len(t, snk.messages, 2)
	for _, msg := range snk.messages {
		assert.Contains(t, msg, "Total number of loaded models: 2")
		assert.Contains(t, msg, "- ID: 1, Count: 2, Locations:")
	}
}

// TestMiddlewareLoggingInactive tests that the report stays off while the
// cache keeps deduplicating
// TestMiddlewareLoggingInactive 测试报告关闭时缓存仍然去重
func TestMiddlewareLoggingInactive(t *testing.T) {
	withProfiler(t, true)
	snk := &fakeSink{}
	cfg := &fakeConfig{flags: map[string]bool{}, values: map[string]string{}}

	var calls int
	handler := Middleware(cfg, snk)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		loader := func(ctx context.Context) (string, error) {
			calls++
			return "p", nil
		}
		_, _ = Load(ctx, productKey, "1", loader)
		_, _ = Load(ctx, productKey, "1", loader)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/1", nil))

	assert.Empty(t, snk.messages)
	assert.Equal(t, 1, calls)
}

// TestMiddlewareProfilerOff tests the process-wide gate
// TestMiddlewareProfilerOff 测试进程级开关
func TestMiddlewareProfilerOff(t *testing.T) {
	withProfiler(t, false)
	snk := &fakeSink{}

	handler := Middleware(activeConfig(), snk)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		loader := func(ctx context.Context) (string, error) { return "p", nil }
		_, _ = Load(ctx, productKey, "1", loader)
		_, _ = Load(ctx, productKey, "1", loader)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snk.messages)
}

// TestMiddlewareNoRepeats tests that single loads produce no report
// TestMiddlewareNoRepeats 测试没有重复加载时不产生报告
func TestMiddlewareNoRepeats(t *testing.T) {
	withProfiler(t, true)
	snk := &fakeSink{}

	handler := Middleware(activeConfig(), snk)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loader := func(ctx context.Context) (string, error) { return "p", nil }
		_, _ = Load(r.Context(), productKey, "1", loader)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/1", nil))

	assert.Empty(t, snk.messages)
}

// TestMiddlewareConcurrentHandler tests fan-out handlers recording safely
// TestMiddlewareConcurrentHandler 测试扇出处理器的安全记录
func TestMiddlewareConcurrentHandler(t *testing.T) {
	withProfiler(t, true)
	snk := &fakeSink{}

	handler := Middleware(activeConfig(), snk)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var wg sync.WaitGroup
		wg.Add(10)
		for i := 0; i < 10; i++ {
			go func() {
				defer wg.Done()
				_, _ = Load(ctx, productKey, "1", func(ctx context.Context) (string, error) {
					return "p", nil
				})
			}()
		}
		wg.Wait()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/1", nil))

	require.Len(t, snk.messages, 1)
	assert.Contains(t, snk.messages[0], "Total number of loaded models: 10")
	assert.Contains(t, snk.messages[0], "- ID: 1, Count: 10, Locations:")
}

// TestMiddlewareLogsSummary tests the per-request summary line
// TestMiddlewareLogsSummary 测试按请求的摘要日志
func TestMiddlewareLogsSummary(t *testing.T) {
	withProfiler(t, true)
	snk := &fakeSink{}
	fl := &fakeLogger{}

	handler := Middleware(activeConfig(), snk, WithLogger(fl))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loader := func(ctx context.Context) (string, error) { return "p", nil }
		_, _ = Load(r.Context(), productKey, "1", loader)
		_, _ = Load(r.Context(), productKey, "2", loader)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/1", nil))

	require.Len(t, fl.infos, 1)
	assert.Contains(t, fl.infos[0], "2 model loads")
}

// TestRequestURL tests URL reconstruction from the request
// TestRequestURL 测试从请求重建 URL
func TestRequestURL(t *testing.T) {
	plain := httptest.NewRequest(http.MethodGet, "/checkout?step=1", nil)
	u := &requestURL{r: plain}
	assert.Equal(t, "http://example.com/checkout?step=1", u.CurrentURL())

	secure := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	secure.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://example.com/checkout", (&requestURL{r: secure}).CurrentURL())
}

// TestDiagnosticsFacade tests the non-HTTP integration surface
// TestDiagnosticsFacade 测试非 HTTP 集成入口
func TestDiagnosticsFacade(t *testing.T) {
	withProfiler(t, true)
	snk := &fakeSink{}
	d := NewDiagnostics(activeConfig(), snk, nil)

	frames := make([]sdk.Frame, 6)
	for i := range frames {
		frames[i] = sdk.Frame{File: fmt.Sprintf("/x/f%d.go", i), Line: 10 + i}
	}

	d.Record("catalog/product", "7", frames)
	d.Record("catalog/product", "7", frames)
	assert.Equal(t, 2, d.TotalLoaded())

	d.Flush()
	require.Len(t, snk.messages, 1)
	assert.Contains(t, snk.messages[0], "- ID: 7, Count: 2, Locations:")
	assert.Contains(t, snk.messages[0], "/x/f5.go:15")

	// Flush is terminal: nothing else is emitted or recorded.
	// Flush 是终点：不再输出或记录。
	d.Flush()
	d.Record("catalog/product", "7", frames)
	assert.Len(t, snk.messages, 1)
	assert.Equal(t, 2, d.TotalLoaded())
}

// TestMiddlewareInterfaces verifies interface compliance
// TestMiddlewareInterfaces 验证接口实现
func TestMiddlewareInterfaces(t *testing.T) {
	var _ sdk.Diagnostics = (*Diagnostics)(nil)
	var _ sdk.LoadListener = (*diagListener)(nil)
	var _ sdk.URLSource = (*requestURL)(nil)
	var _ sdk.Logger = (*fakeLogger)(nil)
}
