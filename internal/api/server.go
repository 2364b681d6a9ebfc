package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/config"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/rules"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/logger"
	"github.com/deheerhoreca/Aoe-ModelCache/pkg/modelcache"
	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

// Server is the demo storefront. Its handlers load the same entities
// several times per request on purpose, the way separate page blocks on a
// real shop do, so the repeated-load report has something to show.
// Server 是演示商店。其处理器故意在每个请求中多次加载相同实体，
// 就像真实商店的独立页面区块那样，让重复加载报告有内容可展示。
type Server struct {
	manager *config.Manager
	snk     sdk.Sink
	engine  *rules.Engine
	store   *Store
	server  *http.Server

	// sessionStarts counts how often the session loader actually ran.
	// With the usual core/session exclusion rule it runs on every touch.
	// sessionStarts 统计会话加载器实际执行的次数。
	// 在常见的 core/session 排除规则下，每次触达都会执行。
	sessionStarts atomic.Int64
}

// NewServer creates a storefront server. The engine may be nil, in which
// case no loads are excluded from caching.
// NewServer 创建商店服务器。engine 可以为 nil，此时没有加载被排除出缓存。
func NewServer(manager *config.Manager, snk sdk.Sink, engine *rules.Engine) *Server {
	return &Server{
		manager: manager,
		snk:     snk,
		engine:  engine,
		store:   NewStore(),
	}
}

// Handler builds the full route tree. Storefront pages run inside the
// model-load middleware; health, stats and metrics stay outside it so
// probes never show up in reports.
// Handler 构建完整路由树。商店页面运行在模型加载中间件内；
// 健康、统计和指标端点在其外，探针不会出现在报告中。
func (s *Server) Handler() http.Handler {
	shop := http.NewServeMux()
	shop.HandleFunc("/", s.handleIndex)
	shop.HandleFunc("/product", s.handleProduct)
	shop.HandleFunc("/customer", s.handleCustomer)
	shop.HandleFunc("/cart", s.handleCart)

	cacheCfg := s.manager.GetCacheConfig()
	opts := []modelcache.Option{
		modelcache.WithCaching(cacheCfg.Enabled),
		modelcache.WithMetrics(cacheCfg.Metrics),
		modelcache.WithLogger(logger.Get(context.Background())),
	}
	if s.engine != nil {
		opts = append(opts, modelcache.WithRules(s.engine))
	}
	instrumented := modelcache.Middleware(s.manager, s.snk, opts...)(shop)

	root := http.NewServeMux()
	root.Handle("/", instrumented)
	root.HandleFunc("/api/health", s.handleHealth)
	root.HandleFunc("/api/stats", s.handleStats)
	if s.manager.GetServeConfig().Metrics {
		root.Handle("/metrics", promhttp.Handler())
	}
	return root
}

// Start listens on the configured port and serves until Stop is called.
// A closed listener is a normal shutdown, not an error.
// Start 在配置的端口上监听并服务，直到调用 Stop。
// 监听器关闭属于正常停机，不是错误。
func (s *Server) Start() error {
	port := s.manager.GetServeConfig().Port
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get(context.Background()).Infof("[OK] Storefront listening on http://localhost:%d", port)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down.
// Stop 排空进行中的请求并关闭监听器。
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Reload re-reads the config file and swaps the exclusion rules in place.
// Running requests keep the rules they started with; a broken rule set
// leaves the previous one active.
// Reload 重新读取配置文件并原地替换排除规则。
// 进行中的请求继续使用其开始时的规则；损坏的规则集保留旧规则。
func (s *Server) Reload() error {
	if err := s.manager.LoadConfig(); err != nil {
		return err
	}
	if s.engine == nil {
		return nil
	}
	return s.engine.Update(s.manager.GetCacheConfig().Exclude)
}
