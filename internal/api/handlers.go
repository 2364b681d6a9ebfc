package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deheerhoreca/Aoe-ModelCache/pkg/modelcache"
	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"

	errs "github.com/deheerhoreca/Aoe-ModelCache/pkg/errors"
)

var (
	productKey  = modelcache.NewKey[Product]("catalog/product")
	customerKey = modelcache.NewKey[Customer]("customer/customer")
	sessionKey  = modelcache.NewKey[string]("core/session")
)

// demoCart is the fixed cart the /cart page renders. The duplicates are
// the point: each line item loads its product again, like row templates
// that never heard of one another.
// demoCart 是 /cart 页面渲染的固定购物车。重复项正是重点：
// 每个行项目都会再次加载其商品，就像互不知晓的行模板。
var demoCart = []string{"1001", "1002", "1001", "1003", "1001"}

// session fakes the session bootstrap every storefront page performs.
// A natural target for an exclusion rule on Type == "core/session": with
// the rule in place the loader below runs on every touch instead of once.
// session 模拟每个商店页面都会执行的会话引导。
// 是 Type == "core/session" 排除规则的天然目标：规则生效时，
// 下面的加载器每次触达都会执行，而不是只执行一次。
func (s *Server) session(r *http.Request) (string, error) {
	return modelcache.Load(r.Context(), sessionKey, "frontend", func(context.Context) (string, error) {
		s.sessionStarts.Add(1)
		return "sess-" + r.RemoteAddr, nil
	})
}

// loadProduct is one page block fetching a product through the request cache.
// loadProduct 是一个通过请求缓存获取商品的页面区块。
func (s *Server) loadProduct(ctx context.Context, id string) (Product, error) {
	return modelcache.Load(ctx, productKey, id, func(ctx context.Context) (Product, error) {
		return s.store.Product(ctx, id)
	})
}

// loadCustomer is one page block fetching a customer through the request cache.
// loadCustomer 是一个通过请求缓存获取客户的页面区块。
func (s *Server) loadCustomer(ctx context.Context, id string) (Customer, error) {
	return modelcache.Load(ctx, customerKey, id, func(ctx context.Context) (Customer, error) {
		return s.store.Customer(ctx, id)
	})
}

// handleIndex lists the demo routes.
// handleIndex 列出演示路由。
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"service": "modelcache demo storefront",
		"routes": []string{
			"/product?id=1001",
			"/customer?id=1",
			"/cart",
			"/api/health",
			"/api/stats",
			"/metrics",
		},
	})
}

// handleProduct renders a product page: the session bootstrap, a main
// block, a price block and a stock block. Three of those ask for the same
// product.
// handleProduct 渲染商品页：会话引导、主区块、价格区块和库存区块。
// 其中三个请求同一个商品。
func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if _, err := s.session(r); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	product, err := s.loadProduct(ctx, id)
	if err != nil {
		writeLoadError(w, err)
		return
	}

	// The price and stock blocks fetch the product again on their own,
	// exactly the redundancy the report is built to surface.
	// 价格和库存区块各自再次获取商品，这正是报告要暴露的冗余。
	priced, err := s.loadProduct(ctx, id)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	stocked, err := s.loadProduct(ctx, id)
	if err != nil {
		writeLoadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"product":     product,
		"price_cents": priced.Price,
		"in_stock":    stocked.Stock > 0,
	})
}

// handleCustomer renders an account page: session bootstrap, a header
// block greeting the customer and an account block showing the details.
// handleCustomer 渲染账户页：会话引导、问候客户的页眉区块和展示详情的账户区块。
func (s *Server) handleCustomer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if _, err := s.session(r); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	header, err := s.loadCustomer(ctx, id)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	account, err := s.loadCustomer(ctx, id)
	if err != nil {
		writeLoadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"greeting": "Hello, " + header.Name,
		"customer": account,
	})
}

// handleCart renders the cart: session bootstrap, the signed-in customer
// for the header and the totals block, then one product load per line
// item including the duplicates.
// handleCart 渲染购物车：会话引导、页眉和合计区块的登录客户、
// 然后每个行项目加载一次商品，包括重复项。
func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	if _, err := s.session(r); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	header, err := s.loadCustomer(ctx, "1")
	if err != nil {
		writeLoadError(w, err)
		return
	}

	var totalCents int64
	items := make([]map[string]any, 0, len(demoCart))
	for _, id := range demoCart {
		p, err := s.loadProduct(ctx, id)
		if err != nil {
			writeLoadError(w, err)
			return
		}
		totalCents += p.Price
		items = append(items, map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"price_cents": p.Price,
		})
	}

	// Totals block greets the customer once more, and the footer touches
	// the session again.
	// 合计区块再次问候客户，页脚再次触达会话。
	owner, err := s.loadCustomer(ctx, "1")
	if err != nil {
		writeLoadError(w, err)
		return
	}
	if _, err := s.session(r); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"customer":    header.Name,
		"group":       owner.Group,
		"items":       items,
		"total_cents": totalCents,
	})
}

// handleHealth reports the instrumentation switches alongside liveness.
// handleHealth 在存活状态之外报告插桩开关。
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	mcCfg := s.manager.GetModelCacheConfig()
	cacheCfg := s.manager.GetCacheConfig()

	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":           "ok",
		"profiler_enabled": sdk.ProfilerEnabled(),
		"log_active":       mcCfg.LogActive,
		"cache_enabled":    cacheCfg.Enabled,
		"exclusion_rules":  len(cacheCfg.Exclude),
	})
}

// handleStats shows how many backend reads the store actually served.
// Compare against the load counters in /metrics to see the cache working.
// handleStats 展示存储实际服务的后端读取次数。
// 与 /metrics 中的加载计数器对比即可看到缓存在工作。
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(map[string]any{
		"backend_fetches": s.store.Fetches(),
		"session_starts":  s.sessionStarts.Load(),
		"products":        len(s.store.ProductIDs()),
	})
}

// writeLoadError maps a failed entity load onto the right status code.
// writeLoadError 将失败的实体加载映射到正确的状态码。
func writeLoadError(w http.ResponseWriter, err error) {
	if errors.Is(err, errs.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
