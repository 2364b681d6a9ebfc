package api

import (
	"context"
	"sync"
	"sync/atomic"

	errs "github.com/deheerhoreca/Aoe-ModelCache/pkg/errors"
)

// Product is a demo catalog entity.
// Product 是演示目录实体。
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price_cents"`
	Stock int    `json:"stock"`
}

// Customer is a demo account entity.
// Customer 是演示账户实体。
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Group string `json:"group"`
}

// Store is the in-memory backend the demo handlers load entities from.
// Every fetch is counted, so tests and the /api/stats endpoint can show
// how many backend hits the request cache saved.
// Store 是演示处理器加载实体的内存后端。
// 每次取数都会计数，测试和 /api/stats 端点可以展示请求缓存省掉了多少次后端访问。
type Store struct {
	mu        sync.RWMutex
	products  map[string]Product
	customers map[string]Customer
	fetches   atomic.Int64
}

// NewStore returns a store seeded with demo catalog and account data.
// NewStore 返回填充了演示目录和账户数据的存储。
func NewStore() *Store {
	s := &Store{
		products:  make(map[string]Product),
		customers: make(map[string]Customer),
	}

	for _, p := range []Product{
		{ID: "1001", Name: "Espresso Machine", Price: 64900, Stock: 12},
		{ID: "1002", Name: "Burr Grinder", Price: 18900, Stock: 30},
		{ID: "1003", Name: "Milk Pitcher", Price: 2400, Stock: 85},
		{ID: "1004", Name: "Tamper 58mm", Price: 3900, Stock: 41},
	} {
		s.products[p.ID] = p
	}

	for _, c := range []Customer{
		{ID: "1", Name: "Alice de Heer", Email: "alice@example.com", Group: "wholesale"},
		{ID: "2", Name: "Bram Horeca", Email: "bram@example.com", Group: "retail"},
	} {
		s.customers[c.ID] = c
	}

	return s
}

// Product fetches one product by identifier.
// Product 按标识符取出一个商品。
func (s *Store) Product(_ context.Context, id string) (Product, error) {
	s.fetches.Add(1)

	s.mu.RLock()
	p, ok := s.products[id]
	s.mu.RUnlock()

	if !ok {
		return Product{}, errs.NewNotFoundError("catalog/product", id)
	}
	return p, nil
}

// Customer fetches one customer by identifier.
// Customer 按标识符取出一个客户。
func (s *Store) Customer(_ context.Context, id string) (Customer, error) {
	s.fetches.Add(1)

	s.mu.RLock()
	c, ok := s.customers[id]
	s.mu.RUnlock()

	if !ok {
		return Customer{}, errs.NewNotFoundError("customer/customer", id)
	}
	return c, nil
}

// ProductIDs returns all product identifiers in no particular order.
// ProductIDs 返回所有商品标识符，顺序不定。
func (s *Store) ProductIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	return ids
}

// Fetches reports how many backend reads the store has served.
// Fetches 报告存储已服务的后端读取次数。
func (s *Store) Fetches() int64 {
	return s.fetches.Load()
}
