package sdk

// LoadEvent describes one logical entity load: a fetch-by-identifier against
// a loadable entity type. The type name is supplied explicitly by the caller;
// no runtime reflection is involved.
// LoadEvent 描述一次逻辑实体加载：按标识符获取某个可加载实体类型。
// 类型名由调用方显式提供，不涉及运行时反射。
type LoadEvent struct {
	// Type is the logical entity type name, e.g. "catalog/product".
	// Type 是逻辑实体类型名，例如 "catalog/product"。
	Type string

	// ID is the load key, treated as an opaque string even when numeric.
	// ID 是加载键，即使是数字也按不透明字符串处理。
	ID string
}

// LoadListener receives one notification per entity load. Dispatch is
// synchronous on the loading goroutine so listeners may inspect the caller's
// stack; a listener must therefore return quickly and never panic.
// LoadListener 在每次实体加载时收到一次通知。分发在加载 goroutine 上
// 同步进行，因此监听器可以检查调用方的栈；监听器必须快速返回且绝不 panic。
type LoadListener interface {
	OnModelLoad(ev LoadEvent)
}

// LoadListenerFunc adapts a plain function to the LoadListener interface.
// LoadListenerFunc 将普通函数适配为 LoadListener 接口。
type LoadListenerFunc func(ev LoadEvent)

// OnModelLoad calls f(ev).
func (f LoadListenerFunc) OnModelLoad(ev LoadEvent) { f(ev) }
