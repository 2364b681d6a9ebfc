package modelcache

import "fmt"

const keyDelimiter = "\x00"

// Key is a strongly-typed cache key carrying a logical entity type name.
// The Go type T is encoded into the underlying store key, so two keys with
// the same name but different types never collide.
// Key 是携带逻辑实体类型名的强类型缓存键。
// Go 类型 T 会被编码进底层存储键，因此同名不同类型的键永不冲突。
type Key[T any] struct {
	typeName string
	prefix   string
}

// NewKey creates a typed key for the given entity type name, e.g.
// NewKey[*Product]("catalog/product"). The name is the identifier that
// appears in diagnostics reports and metrics labels.
// NewKey 为给定的实体类型名创建类型化的键，例如
// NewKey[*Product]("catalog/product")。该名称会出现在诊断报告和指标标签中。
func NewKey[T any](typeName string) Key[T] {
	var zero T
	return Key[T]{
		typeName: typeName,
		prefix:   fmt.Sprintf("%T:%s", zero, typeName),
	}
}

// TypeName returns the logical entity type name.
// TypeName 返回逻辑实体类型名。
func (k Key[T]) TypeName() string { return k.typeName }

func (k Key[T]) storeKey(id string) string {
	return k.prefix + keyDelimiter + id
}
