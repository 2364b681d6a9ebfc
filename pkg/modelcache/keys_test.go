package modelcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewKey tests typed key construction
// TestNewKey 测试类型化键的构造
func TestNewKey(t *testing.T) {
	key := NewKey[string]("catalog/product")
	assert.Equal(t, "catalog/product", key.TypeName())
}

// TestKeyTypesDoNotCollide tests that same-named keys of different types
// map to different store keys
// TestKeyTypesDoNotCollide 测试同名不同类型的键映射到不同的存储键
func TestKeyTypesDoNotCollide(t *testing.T) {
	ka := NewKey[string]("thing")
	kb := NewKey[int]("thing")

	assert.NotEqual(t, ka.storeKey("1"), kb.storeKey("1"))
	assert.NotEqual(t, ka.storeKey("1"), ka.storeKey("2"))
	assert.Equal(t, ka.storeKey("1"), NewKey[string]("thing").storeKey("1"))
}
