package config

import (
	"fmt"
	"strings"
)

/**
 * lookupPath walks the raw configuration tree along "/"-separated segments.
 * lookupPath 按 "/" 分隔的路径段遍历原始配置树。
 */
func lookupPath(tree map[string]any, path string) (any, bool) {
	if tree == nil || path == "" {
		return nil, false
	}

	segments := strings.Split(path, "/")
	var current any = tree

	for _, segment := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

/**
 * flagValue interprets a raw scalar as a boolean flag.
 * String values follow the usual truthy spellings ("1", "true", "on", "yes").
 * flagValue 将原始标量解释为布尔开关。
 * 字符串值遵循常见的真值写法（"1"、"true"、"on"、"yes"）。
 */
func flagValue(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "1", "true", "on", "yes":
			return true
		}
		return false
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	default:
		return false
	}
}

/**
 * mergeTrees overlays src onto dst, recursing into nested mappings.
 * mergeTrees 将 src 叠加到 dst 上，递归处理嵌套映射。
 */
func mergeTrees(dst, src map[string]any) {
	for key, value := range src {
		if srcSub, ok := value.(map[string]any); ok {
			if dstSub, ok := dst[key].(map[string]any); ok {
				mergeTrees(dstSub, srcSub)
				continue
			}
		}
		dst[key] = value
	}
}

/**
 * stringValue renders a raw scalar as a string. Maps and slices yield "".
 * stringValue 将原始标量渲染为字符串。映射和切片返回 ""。
 */
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool, int, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}
