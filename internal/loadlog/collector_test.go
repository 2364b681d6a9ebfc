package loadlog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

// fakeConfig is a map-backed sdk.Config for tests.
// fakeConfig 是测试用的基于 map 的 sdk.Config。
type fakeConfig struct {
	flags  map[string]bool
	values map[string]string
}

func (f *fakeConfig) Flag(path string) bool {
	return f.flags[path]
}

func (f *fakeConfig) Value(path string) string {
	return f.values[path]
}

func activeConfig() *fakeConfig {
	return &fakeConfig{
		flags: map[string]bool{sdk.PathLogActive: true},
		values: map[string]string{
			sdk.PathLogFile: "model_loads.log",
			sdk.PathBaseDir: "/app/",
		},
	}
}

// userFrames builds a stack whose first user frame is file:line.
// userFrames 构建首个用户帧为 file:line 的栈。
func userFrames(file string, line int) []sdk.Frame {
	frames := make([]sdk.Frame, 0, dispatchFrameSkip+1)
	for i := 0; i < dispatchFrameSkip; i++ {
		frames = append(frames, sdk.Frame{File: "/lib/dispatch.go", Line: 100 + i})
	}
	return append(frames, sdk.Frame{File: file, Line: line})
}

// TestRecordCounts tests that every accepted record bumps the counter
// TestRecordCounts 测试每条被接受的记录都会递增计数器
func TestRecordCounts(t *testing.T) {
	c := NewCollector(activeConfig())

	c.Record("catalog/product", "7", userFrames("/app/a.go", 1))
	c.Record("catalog/product", "7", userFrames("/app/b.go", 2))
	c.Record("core/session", "s", userFrames("/app/c.go", 3))

	assert.Equal(t, 3, c.TotalLoaded())
}

// TestRecordDisabled tests that a switched-off flag suppresses recording
// TestRecordDisabled 测试开关关闭时不记录
func TestRecordDisabled(t *testing.T) {
	cfg := activeConfig()
	cfg.flags[sdk.PathLogActive] = false
	c := NewCollector(cfg)

	c.Record("catalog/product", "7", userFrames("/app/a.go", 1))
	c.Record("catalog/product", "7", userFrames("/app/b.go", 2))

	assert.Zero(t, c.TotalLoaded())
}

// TestRecordRuntimeToggle tests that the flag is re-read on every call
// TestRecordRuntimeToggle 测试每次调用都重新读取开关
func TestRecordRuntimeToggle(t *testing.T) {
	cfg := activeConfig()
	c := NewCollector(cfg)

	c.Record("a", "1", userFrames("/app/a.go", 1))

	cfg.flags[sdk.PathLogActive] = false
	c.Record("a", "1", userFrames("/app/b.go", 2))

	cfg.flags[sdk.PathLogActive] = true
	c.Record("a", "1", userFrames("/app/c.go", 3))

	assert.Equal(t, 2, c.TotalLoaded())
}

// TestRecordEmptyType tests the empty entity type no-op
// TestRecordEmptyType 测试空实体类型的空操作
func TestRecordEmptyType(t *testing.T) {
	c := NewCollector(activeConfig())

	c.Record("", "7", userFrames("/app/a.go", 1))

	assert.Zero(t, c.TotalLoaded())
}

// TestRecordEmptyIdentifier tests that empty identifiers are still recorded
// TestRecordEmptyIdentifier 测试空标识符仍被记录
func TestRecordEmptyIdentifier(t *testing.T) {
	c := NewCollector(activeConfig())

	c.Record("catalog/product", "", userFrames("/app/a.go", 1))

	assert.Equal(t, 1, c.TotalLoaded())
}

// TestRecordNilConfig tests a collector without configuration
// TestRecordNilConfig 测试没有配置的收集器
func TestRecordNilConfig(t *testing.T) {
	c := NewCollector(nil)

	c.Record("catalog/product", "7", userFrames("/app/a.go", 1))

	assert.Zero(t, c.TotalLoaded())
}

// TestRecordAfterFinish tests the terminal state
// TestRecordAfterFinish 测试终态
func TestRecordAfterFinish(t *testing.T) {
	c := NewCollector(activeConfig())
	c.Record("a", "1", userFrames("/app/a.go", 1))

	log := c.finish()
	assert.NotNil(t, log)

	c.Record("a", "1", userFrames("/app/b.go", 2))
	assert.Equal(t, 1, c.TotalLoaded())

	// Later finishes yield nothing
	// 之后的 finish 不再返回日志
	assert.Nil(t, c.finish())
}

// TestRecordShortStack tests that short stacks record as unknown
// TestRecordShortStack 测试短栈记录为 unknown
func TestRecordShortStack(t *testing.T) {
	c := NewCollector(activeConfig())

	c.Record("a", "1", nil)
	c.Record("a", "1", numberedFrames(3))

	log := c.finish()
	entries := log.Entries("a")
	assert.Equal(t, []string{"unknown", "unknown"}, entries[0].Sites)
}
