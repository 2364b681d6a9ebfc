package stack

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

// TestCallers tests stack capture ordering
// TestCallers 测试栈捕获顺序
func TestCallers(t *testing.T) {
	provider := NewProvider()
	frames := provider.Callers()

	require.NotEmpty(t, frames)
	require.GreaterOrEqual(t, len(frames), 2)

	// Frame 0 is the provider itself, frame 1 is this test
	// 第 0 帧是提供者自身，第 1 帧是本测试
	assert.Equal(t, "stack.go", filepath.Base(frames[0].File))
	assert.Equal(t, "stack_test.go", filepath.Base(frames[1].File))

	for i, frame := range frames {
		assert.NotEmpty(t, frame.File, "frame %d has no file", i)
		assert.Greater(t, frame.Line, 0, "frame %d has no line", i)
	}
}

// TestCallersThroughHelper tests that intermediate calls appear as frames
// TestCallersThroughHelper 测试中间调用会作为帧出现
func TestCallersThroughHelper(t *testing.T) {
	frames := captureViaHelper()

	require.GreaterOrEqual(t, len(frames), 3)
	assert.Equal(t, "stack.go", filepath.Base(frames[0].File))
	// Both the helper and the test body are logical frames even if inlined
	// 即使被内联，辅助函数和测试体也都是逻辑帧
	assert.Equal(t, "stack_test.go", filepath.Base(frames[1].File))
	assert.Equal(t, "stack_test.go", filepath.Base(frames[2].File))
	assert.NotEqual(t, frames[1].Line, frames[2].Line)
}

func captureViaHelper() []sdk.Frame {
	return NewProvider().Callers()
}

// TestCallersDepthCap tests the capture depth limit
// TestCallersDepthCap 测试捕获深度限制
func TestCallersDepthCap(t *testing.T) {
	frames := recurseThenCapture(maxCaptureDepth * 2)
	assert.LessOrEqual(t, len(frames), maxCaptureDepth+1)
}

func recurseThenCapture(depth int) []sdk.Frame {
	if depth == 0 {
		return NewProvider().Callers()
	}
	return recurseThenCapture(depth - 1)
}

// TestProviderImplementsInterface verifies interface compliance
// TestProviderImplementsInterface 验证接口实现
func TestProviderImplementsInterface(t *testing.T) {
	var _ sdk.FrameProvider = (*Provider)(nil)
}
