package stack

import (
	"runtime"

	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

// maxCaptureDepth caps how many frames a single capture walks.
// maxCaptureDepth 限制单次捕获遍历的帧数。
const maxCaptureDepth = 32

// Provider captures call stacks via the runtime.
// The provider's own frame is the innermost entry, which keeps the
// instrumentation dispatch depth constant for downstream windowing.
// Provider 通过 runtime 捕获调用栈。
// 提供者自身的帧是最内层条目，使插桩分发深度对下游窗口保持恒定。
type Provider struct{}

// NewProvider creates a stack provider.
// NewProvider 创建栈提供者。
func NewProvider() *Provider {
	return &Provider{}
}

// Callers returns the current call stack, innermost first.
// Inlined calls are expanded to logical frames. Never fails; an empty
// slice means the runtime gave nothing back.
// Callers 返回当前调用栈，最内层在前。
// 内联调用会展开为逻辑帧。永不失败；空切片表示 runtime 未返回任何内容。
func (p *Provider) Callers() []sdk.Frame {
	pcs := make([]uintptr, maxCaptureDepth)
	// Skip only runtime.Callers itself so this method stays frame 0.
	// 仅跳过 runtime.Callers 自身，使本方法保持为第 0 帧。
	n := runtime.Callers(1, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]sdk.Frame, 0, n)
	for {
		frame, more := frames.Next()
		if frame.File != "" {
			out = append(out, sdk.Frame{File: frame.File, Line: frame.Line})
		}
		if !more {
			break
		}
	}
	return out
}
