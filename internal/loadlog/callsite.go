package loadlog

import (
	"strconv"
	"strings"

	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

const (
	// dispatchFrameSkip is the number of innermost frames that belong to the
	// instrumentation itself and never to user code. The value is coupled to
	// the dispatch chain stack.Provider.Callers → LoadListener.OnModelLoad →
	// Cache.notify → Cache.load → modelcache.Load and changes with it.
	// dispatchFrameSkip 是属于插桩自身而非用户代码的最内层帧数。
	// 该值与分发调用链耦合，随之变化。
	dispatchFrameSkip = 5

	// maxContextFrames is how many user frames one call site shows.
	// maxContextFrames 是单个调用位置展示的用户帧数量。
	maxContextFrames = 3

	// unknownSite stands in for frames the runtime could not attribute.
	// unknownSite 代替 runtime 无法归属的帧。
	unknownSite = "unknown"
)

// formatCallSite renders the user-code window of a captured stack: the
// innermost dispatch frames are skipped, then up to maxContextFrames are
// rendered as "file:line" and joined with ", ". Stacks too short to reach
// user code degrade to "unknown".
// formatCallSite 渲染捕获栈中的用户代码窗口：跳过最内层的分发帧，
// 然后将至多 maxContextFrames 帧渲染为 "file:line" 并以 ", " 连接。
// 栈太短而未达用户代码时降级为 "unknown"。
func formatCallSite(frames []sdk.Frame) string {
	if len(frames) <= dispatchFrameSkip {
		return unknownSite
	}

	window := frames[dispatchFrameSkip:]
	if len(window) > maxContextFrames {
		window = window[:maxContextFrames]
	}

	parts := make([]string, 0, len(window))
	for _, frame := range window {
		parts = append(parts, formatFrame(frame))
	}
	return strings.Join(parts, ", ")
}

// formatFrame renders one frame. File and line degrade independently:
// a missing file becomes "unknown", a missing line drops the ":line" suffix.
// formatFrame 渲染单个帧。文件和行号独立降级：
// 缺失文件变为 "unknown"，缺失行号省略 ":line" 后缀。
func formatFrame(frame sdk.Frame) string {
	file := frame.File
	if file == "" {
		file = unknownSite
	}
	if frame.Line <= 0 {
		return file
	}
	return file + ":" + strconv.Itoa(frame.Line)
}
