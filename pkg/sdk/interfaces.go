package sdk

// =============================================================================
// Core Interfaces - 核心接口
// =============================================================================

// Configuration paths consumed by the diagnostics component.
// The slash-separated form mirrors the store paths of the original extension.
// 诊断组件使用的配置路径。
// 斜杠分隔的形式沿用原扩展的存储路径。
const (
	// PathLogActive is the master switch gating both recording and reporting.
	// PathLogActive 是同时控制记录和报告的主开关。
	PathLogActive = "dev/aoe_modelcache/log_active"

	// PathLogFile names the destination file for the emitted report.
	// PathLogFile 指定报告输出的目标文件。
	PathLogFile = "dev/aoe_modelcache/log_file"

	// PathBaseDir is the directory prefix stripped from call-site locations
	// before display. Empty means the process working directory.
	// PathBaseDir 是显示前从调用位置中剥离的目录前缀。
	// 为空表示进程工作目录。
	PathBaseDir = "dev/aoe_modelcache/base_dir"
)

// Config is a key-value configuration lookup by slash-separated path.
// Lookups never fail: a missing path yields the zero value.
// Config 是按斜杠分隔路径进行的键值配置查询。
// 查询永不失败：缺失的路径返回零值。
type Config interface {
	// Flag returns the boolean value stored at path, false when absent.
	// Flag 返回 path 处存储的布尔值，缺失时返回 false。
	Flag(path string) bool

	// Value returns the string value stored at path, "" when absent.
	// Value 返回 path 处存储的字符串值，缺失时返回 ""。
	Value(path string) string
}

// Sink is an append-only writer of text blobs to named log files.
// Implementations resolve relative file names against their own base
// directory and own the durability and rotation policy.
// Sink 是将文本块追加写入命名日志文件的写入器。
// 实现负责将相对文件名解析到自己的基础目录，并决定持久化与轮转策略。
type Sink interface {
	// Append writes message to the named file followed by a newline.
	// Append 将 message 写入命名文件并追加换行。
	Append(file string, message string) error
}

// Frame is one entry of a captured call stack.
// A zero Line means the line is unknown; an empty File means the frame
// could not be resolved at all.
// Frame 是捕获的调用栈中的一个条目。
// Line 为 0 表示行号未知；File 为空表示该帧完全无法解析。
type Frame struct {
	File string
	Line int
}

// FrameProvider captures the call stack of the calling goroutine.
// FrameProvider 捕获调用 goroutine 的调用栈。
type FrameProvider interface {
	// Callers returns the stack innermost-first, starting at its own caller.
	// A short or empty result is valid; capture never fails.
	// Callers 返回由内向外的调用栈，从它自身的调用者开始。
	// 结果可以很短或为空；捕获永不失败。
	Callers() []Frame
}

// URLSource reports the URL of the request being diagnosed.
// URLSource 报告被诊断请求的 URL。
type URLSource interface {
	CurrentURL() string
}

// Diagnostics is the repeated-load detector attached to one request.
// A Diagnostics instance belongs to a single request and, like the rest of
// the per-request state, assumes the one-goroutine-per-request model; callers
// that fan out must serialize access themselves.
// Diagnostics 是附加到单个请求的重复加载检测器。
// 一个实例只属于一个请求，并假设每请求单 goroutine 模型；
// 并发扇出的调用方必须自行串行化访问。
type Diagnostics interface {
	// Record notes one load of (entityType, identifier) together with the
	// captured call stack. It never fails and never blocks.
	// Record 记录一次 (entityType, identifier) 的加载及其调用栈。
	// 它永不失败也永不阻塞。
	Record(entityType string, identifier string, frames []Frame)

	// Flush builds and emits the end-of-request report. It is invoked
	// exactly once, at request teardown, and must never disturb it.
	// Flush 构建并输出请求结束报告。它在请求拆除时恰好调用一次，
	// 且绝不能干扰拆除流程。
	Flush()

	// TotalLoaded returns the number of loads recorded so far, including
	// entries that would be filtered from the report.
	// TotalLoaded 返回到目前为止记录的加载次数，包括会被报告过滤掉的条目。
	TotalLoaded() int
}

// Logger defines the logging interface for library components.
// It abstracts the underlying logging implementation to allow flexibility.
// Logger 为库组件定义日志接口。
// 它抽象了底层的日志实现，以允许灵活性。
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
