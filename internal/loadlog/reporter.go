package loadlog

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

// urlBannerWidth is the total width the request URL banner is padded to.
// urlBannerWidth 是请求 URL 横幅填充到的总宽度。
const urlBannerWidth = 220

// Reporter turns a finished collector's log into the end-of-request report
// and appends it to the sink. It is stateless and may be shared.
// Reporter 将收集完成的日志转换为请求结束报告并追加到输出器。
// 它是无状态的，可以共享。
type Reporter struct {
	cfg  sdk.Config
	sink sdk.Sink
}

// NewReporter creates a reporter writing through snk.
// NewReporter 创建通过 snk 写出的报告器。
func NewReporter(cfg sdk.Config, snk sdk.Sink) *Reporter {
	return &Reporter{
		cfg:  cfg,
		sink: snk,
	}
}

// Flush ends c's request and emits the repeated-loads report. The collector
// stops accepting records regardless of whether anything is emitted.
// Emission is skipped silently when the process-wide profiler gate is off,
// when logging is switched off in config, or when no identifier was loaded
// more than once. Sink failures are the sink's own business; flush never
// fails and never disturbs request teardown.
// Flush 结束 c 的请求并输出重复加载报告。无论是否有输出，收集器都不再接受记录。
// 当进程级分析开关关闭、配置中日志开关关闭、或没有任何标识符被加载超过一次时，
// 静默跳过输出。输出器的失败由输出器自行处理；flush 永不失败，也不影响请求收尾。
func (r *Reporter) Flush(c *Collector, rawURL string) {
	log := c.finish()
	if log == nil {
		return
	}

	if !sdk.ProfilerEnabled() {
		return
	}
	if r.cfg == nil || !r.cfg.Flag(sdk.PathLogActive) {
		return
	}

	// Two passes: filter into a private copy first, then format from it.
	// 两遍处理：先过滤到私有副本，再从副本格式化。
	repeated := log.Repeated()
	if repeated.IsEmpty() {
		return
	}

	envelope := r.render(rawURL, log.Total(), repeated)
	_ = r.sink.Append(r.cfg.Value(sdk.PathLogFile), envelope)
}

// render assembles the report envelope: a leading blank line, the padded
// request URL, the total counter and the repeated-loads block, separated by
// blank lines.
// render 组装报告信封：前导空行、填充后的请求 URL、总计数器和重复加载块，
// 以空行分隔。
func (r *Reporter) render(rawURL string, total int, repeated *LoadLog) string {
	sections := []string{
		centerPad(html.UnescapeString(rawURL), urlBannerWidth, "-"),
		fmt.Sprintf("Total number of loaded models: %d", total),
		r.renderBlock(repeated),
	}
	return "\n" + strings.Join(sections, "\n\n")
}

// renderBlock renders the repeated-loads section in log insertion order.
// renderBlock 按日志插入顺序渲染重复加载部分。
func (r *Reporter) renderBlock(repeated *LoadLog) string {
	prefix := r.locationPrefix()

	lines := []string{"Repeated model loads:"}
	for _, typeName := range repeated.Types() {
		lines = append(lines, typeName+":")
		for _, entry := range repeated.Entries(typeName) {
			lines = append(lines, fmt.Sprintf("- ID: %s, Count: %d, Locations:", entry.ID, len(entry.Sites)))
			for _, site := range entry.Sites {
				lines = append(lines, "  - "+strings.TrimPrefix(site, prefix))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// locationPrefix resolves the directory prefix stripped from call sites:
// the configured base dir, defaulting to the working directory. A trailing
// separator is ensured so stripped paths come out relative.
// locationPrefix 解析从调用位置移除的目录前缀：配置的基础目录，默认为工作目录。
// 确保末尾带分隔符，使移除后的路径为相对路径。
func (r *Reporter) locationPrefix() string {
	base := ""
	if r.cfg != nil {
		base = r.cfg.Value(sdk.PathBaseDir)
	}
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		base = wd
	}
	if !strings.HasSuffix(base, string(os.PathSeparator)) {
		base += string(os.PathSeparator)
	}
	return base
}

// centerPad pads s on both sides with pad up to width. An odd remainder
// lands on the right. Strings at or over width come back untouched.
// centerPad 用 pad 将 s 两侧填充到 width。余数为奇数时多出的填充在右侧。
// 达到或超过宽度的字符串原样返回。
func centerPad(s string, width int, pad string) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	right := gap - left
	return strings.Repeat(pad, left) + s + strings.Repeat(pad, right)
}
