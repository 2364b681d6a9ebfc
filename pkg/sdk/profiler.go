package sdk

import (
	"os"
	"strings"
	"sync/atomic"
)

// ProfilerEnv is the environment variable that arms the diagnostics gate for
// the whole process. It is read once at startup; afterwards the gate can only
// be moved programmatically.
// ProfilerEnv 是为整个进程开启诊断门的环境变量。
// 它在启动时读取一次；之后只能通过编程方式切换。
const ProfilerEnv = "AOE_MODELCACHE_PROFILER"

var profilerOn atomic.Bool

func init() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(ProfilerEnv))) {
	case "1", "true", "on", "yes":
		profilerOn.Store(true)
	}
}

// ProfilerEnabled reports whether the process-wide diagnostics gate is open.
// This gate is independent of the per-request log_active configuration flag;
// both must allow reporting for a report to be emitted.
// ProfilerEnabled 报告进程级诊断门是否打开。
// 该门独立于按请求的 log_active 配置开关；两者都允许时才会输出报告。
func ProfilerEnabled() bool { return profilerOn.Load() }

// EnableProfiler opens the diagnostics gate for the current process.
// EnableProfiler 为当前进程打开诊断门。
func EnableProfiler() { profilerOn.Store(true) }

// DisableProfiler closes the diagnostics gate for the current process.
// DisableProfiler 为当前进程关闭诊断门。
func DisableProfiler() { profilerOn.Store(false) }
