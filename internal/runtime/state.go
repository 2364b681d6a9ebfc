// Package runtime holds process-wide state set by CLI flags before the
// configuration layer is consulted.
// runtime 包保存在读取配置层之前由 CLI 标志设置的进程级状态。
package runtime

// ConfigPath overrides the default configuration file location when set,
// typically via the --config flag. config.GetConfigPath gives it precedence.
// ConfigPath 在被设置时（通常通过 --config 标志）覆盖默认配置文件位置。
// config.GetConfigPath 会优先使用它。
var ConfigPath string
