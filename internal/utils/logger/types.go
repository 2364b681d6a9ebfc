package logger

// LoggingConfig defines the configuration for the operational logger.
// This is the module's own logging, separate from the model-load report sink.
// LoggingConfig 定义运行日志配置。
// 这是模块自身的日志，与模型加载报告的输出文件相互独立。
type LoggingConfig struct {
	Enabled bool `yaml:"enabled"`
	// Enabled: 是否启用文件日志
	Level string `yaml:"level"`
	// Level: 日志级别（debug, info, warn, error）
	Path string `yaml:"path"`
	// Path: 日志文件路径
	MaxSize int `yaml:"max_size"`
	// MaxSize: 轮转前的最大大小（MB）
	MaxBackups int `yaml:"max_backups"`
	// MaxBackups: 保留的旧文件最大数量
	MaxAge int `yaml:"max_age"`
	// MaxAge: 保留旧文件的最大天数
	Compress bool `yaml:"compress"`
	// Compress: 是否压缩旧文件
}
