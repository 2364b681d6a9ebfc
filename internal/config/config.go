package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/rules"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/fileutil"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/logger"
	errs "github.com/deheerhoreca/Aoe-ModelCache/pkg/errors"
)

// DefaultConfigTemplate defines the default configuration file structure with bilingual comments.
// This template is used by `modelcache init` to create new config files.
const DefaultConfigTemplate = `# ModelCache Configuration File / ModelCache 配置文件
#

# Developer Instrumentation / 开发者插桩配置
dev:
  aoe_modelcache:
    # Master switch: record model loads and emit the end-of-request report.
    # 主开关：记录模型加载并在请求结束时输出报告。
    log_active: false

    # Report file name. Relative names resolve under sink.base_dir.
    # 报告文件名。相对名称基于 sink.base_dir 解析。
    log_file: "model_loads.log"

    # Base directory stripped from code locations in the report.
    # If empty, the working directory at startup is used.
    # 报告中从代码位置移除的基础目录。为空时使用启动时的工作目录。
    base_dir: ""

# Request Cache Configuration / 请求缓存配置
cache:
  # Deduplicate identical loads within one request.
  # 在单个请求内对相同的加载去重。
  enabled: true

  # Expose prometheus counters for cache hits/misses.
  # 暴露缓存命中/未命中的 prometheus 计数器。
  metrics: true

  # Exclusion rules: expressions over {Type, ID}. Matching loads bypass the cache.
  # 排除规则：基于 {Type, ID} 的表达式。匹配的加载绕过缓存。
  exclude: []
  # Example / 示例:
  # - 'Type == "core/session"'
  # - 'Type startsWith "checkout/" && ID != ""'

# Report Sink Configuration / 报告输出配置
sink:
  # Directory relative report file names resolve under.
  # 相对报告文件名解析的目录。
  base_dir: "/var/log/modelcache"

  # Rotation settings / 轮转设置
  # Max size in MB before rotation / 轮转前的最大大小 (MB)
  max_size: 10
  # Max number of old files to keep / 保留的旧文件最大数量
  max_backups: 3
  # Max number of days to keep old files / 保留旧文件的最大天数
  max_age: 30
  # Whether to compress old files / 是否压缩旧文件
  compress: true

# Logging Configuration / 日志配置
logging:
  enabled: false
  # Log level: debug, info, warn, error
  # 日志级别
  level: "info"
  # Log file path
  # 日志文件路径
  path: "/var/log/modelcache/modelcache.log"
  # Max size in MB before rotation / 轮转前的最大大小 (MB)
  max_size: 10
  # Max number of old files to keep / 保留的旧文件最大数量
  max_backups: 3
  # Max number of days to keep old files / 保留旧文件的最大天数
  max_age: 30
  # Whether to compress old files / 是否压缩旧文件
  compress: true

# Demo Storefront Configuration / 演示商店配置
serve:
  port: 18091
  # Expose /metrics on the same server.
  # 在同一服务器上暴露 /metrics。
  metrics: true
`

// GlobalConfig represents the top-level configuration structure.
// GlobalConfig 表示顶级配置结构。
type GlobalConfig struct {
	Dev     DevConfig            `yaml:"dev"`
	Cache   CacheConfig          `yaml:"cache"`
	Sink    SinkConfig           `yaml:"sink"`
	Logging logger.LoggingConfig `yaml:"logging"`
	Serve   ServeConfig          `yaml:"serve"`
}

// DevConfig groups developer instrumentation settings.
// DevConfig 组织开发者插桩设置。
type DevConfig struct {
	ModelCache ModelCacheConfig `yaml:"aoe_modelcache"`
}

// ModelCacheConfig controls the repeated-load report.
// ModelCacheConfig 控制重复加载报告。
type ModelCacheConfig struct {
	// Master switch for recording and report emission
	// LogActive: 记录与报告输出的主开关
	LogActive bool `yaml:"log_active"`
	// Report file name, relative names resolve under sink.base_dir
	// LogFile: 报告文件名，相对名称基于 sink.base_dir 解析
	LogFile string `yaml:"log_file"`
	// Prefix stripped from code locations; empty means working directory
	// BaseDir: 从代码位置移除的前缀；为空表示工作目录
	BaseDir string `yaml:"base_dir"`
}

// CacheConfig controls the request-scoped load cache.
// CacheConfig 控制请求级加载缓存。
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Metrics bool `yaml:"metrics"`
	// Expressions over {Type, ID}; matching loads bypass the cache
	// Exclude: 基于 {Type, ID} 的表达式；匹配的加载绕过缓存
	Exclude []string `yaml:"exclude"`
}

// SinkConfig controls where and how report files are written.
// SinkConfig 控制报告文件的写入位置和方式。
type SinkConfig struct {
	BaseDir    string `yaml:"base_dir"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// ServeConfig controls the demo storefront server.
// ServeConfig 控制演示商店服务器。
type ServeConfig struct {
	Port    int  `yaml:"port"`
	Metrics bool `yaml:"metrics"`
}

// DefaultGlobalConfig returns a configuration populated with defaults.
// DefaultGlobalConfig 返回填充了默认值的配置。
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Dev: DevConfig{
			ModelCache: ModelCacheConfig{
				LogActive: false,
				LogFile:   DefaultReportFile,
				BaseDir:   "",
			},
		},
		Cache: CacheConfig{
			Enabled: true,
			Metrics: true,
		},
		Sink: SinkConfig{
			BaseDir:    DefaultSinkDir,
			MaxSize:    10, // 10MB
			MaxBackups: 3,
			MaxAge:     30, // 30 days
			Compress:   true,
		},
		Logging: logger.LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Path:       DefaultLogPath,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
			Compress:   true,
		},
		Serve: ServeConfig{
			Port:    DefaultServePort,
			Metrics: true,
		},
	}
}

// ParseGlobalConfig parses YAML bytes over the defaults and validates the result.
// ParseGlobalConfig 在默认值之上解析 YAML 字节并验证结果。
func ParseGlobalConfig(data []byte) (*GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrConfigInvalid, err)
	}

	// Validate configuration / 验证配置
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadGlobalConfig loads the configuration from a YAML file.
// LoadGlobalConfig 从 YAML 文件加载配置。
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errs.ErrConfigNotFound, path)
		}
		return nil, err
	}

	return ParseGlobalConfig(data)
}

// SaveGlobalConfig writes the configuration to a YAML file atomically.
// SaveGlobalConfig 以原子方式将配置写入 YAML 文件。
func SaveGlobalConfig(path string, cfg *GlobalConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(path, data, 0600)
}

// Validate checks the configuration for errors.
// Validate 检查配置是否存在错误。
func (c *GlobalConfig) Validate() error {
	if err := c.Dev.ModelCache.Validate(); err != nil {
		return fmt.Errorf("dev.aoe_modelcache config error: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache config error: %w", err)
	}
	if err := c.Sink.Validate(); err != nil {
		return fmt.Errorf("sink config error: %w", err)
	}
	if err := c.Serve.Validate(); err != nil {
		return fmt.Errorf("serve config error: %w", err)
	}
	return nil
}

func (c *ModelCacheConfig) Validate() error {
	if c.LogFile == "" {
		c.LogFile = DefaultReportFile
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	// Compile-check exclusion rules so a broken expression fails at load
	// instead of at the first request.
	// 对排除规则做编译检查，让损坏的表达式在加载时而非首个请求时失败。
	return rules.Check(c.Exclude)
}

func (c *SinkConfig) Validate() error {
	if c.MaxSize < 0 {
		return errs.NewConfigError("sink.max_size", c.MaxSize)
	}
	if c.MaxBackups < 0 {
		return errs.NewConfigError("sink.max_backups", c.MaxBackups)
	}
	if c.MaxAge < 0 {
		return errs.NewConfigError("sink.max_age", c.MaxAge)
	}
	return nil
}

func (c *ServeConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errs.NewConfigError("serve.port", c.Port)
	}
	return nil
}
