package config

import (
	"sync"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/runtime"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/logger"
)

// Configurable represents the interface for configuration management
// Configurable 表示配置管理的接口
type Configurable interface {
	LoadConfig() error
	SaveConfig() error
	GetConfig() *GlobalConfig
	UpdateConfig(*GlobalConfig)

	// Getters for specific configuration sections
	GetModelCacheConfig() *ModelCacheConfig
	GetCacheConfig() *CacheConfig
	GetSinkConfig() *SinkConfig
	GetLoggingConfig() *logger.LoggingConfig
	GetServeConfig() *ServeConfig

	// Setters for specific configuration sections
	SetModelCacheConfig(ModelCacheConfig)
	SetCacheConfig(CacheConfig)

	// Store path lookups ("/"-separated)
	Flag(path string) bool
	Value(path string) string

	// Utility methods
	GetConfigPath() string
	Validate() error
}

var (
	managerInstance *Manager
	managerOnce     sync.Once
)

// GetManager returns the process-wide manager bound to the resolved config path.
// GetManager 返回绑定到已解析配置路径的进程级管理器。
func GetManager() *Manager {
	managerOnce.Do(func() {
		managerInstance = NewManager(GetConfigPath())
	})
	return managerInstance
}

// GetDefaultConfigPath returns the default configuration file path
// GetDefaultConfigPath 返回默认配置文件路径
func GetDefaultConfigPath() string {
	return DefaultConfigPath
}

// GetConfigPath returns the configuration file path
// If runtime.ConfigPath is set (e.g., via CLI flag or test), it takes precedence.
// GetConfigPath 返回配置文件路径
// 如果 runtime.ConfigPath 已设置（例如通过 CLI 标志或测试），则优先使用它。
func GetConfigPath() string {
	if runtime.ConfigPath != "" {
		return runtime.ConfigPath
	}
	return DefaultConfigPath
}
