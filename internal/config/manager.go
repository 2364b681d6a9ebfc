package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/logger"
	errs "github.com/deheerhoreca/Aoe-ModelCache/pkg/errors"
)

// Manager handles all configuration-related operations in a centralized manner.
// It keeps the typed configuration alongside the raw YAML tree so that
// "/"-separated store paths resolve against the same bytes.
// Manager 以集中方式处理所有配置相关操作。
// 它同时持有类型化配置和原始 YAML 树，使 "/" 分隔的路径能基于同一份数据解析。
type Manager struct {
	configPath string
	mutex      sync.RWMutex
	config     *GlobalConfig
	raw        map[string]any
}

// NewManager creates a new configuration manager instance.
// NewManager 创建新的配置管理器实例。
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
	}
}

// LoadConfig loads the configuration from the specified path.
// LoadConfig 从指定路径加载配置。
func (m *Manager) LoadConfig() error {
	safePath := filepath.Clean(m.configPath) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", errs.ErrConfigNotFound, m.configPath)
		}
		return err
	}

	return m.LoadBytes(data)
}

// LoadBytes loads the configuration from raw YAML bytes.
// LoadBytes 从原始 YAML 字节加载配置。
func (m *Manager) LoadBytes(data []byte) error {
	cfg, err := ParseGlobalConfig(data)
	if err != nil {
		return err
	}

	tree, err := effectiveTree(cfg, data)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.config = cfg
	m.raw = tree
	return nil
}

// SaveConfig saves the current configuration to the specified path.
// SaveConfig 将当前配置保存到指定路径。
func (m *Manager) SaveConfig() error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.config == nil {
		return nil
	}

	return SaveGlobalConfig(m.configPath, m.config)
}

// GetConfig returns a copy of the current configuration.
// GetConfig 返回当前配置的副本。
func (m *Manager) GetConfig() *GlobalConfig {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.config == nil {
		return nil
	}

	// Return a copy to prevent external modifications
	cfgCopy := *m.config
	return &cfgCopy
}

// UpdateConfig replaces the current configuration.
// UpdateConfig 替换当前配置。
func (m *Manager) UpdateConfig(newConfig *GlobalConfig) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.config = newConfig
	m.rebuildRawLocked()
}

// GetModelCacheConfig returns the instrumentation configuration.
// GetModelCacheConfig 返回插桩配置。
func (m *Manager) GetModelCacheConfig() *ModelCacheConfig {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.config == nil {
		return nil
	}

	mcCfg := m.config.Dev.ModelCache
	return &mcCfg
}

// GetCacheConfig returns the request cache configuration.
// GetCacheConfig 返回请求缓存配置。
func (m *Manager) GetCacheConfig() *CacheConfig {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.config == nil {
		return nil
	}

	cacheCfg := m.config.Cache
	return &cacheCfg
}

// GetSinkConfig returns the report sink configuration.
// GetSinkConfig 返回报告输出配置。
func (m *Manager) GetSinkConfig() *SinkConfig {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.config == nil {
		return nil
	}

	sinkCfg := m.config.Sink
	return &sinkCfg
}

// GetLoggingConfig returns the logging configuration.
// GetLoggingConfig 返回日志配置。
func (m *Manager) GetLoggingConfig() *logger.LoggingConfig {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.config == nil {
		return nil
	}

	loggingCfg := m.config.Logging
	return &loggingCfg
}

// GetServeConfig returns the demo storefront configuration.
// GetServeConfig 返回演示商店配置。
func (m *Manager) GetServeConfig() *ServeConfig {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.config == nil {
		return nil
	}

	serveCfg := m.config.Serve
	return &serveCfg
}

// SetModelCacheConfig updates the instrumentation configuration.
// SetModelCacheConfig 更新插桩配置。
func (m *Manager) SetModelCacheConfig(mcCfg ModelCacheConfig) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.config != nil {
		m.config.Dev.ModelCache = mcCfg
		m.rebuildRawLocked()
	}
}

// SetCacheConfig updates the request cache configuration.
// SetCacheConfig 更新请求缓存配置。
func (m *Manager) SetCacheConfig(cacheCfg CacheConfig) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.config != nil {
		m.config.Cache = cacheCfg
		m.rebuildRawLocked()
	}
}

// Flag reports whether the value at the "/"-separated path is truthy.
// Missing paths are false.
// Flag 报告 "/" 分隔路径上的值是否为真。路径不存在时为 false。
func (m *Manager) Flag(path string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	v, ok := lookupPath(m.raw, path)
	if !ok {
		return false
	}
	return flagValue(v)
}

// Value returns the string value at the "/"-separated path.
// Missing paths yield "".
// Value 返回 "/" 分隔路径上的字符串值。路径不存在时返回 ""。
func (m *Manager) Value(path string) string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	v, ok := lookupPath(m.raw, path)
	if !ok {
		return ""
	}
	return stringValue(v)
}

// GetConfigPath returns the configuration file path.
// GetConfigPath 返回配置文件路径。
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// Validate validates the current configuration.
// Validate 验证当前配置。
func (m *Manager) Validate() error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.config == nil {
		return nil
	}

	return m.config.Validate()
}

// rebuildRawLocked refreshes the raw tree from the typed configuration.
// Caller must hold the write lock.
// rebuildRawLocked 从类型化配置刷新原始树。调用者必须持有写锁。
func (m *Manager) rebuildRawLocked() {
	if m.config == nil {
		m.raw = nil
		return
	}
	tree, err := effectiveTree(m.config, nil)
	if err != nil {
		return
	}
	m.raw = tree
}

// effectiveTree builds the raw lookup tree: the typed configuration (defaults
// applied) overlaid with any keys from the original file the structs do not know.
// effectiveTree 构建原始查询树：类型化配置（已应用默认值）叠加结构体不识别的文件键。
func effectiveTree(cfg *GlobalConfig, data []byte) (map[string]any, error) {
	base, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	tree := map[string]any{}
	if err := yaml.Unmarshal(base, &tree); err != nil {
		return nil, err
	}

	if len(data) > 0 {
		overlay := map[string]any{}
		if err := yaml.Unmarshal(data, &overlay); err == nil {
			mergeTrees(tree, overlay)
		}
	}
	return tree, nil
}
