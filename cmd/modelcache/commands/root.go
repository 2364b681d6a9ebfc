package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/config"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/runtime"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/logger"
)

var RootCmd = &cobra.Command{
	Use:   "modelcache",
	Short: "Request-scoped model load cache with repeated-load reports",
	// Short: 请求级模型加载缓存与重复加载报告
	Long: `modelcache deduplicates entity loads within one HTTP request and reports
the identifiers that were still loaded more than once, with code locations.
modelcache 在单个 HTTP 请求内对实体加载去重，并报告仍被多次加载的标识符
及其代码位置。`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration to get logging settings
		// 加载配置以获取日志设置
		manager := config.NewManager(config.GetConfigPath())
		if err := manager.LoadConfig(); err != nil {
			// If config fails to load, use default logging config (console only)
			// 如果加载配置失败，使用默认日志配置（仅控制台）
			logger.Init(logger.LoggingConfig{
				Enabled: true,
				Level:   "info",
			})
		} else {
			logger.Init(*manager.GetLoggingConfig())
		}

		// Inject logger into context
		// 将 Logger 注入 Context
		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
	},
}

func init() {
	// Config file path
	// 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))
}

// loadManager loads the configuration for commands that require one.
// loadManager 为需要配置的命令加载配置。
func loadManager() (*config.Manager, error) {
	manager := config.NewManager(config.GetConfigPath())
	if err := manager.LoadConfig(); err != nil {
		return nil, err
	}
	return manager, nil
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
