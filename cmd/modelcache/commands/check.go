package commands

import (
	"github.com/spf13/cobra"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration file",
	// Short: 校验配置文件
	Long: `Parse and validate the configuration file, including a compile check
of all cache exclusion rules.
解析并校验配置文件，包括对所有缓存排除规则的编译检查。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := loadManager()
		if err != nil {
			return err
		}

		cacheCfg := manager.GetCacheConfig()
		mcCfg := manager.GetModelCacheConfig()

		cmd.Printf("[OK] Configuration valid: %s\n", config.GetConfigPath())
		cmd.Printf("     log_active: %v, cache enabled: %v, exclusion rules: %d\n",
			mcCfg.LogActive, cacheCfg.Enabled, len(cacheCfg.Exclude))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
