package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/config"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/fileutil"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	// Short: 写出默认配置文件
	Long: `Write the commented default configuration to the config path.
将带注释的默认配置写到配置路径。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigPath()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory %s: %w", dir, err)
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}

		if err := fileutil.AtomicWriteFile(path, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
			return err
		}

		cmd.Printf("[OK] Wrote default config: %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	RootCmd.AddCommand(initCmd)
}
