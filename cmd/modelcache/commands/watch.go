package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/config"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/watch"
)

var (
	watchFile string
	watchFrom string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the repeated-load report log",
	// Short: 跟随重复加载报告日志
	Long: `Follow the report file the sink appends to, printing new reports as
requests finish. Reports start with a dashed URL banner.
跟随输出器追加的报告文件，在请求结束时打印新报告。
报告以虚线 URL 横幅开头。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchFrom != "start" && watchFrom != "end" {
			return fmt.Errorf("invalid --from value %q (want start or end)", watchFrom)
		}

		file := watchFile
		if file == "" {
			file = defaultReportPath()
		}

		follower := watch.NewFollower()
		follower.Watch(file, watchFrom)
		defer follower.Stop()

		cmd.Printf("[OK] Following %s (from %s), Ctrl+C to stop\n", file, watchFrom)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

		for {
			select {
			case line, ok := <-follower.Events:
				if !ok {
					return nil
				}
				// An extra break before each banner keeps reports apart.
				// 每个横幅前的额外空行让报告彼此分开。
				if watch.IsBanner(line.Text) {
					cmd.Println()
				}
				cmd.Println(line.Text)
			case <-sig:
				cmd.Println("[OK] Stopped")
				return nil
			}
		}
	},
}

// defaultReportPath resolves the report file the sink writes to, falling
// back to the packaged defaults when no config is readable.
// defaultReportPath 解析输出器写入的报告文件，配置不可读时回退到打包默认值。
func defaultReportPath() string {
	manager, err := loadManager()
	if err != nil {
		return filepath.Join(config.DefaultSinkDir, config.DefaultReportFile)
	}

	name := manager.GetModelCacheConfig().LogFile
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(manager.GetSinkConfig().BaseDir, name)
}

func init() {
	watchCmd.Flags().StringVar(&watchFile, "file", "", "Report file to follow (default: resolved from config)")
	watchCmd.Flags().StringVar(&watchFrom, "from", "end", "Where to start reading: start or end")
	RootCmd.AddCommand(watchCmd)
}
