package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/api"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/rules"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/sink"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/logger"
	"github.com/deheerhoreca/Aoe-ModelCache/pkg/sdk"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the demo storefront",
	// Short: 运行演示商店
	Long: `Run the demo storefront whose pages load entities redundantly on
purpose, so reports, counters and exclusion rules can be watched live.
运行演示商店，其页面故意冗余加载实体，以便实时观察报告、计数器和排除规则。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get(cmd.Context())

		manager, err := loadManager()
		if err != nil {
			return err
		}

		if !sdk.ProfilerEnabled() {
			log.Warnf("[WARN] %s is not set, no reports will be emitted", sdk.ProfilerEnv)
		}

		engine, err := rules.NewEngine(manager.GetCacheConfig().Exclude)
		if err != nil {
			return err
		}

		snk := sink.NewFileSink(*manager.GetSinkConfig())
		defer func() { _ = snk.Close() }()

		srv := api.NewServer(manager, snk, engine)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

		for {
			select {
			case err := <-errCh:
				return err
			case s := <-sig:
				if s == syscall.SIGHUP {
					log.Infof("[OK] Received SIGHUP, reloading configuration...")
					if err := srv.Reload(); err != nil {
						log.Warnf("[WARN] Reload failed: %v", err)
					}
					continue
				}

				log.Infof("[OK] Shutting down...")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				err := srv.Stop(ctx)
				cancel()
				if err != nil {
					return err
				}
				return <-errCh
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
