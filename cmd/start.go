package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"static-host/core/config"
	"static-host/core/logger"
	"static-host/core/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Static Host Control API
// @version 1.0
// @description API for configuring, starting and stopping the static file server.
// @host localhost:9090
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the control API",
	Long: `Starts the control API through which the file server is configured, started and stopped.
With --auto (or FILESERVER_AUTO_START=true) the file server is started right away.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configDir(cmd))
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if auto, _ := cmd.Flags().GetBool("auto"); auto {
			cfg.FileServer.AutoStart = true
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		m := metrics.New(prometheus.NewRegistry())

		mgr, err := newManager(cfg, logg, m)
		if err != nil {
			logg.Fatal("Invalid file server configuration", zap.Error(err))
		}

		app, err := newControlApp(cfg, logg, m, mgr)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		if cfg.FileServer.AutoStart {
			if _, err := mgr.Start(); err != nil {
				logg.Error("Auto start failed", zap.Error(err))
			}
		}

		go func() {
			logg.Info("Starting control API", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Control API failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down...")
		if mgr.Status().Running {
			_, _ = mgr.Stop()
		}
		_ = app.Shutdown()
	},
}

func init() {
	startCmd.Flags().Bool("auto", false, "start the file server together with the control API")
	RootCmd.AddCommand(startCmd)
}
