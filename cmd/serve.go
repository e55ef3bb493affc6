package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"static-host/core/config"
	"static-host/core/logger"
	"static-host/core/metrics"
	"static-host/core/server"
	"static-host/feature/fileserver"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd serves a folder in the foreground without the control API.
var serveCmd = &cobra.Command{
	Use:   "serve [folder]",
	Short: "Serve a folder until interrupted",
	Long:  `Serves the given folder (or fileserver.folder from the configuration) on 127.0.0.1 until SIGINT/SIGTERM.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir(cmd))
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logg.Sync()

		var u fileserver.Update
		if len(args) == 1 {
			u.FolderPath = &args[0]
		}
		if cmd.Flags().Changed("port") {
			port, _ := cmd.Flags().GetInt("port")
			u.Port = &port
		}

		mgr, err := newManager(cfg, logg, metrics.New(nil))
		if err != nil {
			return err
		}
		if _, err := mgr.Configure(u); err != nil {
			return err
		}

		st, err := mgr.Start()
		if err != nil {
			return err
		}
		fmt.Printf("Serving %s on %s\n", st.FolderPath, server.URL(st.Port))

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		logg.Info("Stopping file server", zap.Int("port", st.Port))
		_, err = mgr.Stop()
		return err
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", server.DefaultFilePort, "port to listen on (1024-65535)")
	RootCmd.AddCommand(serveCmd)
}
