package cmd

import (
	"static-host/core/config"
	"static-host/core/loader"
	"static-host/core/logger"
	"static-host/core/metrics"
	"static-host/core/middleware/auth"
	"static-host/core/middleware/rayid"
	"static-host/feature/fileserver"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "static-host/docs/swagger"
)

// newControlApp builds the control API around an existing file server manager.
func newControlApp(cfg *config.Config, logg *zap.Logger, m *metrics.Metrics, mgr fileserver.Controller) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line can carry it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Public
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", m.Handler())

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	features := loader.NewManager(logg)
	features.Register(fileserver.NewFeature(mgr, logg))
	if err := features.LoadAll(app); err != nil {
		return nil, err
	}

	return app, nil
}

// newManager creates the file server manager seeded from cfg.
func newManager(cfg *config.Config, logg *zap.Logger, m *metrics.Metrics) (*fileserver.Manager, error) {
	mgr := fileserver.NewManager(logg, fileserver.WithMetrics(m))
	folder, port := cfg.FileServer.Folder, cfg.FileServer.Port
	if _, err := mgr.Configure(fileserver.Update{FolderPath: &folder, Port: &port}); err != nil {
		return nil, err
	}
	return mgr, nil
}
