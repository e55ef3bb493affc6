package fileserver

import (
	"errors"

	"static-host/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the Controller over the control API.
type Handler struct {
	ctrl   Controller
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(ctrl Controller, logger *zap.Logger) *Handler {
	return &Handler{ctrl: ctrl, logger: logger}
}

// RegisterRoutes registers the file server routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/fileserver")
	group.Get("/status", h.HandleStatus)
	group.Put("/config", h.HandleConfigure)
	group.Post("/start", h.HandleStart)
	group.Post("/stop", h.HandleStop)
}

// HandleStatus returns the file server status.
// @Summary Get Status
// @Description Returns the configured folder and port and whether the file server is running.
// @Tags fileserver
// @Produce json
// @Success 200 {object} fileserver.Status "Status"
// @Router /fileserver/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.Status())
}

// HandleConfigure updates the file server configuration.
// @Summary Update Configuration
// @Description Partially updates the folder and/or port. A running server keeps its configuration until restarted.
// @Tags fileserver
// @Accept json
// @Produce json
// @Param config body fileserver.Update true "Fields to update"
// @Success 200 {object} fileserver.Config "Configuration"
// @Failure 400 {object} map[string]string "Invalid port or body"
// @Router /fileserver/config [put]
func (h *Handler) HandleConfigure(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var u Update
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&u); err != nil {
			l.Warn("Invalid configuration body", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body: " + err.Error(),
				"code":  "bad_request",
			})
		}
	}
	cfg, err := h.ctrl.Configure(u)
	if err != nil {
		return h.fail(c, l, err)
	}
	l.Info("File server configured", zap.String("folder", cfg.FolderPath), zap.Int("port", cfg.Port))
	return c.JSON(cfg)
}

// HandleStart starts the file server.
// @Summary Start
// @Description Starts serving the configured folder on 127.0.0.1.
// @Tags fileserver
// @Produce json
// @Success 200 {object} fileserver.Status "Status"
// @Failure 400 {object} map[string]string "Folder missing or not found"
// @Failure 409 {object} map[string]string "Already running"
// @Failure 500 {object} map[string]string "Bind failed"
// @Router /fileserver/start [post]
func (h *Handler) HandleStart(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	st, err := h.ctrl.Start()
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(st)
}

// HandleStop stops the file server.
// @Summary Stop
// @Description Stops the running file server. In-flight requests are not awaited.
// @Tags fileserver
// @Produce json
// @Success 200 {object} fileserver.Status "Status"
// @Failure 409 {object} map[string]string "Not running"
// @Router /fileserver/stop [post]
func (h *Handler) HandleStop(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	st, err := h.ctrl.Stop()
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(st)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	kind := Kind(err)
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("File server operation failed", zap.String("kind", kind), zap.Error(err))
	} else {
		l.Warn("File server operation rejected", zap.String("kind", kind), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"code":  kind,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidPort), errors.Is(err, ErrMissingFolder), errors.Is(err, ErrFolderNotFound):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrAlreadyRunning), errors.Is(err, ErrNotRunning):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
