package fileserver

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"static-host/core/metrics"
	"static-host/feature/fileserver/listing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// dispatcher maps request paths onto the served root. Requests are handled
// one at a time.
type dispatcher struct {
	mu      sync.Mutex
	root    string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func newDispatcher(root string, logger *zap.Logger, m *metrics.Metrics) *dispatcher {
	return &dispatcher{root: root, logger: logger, metrics: m}
}

// Handle serves every method as a path lookup.
func (d *dispatcher) Handle(c *fiber.Ctx) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	start := time.Now()
	urlPath := c.Path()
	resolved := resolve(d.root, urlPath)

	outcome := d.serve(c, resolved, urlPath)

	status := c.Response().StatusCode()
	d.metrics.ObserveRequest(outcome, status, len(c.Response().Body()), time.Since(start))
	d.logger.Debug("Request served",
		zap.String("method", c.Method()),
		zap.String("path", urlPath),
		zap.String("outcome", outcome),
		zap.Int("status", status),
	)
	return nil
}

func (d *dispatcher) serve(c *fiber.Ctx, resolved, urlPath string) string {
	info, err := os.Stat(resolved)
	switch {
	case err == nil && info.Mode().IsRegular():
		content, err := os.ReadFile(resolved)
		if err != nil {
			d.logger.Warn("Failed to read file", zap.String("path", resolved), zap.Error(err))
			return d.fail(c, "Error reading file: "+err.Error())
		}
		c.Set(fiber.HeaderContentType, ContentType(resolved))
		c.Status(fiber.StatusOK)
		_ = c.Send(content)
		return metrics.OutcomeFile

	case err == nil && info.IsDir():
		page, err := listing.Render(resolved, urlPath)
		if err != nil {
			d.logger.Warn("Failed to list directory", zap.String("path", resolved), zap.Error(err))
			return d.fail(c, "Error listing directory: "+err.Error())
		}
		c.Set(fiber.HeaderContentType, mimeListing)
		c.Status(fiber.StatusOK)
		_ = c.SendString(page)
		return metrics.OutcomeDirectory

	default:
		c.Set(fiber.HeaderContentType, mimeText)
		c.Status(fiber.StatusNotFound)
		_ = c.SendString("File not found")
		return metrics.OutcomeNotFound
	}
}

func (d *dispatcher) fail(c *fiber.Ctx, msg string) string {
	c.Set(fiber.HeaderContentType, mimeText)
	c.Status(fiber.StatusInternalServerError)
	_ = c.SendString(msg)
	return metrics.OutcomeError
}

// resolve joins the URL path onto root. Join cleans the result but does not
// confine it to root.
func resolve(root, urlPath string) string {
	return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(urlPath, "/")))
}
