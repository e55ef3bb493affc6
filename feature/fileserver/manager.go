package fileserver

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"sync"

	"static-host/core/logger"
	"static-host/core/metrics"
	"static-host/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Config is the desired file server configuration. It is independent of
// whether an instance is running.
type Config struct {
	FolderPath string `json:"folder_path" yaml:"folder_path"`
	Port       int    `json:"port" yaml:"port"`
}

// Update is a partial Config; nil fields are left unchanged.
type Update struct {
	FolderPath *string `json:"folder_path,omitempty"`
	Port       *int    `json:"port,omitempty"`
}

// Status is a snapshot of the configuration and the running flag.
type Status struct {
	Running    bool   `json:"running"`
	FolderPath string `json:"folder_path"`
	Port       int    `json:"port"`
}

// Controller is the set of operations a host drives the file server with.
type Controller interface {
	Configure(u Update) (Config, error)
	Start() (Status, error)
	Stop() (Status, error)
	Status() Status
}

// instance is one running listener.
type instance struct {
	// shutdown is closed exactly once, by Stop.
	shutdown chan struct{}
	// ready receives the bind result.
	ready chan error
}

// Option configures a Manager.
type Option func(*Manager)

// WithMetrics records lifecycle and request metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(mgr *Manager) {
		mgr.metrics = m
	}
}

// WithHost overrides the bind host (127.0.0.1).
func WithHost(host string) Option {
	return func(mgr *Manager) {
		mgr.host = host
	}
}

// Manager owns the file server configuration and at most one running instance.
// It is safe for concurrent use.
type Manager struct {
	mu      sync.Mutex
	config  Config
	running bool
	current *instance

	host    string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

var _ Controller = (*Manager)(nil)

// NewManager creates a stopped Manager with no folder and the default port.
func NewManager(l *zap.Logger, opts ...Option) *Manager {
	m := &Manager{
		config: Config{Port: server.DefaultFilePort},
		host:   "127.0.0.1",
		logger: l.Named("fileserver"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Configure applies a partial update. The folder is not checked until Start,
// and a running instance keeps the configuration it was started with.
func (m *Manager) Configure(u Update) (Config, error) {
	if u.Port != nil && !server.IsValidPort(*u.Port) {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidPort, *u.Port)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if u.FolderPath != nil {
		m.config.FolderPath = *u.FolderPath
	}
	if u.Port != nil {
		m.config.Port = *u.Port
	}
	return m.config, nil
}

// Start binds 127.0.0.1:<port> and serves the configured folder in the
// background. It returns once the listener is bound, or with ErrBindFailed.
func (m *Manager) Start() (Status, error) {
	cfg, err := m.prepareStart()
	if err != nil {
		return Status{}, err
	}

	inst := &instance{
		shutdown: make(chan struct{}),
		ready:    make(chan error, 1),
	}
	m.mu.Lock()
	// The folder was checked without the lock held; another Start or a
	// Configure may have slipped in since.
	if m.running {
		m.mu.Unlock()
		return Status{}, ErrAlreadyRunning
	}
	if m.config != cfg {
		m.mu.Unlock()
		return m.Start()
	}
	m.current = inst
	m.running = true
	m.mu.Unlock()

	go m.run(inst, cfg)

	if err := <-inst.ready; err != nil {
		m.mu.Lock()
		if m.current == inst {
			m.current = nil
			m.running = false
		}
		m.mu.Unlock()

		m.metrics.ObserveStart(KindBindFailed)
		m.logger.Error("Failed to start file server", zap.Int("port", cfg.Port), zap.Error(err))
		return Status{}, wrapBind(err)
	}

	m.metrics.ObserveStart("ok")

	m.mu.Lock()
	if m.current != inst {
		// Stopped while binding.
		st := m.statusLocked()
		m.mu.Unlock()
		m.logger.Info("File server stopped before it finished starting", zap.Int("port", cfg.Port))
		return st, nil
	}
	m.metrics.SetRunning(true)
	m.mu.Unlock()

	m.logger.Info("File server started",
		zap.String("url", server.URL(cfg.Port)),
		zap.String("folder", cfg.FolderPath),
	)
	return Status{Running: true, FolderPath: cfg.FolderPath, Port: cfg.Port}, nil
}

// prepareStart snapshots the configuration and validates its folder.
func (m *Manager) prepareStart() (Config, error) {
	m.mu.Lock()
	running, cfg := m.running, m.config
	m.mu.Unlock()

	if running {
		return Config{}, ErrAlreadyRunning
	}
	if err := checkFolder(cfg.FolderPath); err != nil {
		m.metrics.ObserveStart(Kind(err))
		return Config{}, err
	}
	return cfg, nil
}

// Stop signals the running instance to stop accepting connections. It does
// not wait for in-flight requests or for the socket to be released.
func (m *Manager) Stop() (Status, error) {
	m.mu.Lock()
	if !m.running || m.current == nil {
		m.mu.Unlock()
		return Status{}, ErrNotRunning
	}
	inst := m.current
	m.current = nil
	m.running = false
	m.metrics.SetRunning(false)
	st := m.statusLocked()
	m.mu.Unlock()

	close(inst.shutdown)

	m.logger.Info("File server stop requested", zap.Int("port", st.Port))
	return st, nil
}

// Status returns the current configuration and running flag.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusLocked()
}

func (m *Manager) statusLocked() Status {
	return Status{
		Running:    m.running,
		FolderPath: m.config.FolderPath,
		Port:       m.config.Port,
	}
}

// run is the worker owning one instance: it binds, reports the result on
// inst.ready and then serves until the listener is closed.
func (m *Manager) run(inst *instance, cfg Config) {
	addr := net.JoinHostPort(m.host, strconv.Itoa(cfg.Port))
	raw, err := net.Listen("tcp", addr)
	if err != nil {
		inst.ready <- err
		return
	}
	ln := &closeOnceListener{Listener: raw}

	l := m.logger.With(zap.String("addr", addr))
	app := newApp(newDispatcher(cfg.FolderPath, l, m.metrics), l)

	// Unblocks the accept loop when Stop fires. Kept off the worker so that
	// signalling never waits on request handling.
	go func() {
		<-inst.shutdown
		_ = ln.Close()
		if err := app.Shutdown(); err != nil {
			l.Debug("File server shutdown", zap.Error(err))
		}
	}()

	inst.ready <- nil

	err = app.Listener(ln)

	select {
	case <-inst.shutdown:
		l.Info("File server stopped")
	default:
		l.Error("File server terminated unexpectedly", zap.Error(err))
		m.mu.Lock()
		if m.current == inst {
			m.current = nil
			m.running = false
			m.metrics.SetRunning(false)
		}
		m.mu.Unlock()
	}
}

// newApp builds the fiber app serving one instance.
func newApp(d *dispatcher, l *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		DisableKeepalive:      true,
		UnescapePath:          true,
	})
	app.Server().Logger = logger.NewPrintf(l)
	app.Use(d.Handle)
	return app
}

func checkFolder(path string) error {
	if path == "" {
		return ErrMissingFolder
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return folderNotFound(path)
	}
	return nil
}

func folderNotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrFolderNotFound, path)
}

func wrapBind(err error) error {
	return fmt.Errorf("%w: %w", ErrBindFailed, err)
}

// closeOnceListener makes Close idempotent; both the stop signal and the
// fiber shutdown close the listener.
type closeOnceListener struct {
	net.Listener
	once sync.Once
	err  error
}

func (ln *closeOnceListener) Close() error {
	ln.once.Do(func() {
		ln.err = ln.Listener.Close()
	})
	return ln.err
}
