package server

import "strconv"

// Config holds configuration for the control API server.
type Config struct {
	// Port is the port where the control API will listen.
	Port string `mapstructure:"port" yaml:"port" default:"9090"`
	// ApiKey is the secret key required to access the control API.
	// An empty key disables authentication.
	ApiKey string `mapstructure:"api_key" yaml:"api_key" default:""`
}

// Addr returns the listen address of the control API.
func (c Config) Addr() string {
	return ":" + c.Port
}

const (
	// MinPort and MaxPort bound the ports the file server may be configured with.
	MinPort = 1024
	MaxPort = 65535

	// DefaultFilePort is the file server port used until one is configured.
	DefaultFilePort = 8080
)

// FileServerConfig holds the initial configuration for the static file server.
type FileServerConfig struct {
	// Folder is the served root.
	Folder string `mapstructure:"folder" yaml:"folder" default:""`
	// Port is the port the file server binds on 127.0.0.1.
	Port int `mapstructure:"port" yaml:"port" default:"8080"`
	// AutoStart starts the file server together with the control API.
	AutoStart bool `mapstructure:"auto_start" yaml:"auto_start" default:"false"`
}

// IsValidPort reports whether port lies in the registrable/dynamic range.
func IsValidPort(port int) bool {
	return port >= MinPort && port <= MaxPort
}

// URL returns the address the file server is reachable on for the given port.
func URL(port int) string {
	return "http://127.0.0.1:" + strconv.Itoa(port)
}
