// Package server holds the HTTP server configuration and constants.
//
// Two servers exist at runtime: the control API, through which a host configures,
// starts and stops the file server, and the static file server itself. This package
// defines the configuration structures for both and the valid port range.
//
// # Usage
//
// This package is embedded by core/config and used by the fileserver feature to
// validate ports.
package server
