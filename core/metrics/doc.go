// Package metrics defines the Prometheus collectors of the static file server.
//
// Collectors are registered on an injected registry rather than the global default,
// so every Manager (and every test) can own an isolated set.
package metrics
