// Package fileserver implements the restartable static file server.
//
// A Manager owns the desired configuration (served folder and port) and at most
// one running instance bound to 127.0.0.1. Hosts construct a Manager once and
// drive it through the Controller operations: Configure, Start, Stop and Status.
//
// # Serving
//
// Each request path is joined onto the served folder:
//   - regular files are returned whole, typed by a small extension table (see ContentType)
//   - directories are rendered by the listing package
//   - anything else is a plain-text 404
//
// Read and listing failures become plain-text 500 responses; they never stop the
// server. Requests are handled one at a time.
//
// # Lifecycle
//
// Start validates the folder, binds the port from a background worker and waits
// for the bind result, so a busy port is reported as ErrBindFailed. Stop fires a
// one-shot signal that closes the listener from a separate goroutine; it returns
// without waiting for in-flight requests, and the port is released shortly after.
//
// # HTTP Endpoints (control API)
//
//   - GET /fileserver/status : Current configuration and running flag.
//   - PUT /fileserver/config : Partial update of folder_path and/or port.
//   - POST /fileserver/start : Start serving.
//   - POST /fileserver/stop : Stop serving.
package fileserver
