// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework used by both the control API and the served file server.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so all logs related to a control request can be correlated.
//
// # fasthttp
//
// Printf bridges zap to the fasthttp server logger. The file server installs it so that
// errors raised while writing a response (client gone, broken pipe) are logged and dropped.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
package logger
