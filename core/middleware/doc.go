// Package middleware contains HTTP middleware for the control API.
//
// # Components
//
//   - Auth: API key validation protecting the control endpoints.
//   - RayID: a unique Request ID (RayID) for every incoming request,
//     stored in the context and echoed in the response headers for tracing.
//
// The served file server does not use these.
package middleware
