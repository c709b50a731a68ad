// Package middleware provides the HTTP middleware chain: panic recovery,
// request ID assignment, structured request logging, CORS, per-request
// timeouts, and inbound metrics recording.
package middleware
