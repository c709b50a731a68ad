// Package api assembles the HTTP route table over the handler set in
// pkg/api/handlers. The middleware chain lives in pkg/api/middleware and
// is layered on by the server so tests can exercise the bare router.
package api
