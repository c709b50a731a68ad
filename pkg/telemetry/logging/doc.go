// Package logging provides structured logging for Osprey on top of
// log/slog.
//
// The Logger is built from config.LoggingConfig: JSON or text output to
// stdout, stderr, or a file, with the minimum level held in a
// slog.LevelVar so configuration hot reload can adjust verbosity at
// runtime:
//
//	logger, err := logging.New(cfg.Telemetry.Logging)
//	if err != nil { ... }
//	defer logger.Close()
//
//	logger.Info("server starting", "address", addr)
//
// Request handlers receive a request-scoped logger (carrying request_id,
// method, and path) through the context:
//
//	log := logging.FromContext(r.Context())
//	log.Warn("user lookup failed", "user_id", id)
//
// The panel API key and other credentials are never passed to the logger.
package logging
