// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the command line: development
// config for the debug level (ISO8601 timestamps, caller info) and production
// config otherwise. Logs are written to stderr so that the reconciliation
// report, which is mirrored to stdout, stays clean.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Reading reference data", zap.String("path", path))
package logger
