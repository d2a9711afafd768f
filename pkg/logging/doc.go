// Package logging provides structured logging utilities for appctl.
//
// # Overview
//
// This package wraps the standard library slog package with appctl defaults
// so every command logs the same way. It supports environment-based log level
// configuration, module/version context injection, and automatic source
// location tracking for debug logs.
//
// Logs are diagnostics only. Command results (application lists, node lists,
// per-manifest outcomes) are written to stdout by the CLI and never pass
// through the logger.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	logging.SetDefaultStructuredLoggerWithLevel("appctl", version, cmd.String("log-level"))
//	slog.Info("deploying application", "application", app)
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("appctl", "v1.0.0", "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug appctl deploy web
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "manifest created",
//	    "module": "appctl",
//	    "version": "v1.0.0",
//	    "kind": "Deployment",
//	    "name": "web"
//	}
package logging
