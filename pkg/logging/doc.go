// Package logging provides structured logging utilities for podbox.
//
// # Overview
//
// This package wraps the standard library slog package with podbox defaults
// for consistent logging across the CLI. It supports environment-based log
// level configuration, module/version context injection, and automatic source
// location tracking for debug logs.
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
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("podbox", version)
//
//	    slog.Info("deploying pod", "purpose", "network-debug")
//	    slog.Error("delete failed", "error", err)
//	}
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug podbox deploy network-debug
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format so that command output
// (manifests, summaries, image listings) on stdout stays machine-parseable.
package logging
