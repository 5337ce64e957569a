// Package logging provides structured logging utilities for myapp and its
// build-time documentation generator.
//
// # Overview
//
// This package wraps the standard library slog package with a few defaults so
// both binaries log the same way: JSON records on stderr, tagged with the
// module name and version, with source locations added at debug level.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// Unrecognized values fall back to INFO.
//
// # Usage
//
// Setting the default logger from a flag value:
//
//	logging.SetDefaultStructuredLoggerWithLevel("myapp-mangen", version, cmd.String("log-level"))
//	slog.Debug("page rendered", "file", "myapp-config-get.1")
//
// The flag itself reads LOG_LEVEL through urfave/cli's env sources, so the
// environment needs no separate handling here.
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "manual pages generated",
//	    "module": "myapp-mangen",
//	    "version": "v1.0.0",
//	    "pages": 6
//	}
package logging
