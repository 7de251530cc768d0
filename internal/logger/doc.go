// Package logger wraps the Zap logging library behind a small package-level
// API. It provides context-aware logging helpers, a process-wide atomic log
// level, and textual log-level parsing for configuration. Printf-style and
// key-value variants are available at every level.
package logger
