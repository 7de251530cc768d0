// Package utils provides small helpers shared across the application,
// such as content type inspection used by the logging transport.
package utils
