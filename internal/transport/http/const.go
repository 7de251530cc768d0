package http

import "time"

const (
	// DefaultTimeout is the fallback timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// MarkerHeader identifies requests as originating from this access layer.
	MarkerHeader = "X-Requested-With"

	// MarkerValue is the value sent in the marker header.
	MarkerValue = "fetchkit"

	// RequestIDHeader carries a per-request correlation ID.
	RequestIDHeader = "X-Request-ID"
)
