// Package http provides custom HTTP transport utilities: request/response
// logging, client marker-header injection, and request-ID tagging.
// The middleware composes as http.RoundTripper decorators around the
// standard transport.
package http
