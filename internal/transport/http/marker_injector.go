package http

import "net/http"

// MarkerInjector is a custom http.RoundTripper that stamps every outgoing
// request with the marker header identifying this client layer.
// Requests that already carry the header (caller override) pass through untouched.
type MarkerInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// value is the marker value to inject.
	value string
}

// NewMarkerInjector creates and returns a new instance of MarkerInjector.
// An empty value falls back to MarkerValue.
func NewMarkerInjector(next http.RoundTripper, value string) http.RoundTripper {
	if value == "" {
		value = MarkerValue
	}

	return &MarkerInjector{
		next:  next,
		value: value,
	}
}

// RoundTrip executes a single HTTP transaction, injecting the marker header
// if it is missing. It implements the http.RoundTripper interface.
func (t *MarkerInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(MarkerHeader) == "" {
		req.Header.Set(MarkerHeader, t.value)
	}

	return t.next.RoundTrip(req)
}
